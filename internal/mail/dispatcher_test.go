package mail

import (
	"html/template"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insightx/internal/platform/config"
)

func TestNewDispatcher(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	d, err := New(
		config.SMTP{Host: "localhost", Port: 2525, Username: "u", Password: "p"},
		config.Mail{FromName: "Insight X", FromAddress: "noreply@example.edu"},
		logger,
	)
	require.NoError(t, err)
	require.NotNil(t, d)
}

func TestRenderConfirmation(t *testing.T) {
	tmpl := template.Must(template.New("confirmation").Parse(confirmationBody))

	body, err := renderConfirmation(tmpl, "Asha Rao")
	require.NoError(t, err)

	assert.Contains(t, body, "Welcome to Insight X, Asha Rao!")
	assert.Contains(t, body, "Campus to Corporate")
	assert.Contains(t, body, "October 13th, 2025")
	assert.Contains(t, body, "Alumni Cell KJSSE")
}

func TestRenderConfirmationEscapesName(t *testing.T) {
	tmpl := template.Must(template.New("confirmation").Parse(confirmationBody))

	body, err := renderConfirmation(tmpl, `<script>alert("x")</script>`)
	require.NoError(t, err)

	assert.NotContains(t, body, "<script>")
}
