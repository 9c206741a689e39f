package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"insightx/internal/platform/middleware"
	"insightx/internal/registration/models"
	dErrors "insightx/pkg/domain-errors"
)

// Service defines the interface for registration operations.
type Service interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.Registration, error)
}

// Handler is the thin HTTP layer over the registration workflow. It maps
// workflow outcomes to status codes and fixed client messages without
// embedding business logic.
type Handler struct {
	logger        *slog.Logger
	registrations Service
	allowedOrigin string
}

// New creates a registration Handler. allowedOrigin is the single CORS origin
// permitted to call the API.
func New(registrations Service, logger *slog.Logger, allowedOrigin string) *Handler {
	return &Handler{
		logger:        logger,
		registrations: registrations,
		allowedOrigin: allowedOrigin,
	}
}

// Register registers the public routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	api := chi.NewRouter()
	api.Use(middleware.Recovery(h.logger))
	api.Use(middleware.RequestID)
	api.Use(middleware.Logger(h.logger))
	api.Use(middleware.Timeout(30 * time.Second))
	api.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{h.allowedOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowCredentials: true,
	}))
	api.Use(middleware.ContentTypeJSON)
	api.Get("/", h.handleHealth)
	api.Post("/api/register", h.handleRegister)

	r.Mount("/", api)
}

// handleHealth is the liveness probe. Plain text, no side effects.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Insight-X Backend is running and ready!"))
}

// handleRegister accepts a registration submission and maps the workflow
// outcome to a status code and message.
func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "undecodable registration request",
			"request_id", requestID,
			"error", err.Error(),
		)
		writeError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	if _, err := h.registrations.Register(ctx, &req); err != nil {
		if dErrors.CodeOf(err) == dErrors.CodeInternal {
			h.logger.ErrorContext(ctx, "registration failed",
				"request_id", requestID,
				"error", err.Error(),
			)
		}
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusCreated, "Registration successful! A confirmation email has been sent.")
}
