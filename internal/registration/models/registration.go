package models

import (
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"

	dErrors "insightx/pkg/domain-errors"
)

// Registration is the persisted record for one attendee signup.
//
// Invariants:
//   - Email and ContactNumber are each unique across all registrations
//   - RegisteredAt is set server-side at creation and never changes
//   - Records are immutable: no update or delete operation exists
type Registration struct {
	ID            uuid.UUID `json:"id"`
	FullName      string    `json:"fullName"`
	Email         string    `json:"email"`
	ContactNumber string    `json:"contactNumber"`
	CurrentYear   string    `json:"currentYear"`
	Branch        string    `json:"branch"`
	Purpose       string    `json:"purpose,omitempty"`
	RegisteredAt  time.Time `json:"registeredAt"`
}

// RegisterRequest is the untrusted request payload. Every field may be absent;
// Normalize and Validate must run before the values are used.
type RegisterRequest struct {
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	ContactNumber string `json:"contactNumber"`
	CurrentYear   string `json:"currentYear"`
	Branch        string `json:"branch"`
	Purpose       string `json:"purpose"`
}

// Normalize trims surrounding whitespace and lowercases the email so
// uniqueness checks are case-insensitive.
func (r *RegisterRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.ContactNumber = strings.TrimSpace(r.ContactNumber)
	r.CurrentYear = strings.TrimSpace(r.CurrentYear)
	r.Branch = strings.TrimSpace(r.Branch)
	r.Purpose = strings.TrimSpace(r.Purpose)
}

// Validate enforces required fields and basic shape. Purpose is optional.
func (r *RegisterRequest) Validate() error {
	if r.FullName == "" || r.Email == "" || r.ContactNumber == "" || r.CurrentYear == "" || r.Branch == "" {
		return dErrors.New(dErrors.CodeValidation, "missing required fields")
	}
	if !govalidator.StringLength(r.Email, "3", "255") || !govalidator.IsEmail(r.Email) {
		return dErrors.New(dErrors.CodeValidation, "invalid email")
	}
	if !govalidator.StringLength(r.FullName, "1", "255") {
		return dErrors.New(dErrors.CodeValidation, "full name too long")
	}
	if !govalidator.StringLength(r.ContactNumber, "1", "32") {
		return dErrors.New(dErrors.CodeValidation, "contact number too long")
	}
	return nil
}

// NewRegistration builds a Registration from a normalized, validated request.
// RegisteredAt comes from the caller's clock, never from the client.
func NewRegistration(req *RegisterRequest, now time.Time) *Registration {
	return &Registration{
		ID:            uuid.New(),
		FullName:      req.FullName,
		Email:         req.Email,
		ContactNumber: req.ContactNumber,
		CurrentYear:   req.CurrentYear,
		Branch:        req.Branch,
		Purpose:       req.Purpose,
		RegisteredAt:  now,
	}
}
