package domain

import "context"

// IndividualContactForm is the raw payload of the private-customer contact
// form, bound straight from the browser's form encoding. Fields stay strings
// until validation promotes them to a ValidatedIndividualContact.
//
// The `_hp` field is a honeypot: hidden from humans, always submitted empty
// by real browsers. `_t` carries the epoch-milliseconds captured when the
// form was rendered.
type IndividualContactForm struct {
	Name       string `form:"name" validate:"required,min=2"`
	Email      string `form:"email" validate:"required,email"`
	Phone      string `form:"phone" validate:"omitempty,max=20"`
	Address    string `form:"address" validate:"omitempty,max=200"`
	PostalCode string `form:"postalCode" validate:"omitempty,max=10"`
	City       string `form:"city" validate:"omitempty,max=100"`
	Message    string `form:"message" validate:"required,min=10,max=1000"`
	Honeypot   string `form:"_hp" validate:"max=0"`
	Timestamp  string `form:"_t"`
}

// ProContactForm is the raw payload of the professional inquiry form
// (hotels, residences, care facilities).
type ProContactForm struct {
	Name          string `form:"name" validate:"required,min=2"`
	Role          string `form:"role" validate:"required"`
	Establishment string `form:"establishment" validate:"required"`
	Type          string `form:"type" validate:"required,establishment_type"`
	Email         string `form:"email" validate:"required,email"`
	Phone         string `form:"phone" validate:"required,min=8"`
	Message       string `form:"message" validate:"omitempty,max=1000"`
	Honeypot      string `form:"_hp" validate:"max=0"`
	Timestamp     string `form:"_t"`
}

// ValidatedIndividualContact is an individual submission that passed schema
// validation and the anti-spam gate. Optional fields hold "" when absent.
type ValidatedIndividualContact struct {
	Name               string
	Email              string
	Phone              string
	Address            string
	PostalCode         string
	City               string
	Message            string
	SubmittedAtEpochMs int64
}

// ValidatedProContact is a professional submission that passed schema
// validation and the anti-spam gate.
type ValidatedProContact struct {
	Name               string
	Role               string
	Establishment      string
	EstablishmentType  string
	Email              string
	Phone              string
	Message            string
	SubmittedAtEpochMs int64
}

// SubmissionStatus tags a SubmissionResult.
type SubmissionStatus string

const (
	StatusIdle    SubmissionStatus = "idle"
	StatusSuccess SubmissionStatus = "success"
	StatusError   SubmissionStatus = "error"
)

// SubmissionResult is the outcome of one form submission. On error exactly
// one of FieldErrors and Message is set: FieldErrors carries per-field
// messages keyed by form field name, Message carries a single top-level
// error (anti-spam rejection or delivery failure).
type SubmissionResult struct {
	Status      SubmissionStatus    `json:"status"`
	FieldErrors map[string][]string `json:"fieldErrors,omitempty"`
	Message     string              `json:"message,omitempty"`
}

func SuccessResult() SubmissionResult {
	return SubmissionResult{Status: StatusSuccess}
}

func FieldErrorResult(fieldErrors map[string][]string) SubmissionResult {
	return SubmissionResult{Status: StatusError, FieldErrors: fieldErrors}
}

func MessageResult(message string) SubmissionResult {
	return SubmissionResult{Status: StatusError, Message: message}
}

// ContactUsecase defines the contact form submission pipeline.
type ContactUsecase interface {
	// SubmitIndividual runs the full pipeline (validation, anti-spam gate,
	// email dispatch) for a private-customer inquiry. The returned error is
	// nil except on delivery or configuration failure, in which case the
	// result already carries the user-facing message.
	SubmitIndividual(ctx context.Context, form *IndividualContactForm) (SubmissionResult, error)

	// SubmitPro does the same for a professional inquiry.
	SubmitPro(ctx context.Context, form *ProContactForm) (SubmissionResult, error)
}
