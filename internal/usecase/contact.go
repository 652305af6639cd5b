package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"belle-detente-backend/internal/domain"
	"belle-detente-backend/pkg/email"
	"belle-detente-backend/pkg/logger"
	"belle-detente-backend/pkg/security"
	"belle-detente-backend/pkg/validation"
)

// User-facing messages. The anti-spam rejection is generic on purpose (no
// hint whether the bot window or the stale window tripped), and the delivery
// failure points at the phone fallback without leaking provider detail.
const (
	msgInvalidDelay   = "Délai de soumission invalide. Veuillez actualiser la page et réessayer."
	msgDeliveryFailed = "Une erreur est survenue lors de l'envoi. Veuillez nous contacter directement par téléphone."
)

type contactUsecase struct {
	validator *validation.ContactValidator
	sender    email.Sender
	from      string
	to        string
	now       func() time.Time
}

// NewContactUsecase wires the submission pipeline: schema validation, the
// timestamp heuristic, notification rendering and dispatch. from/to are the
// deployment's fixed sender and operator addresses.
func NewContactUsecase(validator *validation.ContactValidator, sender email.Sender, from, to string) domain.ContactUsecase {
	return &contactUsecase{
		validator: validator,
		sender:    sender,
		from:      from,
		to:        to,
		now:       time.Now,
	}
}

// SubmitIndividual handles a private-customer inquiry. Stages run in fixed
// order so cheap rejections short-circuit before the network call.
func (uc *contactUsecase) SubmitIndividual(ctx context.Context, form *domain.IndividualContactForm) (domain.SubmissionResult, error) {
	if fieldErrors := uc.validator.Validate(form); fieldErrors != nil {
		return domain.FieldErrorResult(fieldErrors), nil
	}

	if !security.CheckSubmitWindow(form.Timestamp, uc.now()) {
		return domain.MessageResult(msgInvalidDelay), nil
	}

	contact := validatedIndividual(form)

	rows := []email.Row{
		{Label: "Nom", Value: contact.Name},
		{Label: "Email", Value: contact.Email},
		{Label: "Téléphone", Value: contact.Phone},
		{Label: "Adresse", Value: contact.Address},
		localityRow(contact.PostalCode, contact.City),
		{Label: "Message", Value: contact.Message, Multiline: true},
	}

	subject := fmt.Sprintf("[Contact] %s", contact.Name)
	return uc.dispatch(ctx, "individual", subject, contact.Email, rows)
}

// SubmitPro handles a professional inquiry. The subject resolves the
// establishment type through the shared catalog.
func (uc *contactUsecase) SubmitPro(ctx context.Context, form *domain.ProContactForm) (domain.SubmissionResult, error) {
	if fieldErrors := uc.validator.Validate(form); fieldErrors != nil {
		return domain.FieldErrorResult(fieldErrors), nil
	}

	if !security.CheckSubmitWindow(form.Timestamp, uc.now()) {
		return domain.MessageResult(msgInvalidDelay), nil
	}

	contact := validatedPro(form)
	typeLabel := domain.EstablishmentLabel(contact.EstablishmentType)

	rows := []email.Row{
		{Label: "Nom", Value: contact.Name},
		{Label: "Poste", Value: contact.Role},
		{Label: "Établissement", Value: contact.Establishment},
		{Label: "Type", Value: typeLabel},
		{Label: "Email", Value: contact.Email},
		{Label: "Téléphone", Value: contact.Phone},
		{Label: "Message", Value: contact.Message, Multiline: true},
	}

	subject := fmt.Sprintf("[Pro] %s — %s", contact.Establishment, typeLabel)
	return uc.dispatch(ctx, "pro", subject, contact.Email, rows)
}

// dispatch renders the notification and performs the single delivery
// attempt. Provider detail stays server-side: the caller only ever sees the
// generic phone-fallback message.
func (uc *contactUsecase) dispatch(ctx context.Context, formType, subject, replyTo string, rows []email.Row) (domain.SubmissionResult, error) {
	if uc.to == "" {
		logger.Log.Error("contact email recipient not configured", "form", formType)
		return domain.MessageResult(msgDeliveryFailed), email.ErrNotConfigured
	}

	msg := &email.Message{
		From:    uc.from,
		To:      uc.to,
		ReplyTo: replyTo,
		Subject: subject,
		HTML:    email.RenderNotification(subject, rows),
	}

	if err := uc.sender.Send(ctx, msg); err != nil {
		logger.Log.Error("contact email dispatch failed", "form", formType, "error", err)
		return domain.MessageResult(msgDeliveryFailed), err
	}

	return domain.SuccessResult(), nil
}

// localityRow merges postal code and city into a single row the way the
// notification presents them, degrading to whichever one was provided.
func localityRow(postalCode, city string) email.Row {
	switch {
	case postalCode != "" && city != "":
		return email.Row{Label: "Ville", Value: postalCode + " " + city}
	case postalCode != "":
		return email.Row{Label: "Code postal", Value: postalCode}
	default:
		return email.Row{Label: "Ville", Value: city}
	}
}

func validatedIndividual(form *domain.IndividualContactForm) *domain.ValidatedIndividualContact {
	return &domain.ValidatedIndividualContact{
		Name:               strings.TrimSpace(form.Name),
		Email:              strings.TrimSpace(form.Email),
		Phone:              strings.TrimSpace(form.Phone),
		Address:            strings.TrimSpace(form.Address),
		PostalCode:         strings.TrimSpace(form.PostalCode),
		City:               strings.TrimSpace(form.City),
		Message:            form.Message,
		SubmittedAtEpochMs: parseEpochMs(form.Timestamp),
	}
}

func validatedPro(form *domain.ProContactForm) *domain.ValidatedProContact {
	return &domain.ValidatedProContact{
		Name:               strings.TrimSpace(form.Name),
		Role:               strings.TrimSpace(form.Role),
		Establishment:      strings.TrimSpace(form.Establishment),
		EstablishmentType:  form.Type,
		Email:              strings.TrimSpace(form.Email),
		Phone:              strings.TrimSpace(form.Phone),
		Message:            form.Message,
		SubmittedAtEpochMs: parseEpochMs(form.Timestamp),
	}
}

// parseEpochMs runs after CheckSubmitWindow accepted the timestamp, so the
// parse cannot fail here.
func parseEpochMs(timestamp string) int64 {
	ms, _ := strconv.ParseInt(strings.TrimSpace(timestamp), 10, 64)
	return ms
}
