package usecase_test

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"belle-detente-backend/internal/domain"
	"belle-detente-backend/internal/usecase"
	"belle-detente-backend/pkg/email"
	"belle-detente-backend/pkg/logger"
	"belle-detente-backend/pkg/validation"
)

func TestMain(m *testing.M) {
	logger.Init()
	m.Run()
}

// MockSender stands in for the transactional email provider.
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg *email.Message) error {
	return m.Called(ctx, msg).Error(0)
}

const (
	testFrom = "La Belle Détente <contact@labelledetente.fr>"
	testTo   = "operator@labelledetente.fr"
)

func renderedAgo(ago time.Duration) string {
	return strconv.FormatInt(time.Now().Add(-ago).UnixMilli(), 10)
}

func individualForm() *domain.IndividualContactForm {
	return &domain.IndividualContactForm{
		Name:      "Marie Dupont",
		Email:     "marie@example.com",
		Message:   "Bonjour, je voudrais réserver un massage de 60 minutes.",
		Honeypot:  "",
		Timestamp: renderedAgo(5 * time.Second),
	}
}

func proForm() *domain.ProContactForm {
	return &domain.ProContactForm{
		Name:          "Jean Martin",
		Role:          "Directeur",
		Establishment: "Hôtel du Parc",
		Type:          "hotel",
		Email:         "jean@hotelduparc.fr",
		Phone:         "0612345678",
		Message:       "Nous cherchons un intervenant régulier.",
		Honeypot:      "",
		Timestamp:     renderedAgo(30 * time.Second),
	}
}

func newContactUC(sender email.Sender) domain.ContactUsecase {
	return usecase.NewContactUsecase(validation.NewContactValidator(), sender, testFrom, testTo)
}

func TestSubmitIndividualSuccess(t *testing.T) {
	sender := new(MockSender)
	var sent *email.Message
	sender.On("Send", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).(*email.Message) }).
		Return(nil)

	uc := newContactUC(sender)
	result, err := uc.SubmitIndividual(context.Background(), individualForm())

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, result.Status)
	assert.Empty(t, result.FieldErrors)
	assert.Empty(t, result.Message)

	sender.AssertNumberOfCalls(t, "Send", 1)
	assert.Equal(t, "[Contact] Marie Dupont", sent.Subject)
	assert.Equal(t, testFrom, sent.From)
	assert.Equal(t, testTo, sent.To)
	assert.Equal(t, "marie@example.com", sent.ReplyTo)
	assert.Contains(t, sent.HTML, "Marie Dupont")
	assert.Contains(t, sent.HTML, "je voudrais réserver")
}

func TestSubmitIndividualInvalidNameSkipsDispatch(t *testing.T) {
	sender := new(MockSender)
	uc := newContactUC(sender)

	form := individualForm()
	form.Name = "A"

	result, err := uc.SubmitIndividual(context.Background(), form)

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusError, result.Status)
	assert.Contains(t, result.FieldErrors, "name")
	assert.Empty(t, result.Message)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSubmitIndividualHoneypotSkipsDispatch(t *testing.T) {
	sender := new(MockSender)
	uc := newContactUC(sender)

	form := individualForm()
	form.Honeypot = "spam-link"

	result, err := uc.SubmitIndividual(context.Background(), form)

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusError, result.Status)
	assert.Contains(t, result.FieldErrors["_hp"], "Formulaire invalide")
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSubmitIndividualInstantSubmissionRejected(t *testing.T) {
	sender := new(MockSender)
	uc := newContactUC(sender)

	form := individualForm()
	form.Timestamp = renderedAgo(0)

	result, err := uc.SubmitIndividual(context.Background(), form)

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusError, result.Status)
	assert.Empty(t, result.FieldErrors)
	assert.Equal(t, "Délai de soumission invalide. Veuillez actualiser la page et réessayer.", result.Message)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSubmitIndividualStaleFormRejected(t *testing.T) {
	sender := new(MockSender)
	uc := newContactUC(sender)

	form := individualForm()
	form.Timestamp = renderedAgo(2 * time.Hour)

	result, err := uc.SubmitIndividual(context.Background(), form)

	assert.NoError(t, err)
	assert.Equal(t, "Délai de soumission invalide. Veuillez actualiser la page et réessayer.", result.Message)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSubmitIndividualDeliveryFailure(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("provider: 500 internal error"))

	uc := newContactUC(sender)
	result, err := uc.SubmitIndividual(context.Background(), individualForm())

	assert.Error(t, err)
	assert.Equal(t, domain.StatusError, result.Status)
	assert.Equal(t, "Une erreur est survenue lors de l'envoi. Veuillez nous contacter directement par téléphone.", result.Message)
	// Provider detail must never reach the user-facing message
	assert.NotContains(t, result.Message, "provider")
}

func TestSubmitIndividualMissingRecipientIsConfigError(t *testing.T) {
	sender := new(MockSender)
	uc := usecase.NewContactUsecase(validation.NewContactValidator(), sender, testFrom, "")

	result, err := uc.SubmitIndividual(context.Background(), individualForm())

	assert.ErrorIs(t, err, email.ErrNotConfigured)
	assert.Equal(t, "Une erreur est survenue lors de l'envoi. Veuillez nous contacter directement par téléphone.", result.Message)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSubmitIndividualOmitsEmptyOptionalRows(t *testing.T) {
	sender := new(MockSender)
	var sent *email.Message
	sender.On("Send", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).(*email.Message) }).
		Return(nil)

	uc := newContactUC(sender)
	_, err := uc.SubmitIndividual(context.Background(), individualForm())

	assert.NoError(t, err)
	assert.NotContains(t, sent.HTML, "Téléphone")
	assert.NotContains(t, sent.HTML, "Adresse")
}

func TestSubmitIndividualCombinesPostalCodeAndCity(t *testing.T) {
	sender := new(MockSender)
	var sent *email.Message
	sender.On("Send", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).(*email.Message) }).
		Return(nil)

	uc := newContactUC(sender)
	form := individualForm()
	form.PostalCode = "13100"
	form.City = "Aix-en-Provence"

	_, err := uc.SubmitIndividual(context.Background(), form)

	assert.NoError(t, err)
	assert.Contains(t, sent.HTML, "13100 Aix-en-Provence")
}

func TestSubmitIndividualEscapesHTMLInFields(t *testing.T) {
	sender := new(MockSender)
	var sent *email.Message
	sender.On("Send", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).(*email.Message) }).
		Return(nil)

	uc := newContactUC(sender)
	form := individualForm()
	form.Message = `Bonjour <img src=x onerror="alert(1)"> & merci`

	_, err := uc.SubmitIndividual(context.Background(), form)

	assert.NoError(t, err)
	assert.NotContains(t, sent.HTML, "<img")
	assert.Contains(t, sent.HTML, "&lt;img")
	assert.Contains(t, sent.HTML, "&amp; merci")
}

func TestSubmitProSuccessResolvesTypeLabel(t *testing.T) {
	sender := new(MockSender)
	var sent *email.Message
	sender.On("Send", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).(*email.Message) }).
		Return(nil)

	uc := newContactUC(sender)
	result, err := uc.SubmitPro(context.Background(), proForm())

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, result.Status)

	// The subject carries the catalog label, not the raw code
	assert.Equal(t, "[Pro] Hôtel du Parc — Hôtel", sent.Subject)
	assert.True(t, strings.Contains(sent.Subject, "— Hôtel"))
	assert.Equal(t, "jean@hotelduparc.fr", sent.ReplyTo)
	assert.Contains(t, sent.HTML, "Directeur")
}

func TestSubmitProMissingTypeSkipsDispatch(t *testing.T) {
	sender := new(MockSender)
	uc := newContactUC(sender)

	form := proForm()
	form.Type = "restaurant"

	result, err := uc.SubmitPro(context.Background(), form)

	assert.NoError(t, err)
	assert.Contains(t, result.FieldErrors, "type")
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSubmitProHoneypotSkipsDispatch(t *testing.T) {
	sender := new(MockSender)
	uc := newContactUC(sender)

	form := proForm()
	form.Honeypot = "x"

	result, err := uc.SubmitPro(context.Background(), form)

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusError, result.Status)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSubmitProOptionalMessageOmitted(t *testing.T) {
	sender := new(MockSender)
	var sent *email.Message
	sender.On("Send", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).(*email.Message) }).
		Return(nil)

	uc := newContactUC(sender)
	form := proForm()
	form.Message = ""

	result, err := uc.SubmitPro(context.Background(), form)

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, result.Status)
	assert.NotContains(t, sent.HTML, ">Message<")
}

func TestSubmitProUnparseableTimestampRejected(t *testing.T) {
	sender := new(MockSender)
	uc := newContactUC(sender)

	form := proForm()
	form.Timestamp = "yesterday"

	result, err := uc.SubmitPro(context.Background(), form)

	assert.NoError(t, err)
	assert.Equal(t, "Délai de soumission invalide. Veuillez actualiser la page et réessayer.", result.Message)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}
