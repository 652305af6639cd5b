package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"belle-detente-backend/internal/delivery/http/response"
	"belle-detente-backend/internal/domain"
	"belle-detente-backend/pkg/apperror"
	"belle-detente-backend/pkg/email"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact/individual", handler.SubmitIndividual)
	public.POST("/contact/pro", handler.SubmitPro)
	public.GET("/contact/establishment-types", handler.EstablishmentTypes)
}

// SubmitIndividual godoc
// @Summary      Submit the individual contact form
// @Description  Validates and dispatches a private-customer inquiry. Public endpoint.
// @Tags         contact
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Router       /contact/individual [post]
func (h *ContactHandler) SubmitIndividual(c *gin.Context) {
	var form domain.IndividualContactForm
	if err := c.ShouldBind(&form); err != nil {
		c.Error(apperror.BadRequest("Formulaire invalide"))
		return
	}

	result, err := h.contactUC.SubmitIndividual(c.Request.Context(), &form)
	h.respond(c, result, err)
}

// SubmitPro godoc
// @Summary      Submit the professional contact form
// @Description  Validates and dispatches a hotel/residence/EHPAD inquiry. Public endpoint.
// @Tags         contact
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Router       /contact/pro [post]
func (h *ContactHandler) SubmitPro(c *gin.Context) {
	var form domain.ProContactForm
	if err := c.ShouldBind(&form); err != nil {
		c.Error(apperror.BadRequest("Formulaire invalide"))
		return
	}

	result, err := h.contactUC.SubmitPro(c.Request.Context(), &form)
	h.respond(c, result, err)
}

// EstablishmentTypes godoc
// @Summary      List establishment types
// @Description  Option list for the professional form's venue selector.
// @Tags         contact
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /contact/establishment-types [get]
func (h *ContactHandler) EstablishmentTypes(c *gin.Context) {
	response.Success(c, http.StatusOK, "Establishment types", domain.EstablishmentTypes)
}

// respond maps a SubmissionResult onto the HTTP envelope. Delivery and
// configuration failures route through the error middleware so the raw
// cause is logged without reaching the client.
func (h *ContactHandler) respond(c *gin.Context, result domain.SubmissionResult, err error) {
	if err != nil {
		if errors.Is(err, email.ErrNotConfigured) {
			c.Error(apperror.Unavailable(result.Message, err))
			return
		}
		c.Error(apperror.BadGateway(result.Message, err))
		return
	}

	if result.Status == domain.StatusError {
		if result.FieldErrors != nil {
			response.Error(c, http.StatusBadRequest, "Formulaire invalide", result.FieldErrors)
			return
		}
		response.Error(c, http.StatusBadRequest, result.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "Votre message a bien été envoyé !", result)
}
