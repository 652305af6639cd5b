package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"belle-detente-backend/internal/delivery/http/response"
	"belle-detente-backend/internal/domain"
	"belle-detente-backend/pkg/apperror"
)

type CatalogHandler struct {
	catalogUC domain.CatalogUsecase
	store     domain.ContentStore
}

// NewCatalogHandler registers the read-only content catalog routes.
func NewCatalogHandler(public *gin.RouterGroup, catalogUC domain.CatalogUsecase, store domain.ContentStore) {
	handler := &CatalogHandler{
		catalogUC: catalogUC,
		store:     store,
	}

	public.GET("/experiences", handler.ListExperiences)
	public.GET("/experiences/:id", handler.GetExperience)
	public.GET("/experiences/:id/booking", handler.GetBooking)
	public.GET("/site", handler.GetSite)
}

type experienceView struct {
	domain.Experience
	MinPrice int `json:"minPrice"`
}

type bookingView struct {
	ExperienceID string `json:"experienceId"`
	DurationID   string `json:"durationId"`
	URL          string `json:"url"`
	CalLink      string `json:"calLink"`
}

// ListExperiences godoc
// @Summary      List all experiences
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /experiences [get]
func (h *CatalogHandler) ListExperiences(c *gin.Context) {
	experiences := h.catalogUC.ListExperiences()
	views := make([]experienceView, 0, len(experiences))
	for _, exp := range experiences {
		min, _ := h.catalogUC.MinPrice(exp.ID)
		views = append(views, experienceView{Experience: exp, MinPrice: min})
	}
	response.Success(c, http.StatusOK, "Experiences", views)
}

// GetExperience godoc
// @Summary      Get one experience by ID
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /experiences/{id} [get]
func (h *CatalogHandler) GetExperience(c *gin.Context) {
	exp := h.catalogUC.GetExperience(c.Param("id"))
	if exp == nil {
		c.Error(apperror.NotFound("Experience not found"))
		return
	}
	min, _ := h.catalogUC.MinPrice(exp.ID)
	response.Success(c, http.StatusOK, "Experience", experienceView{Experience: *exp, MinPrice: min})
}

// GetBooking godoc
// @Summary      Resolve the booking link for an experience
// @Description  Uses the duration query parameter when given, otherwise the experience's recommended duration.
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /experiences/{id}/booking [get]
func (h *CatalogHandler) GetBooking(c *gin.Context) {
	exp := h.catalogUC.GetExperience(c.Param("id"))
	if exp == nil {
		c.Error(apperror.NotFound("Experience not found"))
		return
	}

	duration := h.catalogUC.RecommendedDuration(exp.ID)
	if requested := c.Query("duration"); requested != "" {
		owner, d := h.catalogUC.GetDuration(requested)
		if d == nil || owner.ID != exp.ID {
			c.Error(apperror.NotFound("Duration not found for this experience"))
			return
		}
		duration = d
	}

	response.Success(c, http.StatusOK, "Booking link", bookingView{
		ExperienceID: exp.ID,
		DurationID:   duration.ID,
		URL:          h.catalogUC.BookingURL(duration.ID),
		CalLink:      h.catalogUC.BookingCalLink(duration.ID),
	})
}

// GetSite godoc
// @Summary      Get the public site configuration
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /site [get]
func (h *CatalogHandler) GetSite(c *gin.Context) {
	response.Success(c, http.StatusOK, "Site configuration", h.store.Site())
}
