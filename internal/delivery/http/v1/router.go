package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"belle-detente-backend/config"
	"belle-detente-backend/internal/delivery/http/middleware"
	"belle-detente-backend/internal/delivery/http/response"
	"belle-detente-backend/internal/domain"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	CatalogUC domain.CatalogUsecase
	Content   domain.ContentStore
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// All routes are public: this backend serves a brochure site
	NewContactHandler(v1, deps.ContactUC)
	NewCatalogHandler(v1, deps.CatalogUC, deps.Content)

	return r
}
