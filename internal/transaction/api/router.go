package api

import (
	"github.com/gin-gonic/gin"
	"github.com/ridloal/product-transactions/internal/platform/middleware"
)

func NewRouter(h *TransactionHandler) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery())
	router.RedirectTrailingSlash = false

	router.GET("/healthz", h.Health)
	h.RegisterRoutes(router.Group("/api"))
	return router
}
