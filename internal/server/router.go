package server

import (
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rgehrsitz/taxease/internal/server/docs"
)

//go:generate swag init -g router.go -o docs --parseDependency

// Setup configures the gin engine with all routes and middleware.
// Extra middleware, such as rate limiting, applies to the API group only.
//
// @title TaxEase API
// @version 1.0
// @description Old vs new regime income-tax calculator for FY2024-25.
// @BasePath /api/enhanced-tax
func Setup(h *TaxHandler, logger *log.Logger, apiMiddleware ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(Logger(logger))

	r.GET("/healthz", h.Liveness)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/enhanced-tax", apiMiddleware...)
	api.POST("/calculate", h.Calculate)
	api.POST("/compare-regimes", h.CompareRegimes)
	api.POST("/from-form16", h.FromForm16)
	api.POST("/suggestions", h.Suggestions)

	return r
}
