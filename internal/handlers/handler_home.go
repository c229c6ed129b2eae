package handlers

import (
	"net/http"

	"github.com/SscSPs/utility_billing_app/cmd/docs"
	"github.com/gin-gonic/gin"
)

// getHome godoc
// @Summary Show the status of server.
// @Description Reports the API title and version.
// @Tags root
// @Accept */*
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func getHome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"service": docs.SwaggerInfo.Title,
		"version": docs.SwaggerInfo.Version,
		"status":  "ok",
	})
}

// registerHomeRoutes registers the API root status route.
func registerHomeRoutes(group *gin.RouterGroup) {
	group.GET("/", getHome)
}
