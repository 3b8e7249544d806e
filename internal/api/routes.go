package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the API endpoints and groups them logically.
func RegisterRoutes(router *gin.Engine, h *APIHandler) {

	// --- Design spec lifecycle ---
	designGroup := router.Group("/design")
	{
		designGroup.POST("/generate", h.GenerateDesign) // Create a new design spec from a prompt
		designGroup.POST("/refine", h.RefineDesign)     // Apply feedback to an existing spec
	}

	// --- Code generation ---
	codeGroup := router.Group("/code")
	{
		codeGroup.POST("/generate", h.GenerateCode) // Implement a design spec as project files
	}

	// --- Simple health check ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
