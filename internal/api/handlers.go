package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"design2code/internal/ai"
	"design2code/internal/types"
)

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	designGen *ai.DesignGenerator
	codeGen   *ai.CodeGenerator
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(designGen *ai.DesignGenerator, codeGen *ai.CodeGenerator) *APIHandler {
	return &APIHandler{
		designGen: designGen,
		codeGen:   codeGen,
	}
}

// --- Structs for API Requests/Responses ---

type DesignRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

type RefineRequest struct {
	Spec     types.DesignSpec `json:"spec" binding:"required"`
	Feedback string           `json:"feedback" binding:"required"`
}

type CodeRequest struct {
	Spec      types.DesignSpec `json:"spec" binding:"required"`
	Framework string           `json:"framework"`
}

type CodeResponse struct {
	ProjectID    string                `json:"projectId"`
	Files        []types.GeneratedFile `json:"files"`
	Instructions string                `json:"instructions"`
}

// --- API Handlers ---

// POST /design/generate
func (h *APIHandler) GenerateDesign(c *gin.Context) {
	var req DesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	spec, err := h.designGen.GenerateDesign(c.Request.Context(), req.Prompt)
	if err != nil {
		log.Printf("Error generating design: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, spec)
}

// POST /design/refine
func (h *APIHandler) RefineDesign(c *gin.Context) {
	var req RefineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	spec, err := h.designGen.RefineDesign(c.Request.Context(), &req.Spec, req.Feedback)
	if err != nil {
		log.Printf("Error refining design %q: %v", req.Spec.Name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, spec)
}

// POST /code/generate
func (h *APIHandler) GenerateCode(c *gin.Context) {
	var req CodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	projectID := uuid.New().String()
	log.Printf("Generating code for project %s (design %q, framework %q)", projectID, req.Spec.Name, req.Framework)

	code, err := h.codeGen.GenerateCode(c.Request.Context(), &req.Spec, req.Framework)
	if err != nil {
		log.Printf("Error generating code for project %s: %v", projectID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, CodeResponse{
		ProjectID:    projectID,
		Files:        code.Files,
		Instructions: code.Instructions,
	})
}
