package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cms-admin/internal/naming"
	"cms-admin/internal/service"
)

type SlugHandler struct {
	slugService *service.SlugService
}

func NewSlugHandler(slugService *service.SlugService) *SlugHandler {
	return &SlugHandler{slugService: slugService}
}

type generateSlugRequest struct {
	Title string `json:"title"`
	Mode  string `json:"mode" binding:"omitempty,slug_mode"`
}

type validateNameRequest struct {
	Name     string   `json:"name"`
	Siblings []string `json:"siblings"`
}

// Generate converts a title to a slug. An empty title is not an error; the
// response then reports generated=false.
func (h *SlugHandler) Generate(c *gin.Context) {
	var req generateSlugRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.slugService.Generate(req.Title, req.Mode)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSlugMode) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *SlugHandler) ValidateName(c *gin.Context) {
	var req validateNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.slugService.ValidateName(req.Name, req.Siblings); err != nil {
		var vetoErr *naming.VetoError
		if errors.As(err, &vetoErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"valid": false, "error": vetoErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true})
}
