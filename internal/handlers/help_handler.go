package handlers

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"cms-admin/internal/help"
	"cms-admin/pkg/logger"
)

type HelpHandler struct {
	library *help.Library
}

func NewHelpHandler(library *help.Library) *HelpHandler {
	return &HelpHandler{library: library}
}

// Topic renders one help topic as the fragment loaded into the popup.
func (h *HelpHandler) Topic(c *gin.Context) {
	topic := c.Param("topic")

	body, err := h.library.Render(c.Request.Context(), topic)
	if err != nil {
		if errors.Is(err, help.ErrTopicNotFound) {
			renderError(c, http.StatusNotFound, "No help is available for this topic.")
			return
		}
		logger.FromContext(c.Request.Context()).WithError(err).WithField("topic", topic).Error("Failed to render help topic")
		renderError(c, http.StatusInternalServerError, "Help could not be loaded.")
		return
	}

	c.HTML(http.StatusOK, "help.html", gin.H{
		"Topic": topic,
		// Render returns sanitized HTML.
		"Body": template.HTML(body),
	})
}

func (h *HelpHandler) List(c *gin.Context) {
	topics, err := h.library.Topics()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"topics": topics})
}

// Reset drops rendered topics from memory and from the cache.
func (h *HelpHandler) Reset(c *gin.Context) {
	if err := h.library.Reset(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "help cache cleared"})
}
