package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cms-admin/internal/service"
	"cms-admin/internal/ui/popup"
	"cms-admin/internal/ui/selection"
)

const (
	selectionActionSync   = "sync"
	selectionActionInvert = "invert"
)

// SelectionHandler exposes the row and radio class computations to
// scripted clients.
type SelectionHandler struct {
	popup popup.Config
}

func NewSelectionHandler(popupConfig popup.Config) *SelectionHandler {
	return &SelectionHandler{popup: popupConfig.WithDefaults()}
}

type selectionRequest struct {
	Rows   []selection.Row `json:"rows"`
	Action string          `json:"action"`
}

type rowState struct {
	Name    string `json:"name"`
	Checked bool   `json:"checked"`
	Class   string `json:"class"`
}

type radioGroupRequest struct {
	Name     string   `json:"name" binding:"required"`
	Options  []string `json:"options" binding:"required,min=1"`
	Selected string   `json:"selected"`
}

type radiosRequest struct {
	Groups []radioGroupRequest `json:"groups" binding:"required,dive"`
}

type radioGroupState struct {
	Name     string           `json:"name"`
	Selected string           `json:"selected"`
	Cells    []selection.Cell `json:"cells"`
}

// Selection recomputes row classes. "invert" flips every row first; "sync"
// (the default) only maps the posted state.
func (h *SelectionHandler) Selection(c *gin.Context) {
	var req selectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tracker := selection.FromRows(req.Rows)
	if tracker.Len() != len(req.Rows) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "row names must be unique"})
		return
	}
	switch req.Action {
	case "", selectionActionSync:
	case selectionActionInvert:
		tracker.InvertAll()
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrUnknownAction.Error()})
		return
	}

	rows := tracker.Rows()
	states := make([]rowState, 0, len(rows))
	for _, row := range rows {
		states = append(states, rowState{Name: row.Name, Checked: row.Checked, Class: row.Class()})
	}

	c.JSON(http.StatusOK, gin.H{
		"rows":     states,
		"selected": tracker.Selected(),
	})
}

func (h *SelectionHandler) Radios(c *gin.Context) {
	var req radiosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	groups := make([]radioGroupState, 0, len(req.Groups))
	for _, g := range req.Groups {
		group := selection.NewRadioGroup(g.Name, g.Options, g.Selected)
		groups = append(groups, radioGroupState{
			Name:     group.Name,
			Selected: group.Selected(),
			Cells:    group.Cells(),
		})
	}

	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

func (h *SelectionHandler) Popup(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"popup": h.popup,
		"attrs": h.popup.Attrs(),
	})
}
