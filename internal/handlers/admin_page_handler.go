package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"cms-admin/internal/content"
	"cms-admin/internal/middleware"
	"cms-admin/internal/naming"
	"cms-admin/internal/service"
	"cms-admin/internal/ui/namegen"
	"cms-admin/internal/ui/selection"
	"cms-admin/pkg/logger"
)

// AdminPageHandler renders the server-side admin forms. State changes are
// answered by rendering the page again with a notice.
type AdminPageHandler struct {
	contentsService *service.ContentsService
	slugService     *service.SlugService
}

func NewAdminPageHandler(contentsService *service.ContentsService, slugService *service.SlugService) *AdminPageHandler {
	return &AdminPageHandler{
		contentsService: contentsService,
		slugService:     slugService,
	}
}

type addForm struct {
	Title string
	Name  string
	Kind  string
}

type contentRow struct {
	Item    content.Item
	Checked bool
}

func (h *AdminPageHandler) page(c *gin.Context, title string, notice *service.Notice) gin.H {
	return gin.H{
		"Title":     title,
		"Folder":    h.contentsService.Folder().Name,
		"CSRFToken": middleware.CSRFToken(c),
		"Notice":    notice,
	}
}

func (h *AdminPageHandler) AddForm(c *gin.Context) {
	data := h.page(c, "Add item", nil)
	data["Form"] = addForm{}
	c.HTML(http.StatusOK, "add.html", data)
}

// Add either fills the name from the title (generate_name) or creates the
// item.
func (h *AdminPageHandler) Add(c *gin.Context) {
	values, ok := postedValues(c)
	if !ok {
		return
	}

	if _, generate := values["generate_name"]; generate {
		button := namegen.NewButton()
		handle := namegen.Attach(
			namegen.FormField(values, "title"),
			namegen.FormField(values, "name"),
			button,
			h.slugService.Generator(),
		)
		defer handle.Close()
		button.Press()

		// A generated name that cannot be used is reported before submit.
		var notice *service.Notice
		if name := values.Get("name"); name != "" {
			if err := h.contentsService.CheckName(name); err != nil {
				_, message := formError(err)
				notice = &service.Notice{Kind: service.NoticeWarn, Message: message}
			}
		}

		data := h.page(c, "Add item", notice)
		data["Form"] = formFromValues(values)
		c.HTML(http.StatusOK, "add.html", data)
		return
	}

	item, err := h.contentsService.Add(values.Get("name"), values.Get("title"), values.Get("kind"))
	if err != nil {
		status, message := formError(err)
		data := h.page(c, "Add item", &service.Notice{Kind: service.NoticeError, Message: message})
		data["Form"] = formFromValues(values)
		c.HTML(status, "add.html", data)
		return
	}

	logger.FromContext(c.Request.Context()).WithField("name", item.Name).Info("Item added")

	notice := &service.Notice{Kind: service.NoticeInfo, Message: fmt.Sprintf("Added %q.", item.Name)}
	h.renderContents(c, http.StatusCreated, notice, h.contentsService.Selection(nil))
}

func (h *AdminPageHandler) Contents(c *gin.Context) {
	h.renderContents(c, http.StatusOK, nil, h.contentsService.Selection(nil))
}

// ContentsAction handles the contents form buttons: invert_selection,
// delete and rename.
func (h *AdminPageHandler) ContentsAction(c *gin.Context) {
	values, ok := postedValues(c)
	if !ok {
		return
	}
	checked := values["names"]

	switch {
	case has(values, "invert_selection"):
		h.renderContents(c, http.StatusOK, nil, h.contentsService.Invert(checked))
	case has(values, "delete"):
		notice := h.contentsService.Delete(checked)
		h.renderContents(c, http.StatusOK, &notice, h.contentsService.Selection(nil))
	case has(values, "rename"):
		notice := h.contentsService.Rename(values["orignames"], values["newnames"])
		status := http.StatusOK
		if notice.Kind == service.NoticeError {
			status = http.StatusUnprocessableEntity
		}
		h.renderContents(c, status, &notice, h.contentsService.Selection(checked))
	default:
		renderError(c, http.StatusBadRequest, service.ErrUnknownAction.Error())
	}
}

func (h *AdminPageHandler) renderContents(c *gin.Context, status int, notice *service.Notice, tracker *selection.Tracker) {
	items := h.contentsService.Items()
	rows := make([]contentRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, contentRow{Item: item, Checked: tracker.IsChecked(item.Name)})
	}

	data := h.page(c, "Contents", notice)
	data["Rows"] = rows
	c.HTML(status, "contents.html", data)
}

func (h *AdminPageHandler) LocalRoles(c *gin.Context) {
	h.renderLocalRoles(c, http.StatusOK, nil, h.contentsService.RoleGroups())
}

func (h *AdminPageHandler) SaveLocalRoles(c *gin.Context) {
	values, ok := postedValues(c)
	if !ok {
		return
	}

	choices := make(map[string]string)
	for _, group := range h.contentsService.GroupNames() {
		choices[group] = values.Get(group + "_role")
	}

	notice, err := h.contentsService.SaveLocalRoles(choices)
	if err != nil {
		groups := h.contentsService.RoleGroups()
		for _, group := range groups {
			if choice := choices[group.Name]; hasOption(group, choice) {
				group.Select(choice)
			}
		}
		h.renderLocalRoles(c, http.StatusUnprocessableEntity, &notice, groups)
		return
	}

	logger.FromContext(c.Request.Context()).WithField("roles", len(choices)).Info("Local roles saved")
	h.renderLocalRoles(c, http.StatusOK, &notice, h.contentsService.RoleGroups())
}

func (h *AdminPageHandler) renderLocalRoles(c *gin.Context, status int, notice *service.Notice, groups []*selection.RadioGroup) {
	var options []string
	if len(groups) > 0 {
		options = groups[0].Options()
	}

	data := h.page(c, "Local roles", notice)
	data["Groups"] = groups
	data["Options"] = options
	c.HTML(status, "local_roles.html", data)
}

func hasOption(group *selection.RadioGroup, option string) bool {
	for _, candidate := range group.Options() {
		if candidate == option {
			return true
		}
	}
	return false
}

func postedValues(c *gin.Context) (url.Values, bool) {
	if err := c.Request.ParseForm(); err != nil {
		renderError(c, http.StatusBadRequest, "invalid form data")
		return nil, false
	}
	return c.Request.PostForm, true
}

func formFromValues(values url.Values) addForm {
	return addForm{
		Title: values.Get("title"),
		Name:  values.Get("name"),
		Kind:  values.Get("kind"),
	}
}

func has(values url.Values, key string) bool {
	_, ok := values[key]
	return ok
}

func formError(err error) (int, string) {
	var vetoErr *naming.VetoError
	switch {
	case errors.As(err, &vetoErr):
		return http.StatusUnprocessableEntity, vetoErr.Message
	case errors.Is(err, content.ErrTitleRequired):
		return http.StatusUnprocessableEntity, "Title is required."
	default:
		return http.StatusInternalServerError, err.Error()
	}
}

func renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", gin.H{
		"Status":  http.StatusText(status),
		"Message": message,
	})
}
