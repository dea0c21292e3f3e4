package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lanhcare/admin-gateway/internal/core/domain"
	"github.com/lanhcare/admin-gateway/internal/core/ports"
)

// ShellHandler serves the dashboard chrome: the navigation sections and the
// signed-in administrator, fetched once per page load.
type ShellHandler struct {
	store ports.SessionStore
}

func NewShellHandler(store ports.SessionStore) *ShellHandler {
	return &ShellHandler{store: store}
}

type navItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

type navSection struct {
	Title string    `json:"title"`
	Items []navItem `json:"items"`
}

type shellView struct {
	Account  *domain.Account `json:"account"`
	Sections []navSection    `json:"sections"`
}

// navSections mirrors the sidebar layout. Static by design: the whole
// dashboard is ADMIN-only, so there is no per-role filtering to do.
var navSections = []navSection{
	{Title: "Overview", Items: []navItem{
		{Label: "Dashboard", Path: "/admin/dashboard"},
	}},
	{Title: "Community", Items: []navItem{
		{Label: "Users", Path: "/admin/users"},
		{Label: "Posts", Path: "/admin/posts"},
		{Label: "Comments", Path: "/admin/comments"},
	}},
	{Title: "Billing", Items: []navItem{
		{Label: "Service Plans", Path: "/admin/service-plans"},
		{Label: "Revenue", Path: "/admin/revenue/transactions"},
	}},
	{Title: "Directory", Items: []navItem{
		{Label: "Hospitals", Path: "/admin/hospitals"},
		{Label: "Medical Specialties", Path: "/admin/medical-specialties"},
	}},
	{Title: "Reference Data", Items: []navItem{
		{Label: "ICD-11 Chapters", Path: "/admin/icd11/chapters"},
		{Label: "ICD-11 Codes", Path: "/admin/icd11/codes"},
		{Label: "ICD-11 Translations", Path: "/admin/icd11/translations"},
		{Label: "Food Items", Path: "/admin/food-items"},
		{Label: "Food Types", Path: "/admin/food-types"},
		{Label: "Nutrients", Path: "/admin/nutrients"},
		{Label: "Dietary Restrictions", Path: "/admin/dietary-restrictions"},
		{Label: "Exercise Types", Path: "/admin/exercise-types"},
	}},
}

// Shell godoc
// @Summary  Navigation sections and the signed-in administrator
// @Tags     shell
// @Produce  json
// @Success  200  {object}  shellView
// @Router   /admin/shell [get]
func (h *ShellHandler) Shell(c echo.Context) error {
	snap := h.store.Current()
	return c.JSON(http.StatusOK, shellView{
		Account:  snap.Account,
		Sections: navSections,
	})
}
