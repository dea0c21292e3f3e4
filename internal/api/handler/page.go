package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lanhcare/admin-gateway/internal/backend"
	"github.com/lanhcare/admin-gateway/internal/core/domain"
	"github.com/lanhcare/admin-gateway/internal/core/ports"
)

// pageSize is fixed for every admin table; it is not user-configurable.
const pageSize = 20

// toast is the single user-visible notification a request may carry.
// Exactly one toast per user action.
type toast struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

func successToast(msg string) *toast {
	return &toast{Level: "success", Message: msg}
}

func errorToast(err error) *toast {
	return &toast{Level: "error", Message: backend.UserMessage(err)}
}

// listView is the uniform list payload every section handler renders.
type listView[T any] struct {
	Items         []T    `json:"items"`
	Page          int    `json:"page"`
	PageSize      int    `json:"pageSize"`
	TotalElements int64  `json:"totalElements"`
	TotalPages    int    `json:"totalPages"`
	// CanPrev/CanNext mirror the pageable first/last flags so pagination
	// controls disable themselves at the bounds.
	CanPrev bool   `json:"canPrev"`
	CanNext bool   `json:"canNext"`
	Toast   *toast `json:"toast,omitempty"`
}

func newListView[T any](pg *domain.Page[T], t *toast) listView[T] {
	items := pg.Content
	if items == nil {
		items = []T{}
	}
	return listView[T]{
		Items:         items,
		Page:          pg.Pageable.PageNumber,
		PageSize:      pg.Pageable.PageSize,
		TotalElements: pg.Pageable.TotalElements,
		TotalPages:    pg.Pageable.TotalPages,
		CanPrev:       !pg.Pageable.First,
		CanNext:       !pg.Pageable.Last,
		Toast:         t,
	}
}

// renderList is the shared tail of every list fetch: a well-formed page
// renders as-is; a malformed envelope or an upstream failure degrades to an
// empty page plus an error toast, still HTTP 200 — visually the same as an
// empty result but for the toast. Session expiry is the one failure that
// must bubble so the guard semantics hold.
func renderList[T any](c echo.Context, q ports.ListQuery, pg *domain.Page[T], err error) error {
	if err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			return err
		}
		return c.JSON(http.StatusOK, newListView(domain.EmptyPage[T](q.Page, q.Size), errorToast(err)))
	}
	return c.JSON(http.StatusOK, newListView(pg, nil))
}

// mutated is the shared tail of every fire-and-refetch mutation: the action
// succeeded, so re-run the current list fetch and attach the success toast.
// One toast per action — if the refetch itself fails the success toast
// stands and the list degrades to empty, the same as any failed fetch.
func mutated[T any](c echo.Context, q ports.ListQuery, msg string, refetch func() (*domain.Page[T], error)) error {
	pg, err := refetch()
	if err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			return err
		}
		pg = domain.EmptyPage[T](q.Page, q.Size)
	}
	return c.JSON(http.StatusOK, newListView(pg, successToast(msg)))
}

// listQuery parses pagination and the shared filters from the request.
// The page index is zero-based and clamped at 0; size is the fixed constant.
func listQuery(c echo.Context) ports.ListQuery {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 0 {
		page = 0
	}
	return ports.ListQuery{
		Page:     page,
		Size:     pageSize,
		Search:   c.QueryParam("search"),
		Status:   c.QueryParam("status"),
		Role:     c.QueryParam("role"),
		Language: c.QueryParam("language"),
		DateFrom: c.QueryParam("dateFrom"),
		DateTo:   c.QueryParam("dateTo"),
	}
}

// idParam parses the numeric :id path parameter. Non-numeric input is a
// validation failure, caught before any request is sent.
func idParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id must be a positive number", domain.ErrValidation)
	}
	return id, nil
}

// requireConfirm enforces the explicit confirmation step on destructive
// actions: the request must carry ?confirm=true or nothing is issued.
func requireConfirm(c echo.Context) error {
	if c.QueryParam("confirm") != "true" {
		return domain.ErrConfirmationRequired
	}
	return nil
}

// statusParam reads and requires the target status for change-status
// actions.
func statusParam(c echo.Context) (string, error) {
	status := c.QueryParam("status")
	if status == "" {
		var body struct {
			Status string `json:"status"`
		}
		if err := c.Bind(&body); err == nil {
			status = body.Status
		}
	}
	if status == "" {
		return "", fmt.Errorf("%w: status is required", domain.ErrValidation)
	}
	return status, nil
}

// detailView wraps a single record with its resolved status label so tables
// and detail panes never render a raw unknown enum.
type detailView[T any] struct {
	Record      *T     `json:"record"`
	StatusLabel string `json:"statusLabel,omitempty"`
	Toast       *toast `json:"toast,omitempty"`
}

func renderDetail[T any](c echo.Context, record *T, status string) error {
	return c.JSON(http.StatusOK, detailView[T]{Record: record, StatusLabel: domain.StatusLabel(status)})
}
