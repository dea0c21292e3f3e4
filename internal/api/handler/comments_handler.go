package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lanhcare/admin-gateway/internal/core/domain"
	"github.com/lanhcare/admin-gateway/internal/core/ports"
)

// CommentsHandler drives the comment moderation section. Comments share the
// post lifecycle: pending, approved, rejected, restorable.
type CommentsHandler struct {
	comments ports.CommentClient
	log      zerolog.Logger
}

func NewCommentsHandler(comments ports.CommentClient, log zerolog.Logger) *CommentsHandler {
	return &CommentsHandler{comments: comments, log: log}
}

// List godoc
// @Summary  List comments for moderation
// @Tags     comments
// @Produce  json
// @Param    page    query     int     false  "Zero-based page index"
// @Param    status  query     string  false  "Moderation status filter"
// @Success  200     {object}  listView[domain.Comment]
// @Router   /admin/comments [get]
func (h *CommentsHandler) List(c echo.Context) error {
	q := listQuery(c)
	pg, err := h.comments.List(c.Request().Context(), q)
	return renderList(c, q, pg, err)
}

// Get godoc
// @Summary  Fetch one comment
// @Tags     comments
// @Produce  json
// @Param    id   path      int  true  "Comment id"
// @Success  200  {object}  detailView[domain.Comment]
// @Router   /admin/comments/{id} [get]
func (h *CommentsHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	comment, err := h.comments.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return renderDetail(c, comment, comment.Status)
}

// Approve godoc
// @Summary  Approve a pending comment
// @Tags     comments
// @Produce  json
// @Param    id   path      int  true  "Comment id"
// @Success  200  {object}  listView[domain.Comment]
// @Router   /admin/comments/{id}/approve [patch]
func (h *CommentsHandler) Approve(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.comments.Approve(ctx, id); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "Comment approved", func() (*domain.Page[domain.Comment], error) {
		return h.comments.List(ctx, q)
	})
}

// Reject godoc
// @Summary  Reject a comment with a reason
// @Tags     comments
// @Accept   json
// @Produce  json
// @Param    id      path      int            true  "Comment id"
// @Param    reason  body      rejectRequest  true  "Rejection reason"
// @Success  200     {object}  listView[domain.Comment]
// @Router   /admin/comments/{id}/reject [patch]
func (h *CommentsHandler) Reject(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req rejectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.comments.Reject(ctx, id, req.Reason); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "Comment rejected", func() (*domain.Page[domain.Comment], error) {
		return h.comments.List(ctx, q)
	})
}

// Restore godoc
// @Summary  Restore a rejected comment to pending
// @Tags     comments
// @Produce  json
// @Param    id   path      int  true  "Comment id"
// @Success  200  {object}  listView[domain.Comment]
// @Router   /admin/comments/{id}/restore [patch]
func (h *CommentsHandler) Restore(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.comments.Restore(ctx, id); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "Comment restored", func() (*domain.Page[domain.Comment], error) {
		return h.comments.List(ctx, q)
	})
}

// Delete godoc
// @Summary  Delete a comment permanently
// @Tags     comments
// @Produce  json
// @Param    id       path      int     true  "Comment id"
// @Param    confirm  query     string  true  "Must be 'true'"
// @Success  200      {object}  listView[domain.Comment]
// @Router   /admin/comments/{id} [delete]
func (h *CommentsHandler) Delete(c echo.Context) error {
	if err := requireConfirm(c); err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if err := h.comments.Delete(ctx, id); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "Comment deleted", func() (*domain.Page[domain.Comment], error) {
		return h.comments.List(ctx, q)
	})
}
