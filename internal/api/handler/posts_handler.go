package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lanhcare/admin-gateway/internal/core/domain"
	"github.com/lanhcare/admin-gateway/internal/core/ports"
)

// PostsHandler drives the post moderation section.
type PostsHandler struct {
	posts ports.PostClient
	log   zerolog.Logger
}

func NewPostsHandler(posts ports.PostClient, log zerolog.Logger) *PostsHandler {
	return &PostsHandler{posts: posts, log: log}
}

type rejectRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// List godoc
// @Summary  List posts for moderation
// @Tags     posts
// @Produce  json
// @Param    page    query     int     false  "Zero-based page index"
// @Param    status  query     string  false  "Moderation status filter"
// @Success  200     {object}  listView[domain.Post]
// @Router   /admin/posts [get]
func (h *PostsHandler) List(c echo.Context) error {
	q := listQuery(c)
	pg, err := h.posts.List(c.Request().Context(), q)
	return renderList(c, q, pg, err)
}

// Get godoc
// @Summary  Fetch one post
// @Tags     posts
// @Produce  json
// @Param    id   path      int  true  "Post id"
// @Success  200  {object}  detailView[domain.Post]
// @Router   /admin/posts/{id} [get]
func (h *PostsHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	post, err := h.posts.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return renderDetail(c, post, post.Status)
}

// Approve godoc
// @Summary  Approve a pending post
// @Tags     posts
// @Produce  json
// @Param    id   path      int  true  "Post id"
// @Success  200  {object}  listView[domain.Post]
// @Router   /admin/posts/{id}/approve [patch]
func (h *PostsHandler) Approve(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.posts.Approve(ctx, id); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "Post approved", func() (*domain.Page[domain.Post], error) {
		return h.posts.List(ctx, q)
	})
}

// Reject godoc
// @Summary  Reject a post with a reason
// @Tags     posts
// @Accept   json
// @Produce  json
// @Param    id      path      int            true  "Post id"
// @Param    reason  body      rejectRequest  true  "Rejection reason"
// @Success  200     {object}  listView[domain.Post]
// @Router   /admin/posts/{id}/reject [patch]
func (h *PostsHandler) Reject(c echo.Context) error {
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
	if _, err := h.posts.Reject(ctx, id, req.Reason); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "Post rejected", func() (*domain.Page[domain.Post], error) {
		return h.posts.List(ctx, q)
	})
}

// Restore godoc
// @Summary  Restore a rejected post to pending
// @Tags     posts
// @Produce  json
// @Param    id   path      int  true  "Post id"
// @Success  200  {object}  listView[domain.Post]
// @Router   /admin/posts/{id}/restore [patch]
func (h *PostsHandler) Restore(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.posts.Restore(ctx, id); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "Post restored", func() (*domain.Page[domain.Post], error) {
		return h.posts.List(ctx, q)
	})
}

// Delete godoc
// @Summary  Delete a post permanently
// @Tags     posts
// @Produce  json
// @Param    id       path      int     true  "Post id"
// @Param    confirm  query     string  true  "Must be 'true'"
// @Success  200      {object}  listView[domain.Post]
// @Router   /admin/posts/{id} [delete]
func (h *PostsHandler) Delete(c echo.Context) error {
	if err := requireConfirm(c); err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if err := h.posts.Delete(ctx, id); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "Post deleted", func() (*domain.Page[domain.Post], error) {
		return h.posts.List(ctx, q)
	})
}

// Stats godoc
// @Summary  Moderation counters for the posts overview
// @Tags     posts
// @Produce  json
// @Success  200  {object}  domain.PostStats
// @Router   /admin/posts/statistics [get]
func (h *PostsHandler) Stats(c echo.Context) error {
	stats, err := h.posts.Stats(c.Request().Context(), listQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
