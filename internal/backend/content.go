package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lanhcare/admin-gateway/internal/core/domain"
	"github.com/lanhcare/admin-gateway/internal/core/ports"
)

const (
	postsPath    = "/api/admin/posts"
	commentsPath = "/api/admin/comments"
)

// rejectionBody carries the moderator's reason on reject actions.
type rejectionBody struct {
	RejectionReason string `json:"rejectionReason"`
}

// Posts maps post moderation to single HTTP calls.
type Posts struct {
	c *Client
}

func NewPosts(c *Client) *Posts {
	return &Posts{c: c}
}

func (p *Posts) List(ctx context.Context, q ports.ListQuery) (*domain.Page[domain.Post], error) {
	env, err := p.c.do(ctx, http.MethodGet, postsPath, q.Values(), nil)
	if err != nil {
		return nil, err
	}
	return decodePage[domain.Post](env)
}

func (p *Posts) Get(ctx context.Context, id int64) (*domain.Post, error) {
	env, err := p.c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", postsPath, id), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.Post](env)
}

func (p *Posts) Approve(ctx context.Context, id int64) (*domain.Post, error) {
	env, err := p.c.do(ctx, http.MethodPatch, fmt.Sprintf("%s/%d/approve", postsPath, id), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.Post](env)
}

func (p *Posts) Reject(ctx context.Context, id int64, reason string) (*domain.Post, error) {
	env, err := p.c.do(ctx, http.MethodPatch, fmt.Sprintf("%s/%d/reject", postsPath, id), nil, rejectionBody{RejectionReason: reason})
	if err != nil {
		return nil, err
	}
	return decodeData[domain.Post](env)
}

func (p *Posts) Restore(ctx context.Context, id int64) (*domain.Post, error) {
	env, err := p.c.do(ctx, http.MethodPatch, fmt.Sprintf("%s/%d/restore", postsPath, id), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.Post](env)
}

func (p *Posts) Delete(ctx context.Context, id int64) error {
	_, err := p.c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", postsPath, id), nil, nil)
	return err
}

func (p *Posts) Stats(ctx context.Context, q ports.ListQuery) (*domain.PostStats, error) {
	env, err := p.c.do(ctx, http.MethodGet, postsPath+"/stats", q.Values(), nil)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.PostStats](env)
}

// Comments maps comment moderation to single HTTP calls.
type Comments struct {
	c *Client
}

func NewComments(c *Client) *Comments {
	return &Comments{c: c}
}

func (m *Comments) List(ctx context.Context, q ports.ListQuery) (*domain.Page[domain.Comment], error) {
	env, err := m.c.do(ctx, http.MethodGet, commentsPath, q.Values(), nil)
	if err != nil {
		return nil, err
	}
	return decodePage[domain.Comment](env)
}

func (m *Comments) Get(ctx context.Context, id int64) (*domain.Comment, error) {
	env, err := m.c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", commentsPath, id), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.Comment](env)
}

func (m *Comments) Approve(ctx context.Context, id int64) (*domain.Comment, error) {
	env, err := m.c.do(ctx, http.MethodPatch, fmt.Sprintf("%s/%d/approve", commentsPath, id), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.Comment](env)
}

func (m *Comments) Reject(ctx context.Context, id int64, reason string) (*domain.Comment, error) {
	env, err := m.c.do(ctx, http.MethodPatch, fmt.Sprintf("%s/%d/reject", commentsPath, id), nil, rejectionBody{RejectionReason: reason})
	if err != nil {
		return nil, err
	}
	return decodeData[domain.Comment](env)
}

func (m *Comments) Restore(ctx context.Context, id int64) (*domain.Comment, error) {
	env, err := m.c.do(ctx, http.MethodPatch, fmt.Sprintf("%s/%d/restore", commentsPath, id), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.Comment](env)
}

func (m *Comments) Delete(ctx context.Context, id int64) error {
	_, err := m.c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", commentsPath, id), nil, nil)
	return err
}
