package ports

import (
	"context"

	"github.com/lanhcare/admin-gateway/internal/core/domain"
)

// PostClient maps post moderation to HTTP calls.
type PostClient interface {
	List(ctx context.Context, q ListQuery) (*domain.Page[domain.Post], error)
	Get(ctx context.Context, id int64) (*domain.Post, error)
	Approve(ctx context.Context, id int64) (*domain.Post, error)
	Reject(ctx context.Context, id int64, reason string) (*domain.Post, error)
	Restore(ctx context.Context, id int64) (*domain.Post, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context, q ListQuery) (*domain.PostStats, error)
}

// CommentClient maps comment moderation to HTTP calls.
type CommentClient interface {
	List(ctx context.Context, q ListQuery) (*domain.Page[domain.Comment], error)
	Get(ctx context.Context, id int64) (*domain.Comment, error)
	Approve(ctx context.Context, id int64) (*domain.Comment, error)
	Reject(ctx context.Context, id int64, reason string) (*domain.Comment, error)
	Restore(ctx context.Context, id int64) (*domain.Comment, error)
	Delete(ctx context.Context, id int64) error
}
