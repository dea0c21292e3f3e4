package domain

// Post is a community article awaiting or past moderation.
type Post struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Content         string `json:"content,omitempty"`
	AuthorID        int64  `json:"authorId"`
	AuthorName      string `json:"authorName"`
	Status          string `json:"status"`
	RejectionReason string `json:"rejectionReason,omitempty"`
	CommentCount    int    `json:"commentCount"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt,omitempty"`
}

// Comment is a reply on a post, moderated with the same lifecycle as posts.
type Comment struct {
	ID              int64  `json:"id"`
	PostID          int64  `json:"postId"`
	PostTitle       string `json:"postTitle,omitempty"`
	AuthorID        int64  `json:"authorId"`
	AuthorName      string `json:"authorName"`
	Content         string `json:"content"`
	Status          string `json:"status"`
	RejectionReason string `json:"rejectionReason,omitempty"`
	CreatedAt       string `json:"createdAt"`
}

// PostStats aggregates moderation counts for the posts overview.
type PostStats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}
