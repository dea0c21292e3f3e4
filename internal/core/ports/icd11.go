package ports

import (
	"context"

	"github.com/lanhcare/admin-gateway/internal/core/domain"
)

// ICD11ChapterInput carries a chapter create or update payload.
type ICD11ChapterInput struct {
	URI     string `json:"uri,omitempty"`
	Code    string `json:"code,omitempty"`
	Title   string `json:"title"`
	Version string `json:"version,omitempty"`
}

// ICD11CodeInput carries a code create or update payload.
type ICD11CodeInput struct {
	URI        string `json:"uri,omitempty"`
	Code       string `json:"code"`
	Title      string `json:"title"`
	ChapterURI string `json:"chapterUri,omitempty"`
}

// ICD11TranslationInput carries a translation create or update payload.
type ICD11TranslationInput struct {
	CodeURI  string `json:"codeUri"`
	Language string `json:"language"`
	Title    string `json:"title"`
}

// ICD11Client maps the ICD-11 reference data endpoints to HTTP calls.
// Chapters and codes are addressed by their WHO URI (path-escaped on the
// wire); translations use numeric ids. None of the three support delete.
type ICD11Client interface {
	Chapters(ctx context.Context, q ListQuery) (*domain.Page[domain.ICD11Chapter], error)
	Chapter(ctx context.Context, uri string) (*domain.ICD11Chapter, error)
	CreateChapter(ctx context.Context, in ICD11ChapterInput) (*domain.ICD11Chapter, error)
	UpdateChapter(ctx context.Context, uri string, in ICD11ChapterInput) (*domain.ICD11Chapter, error)

	Codes(ctx context.Context, q ListQuery) (*domain.Page[domain.ICD11Code], error)
	Code(ctx context.Context, uri string) (*domain.ICD11Code, error)
	CreateCode(ctx context.Context, in ICD11CodeInput) (*domain.ICD11Code, error)
	UpdateCode(ctx context.Context, uri string, in ICD11CodeInput) (*domain.ICD11Code, error)

	Translations(ctx context.Context, q ListQuery) (*domain.Page[domain.ICD11Translation], error)
	Translation(ctx context.Context, id int64) (*domain.ICD11Translation, error)
	CreateTranslation(ctx context.Context, in ICD11TranslationInput) (*domain.ICD11Translation, error)
	UpdateTranslation(ctx context.Context, id int64, in ICD11TranslationInput) (*domain.ICD11Translation, error)
}
