package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/lanhcare/admin-gateway/internal/core/domain"
	"github.com/lanhcare/admin-gateway/internal/core/ports"
)

const icd11Path = "/api/admin/icd11"

// ICD11 maps the ICD-11 reference data endpoints to single HTTP calls.
// Chapters and codes are keyed by their WHO URI, which must be path-escaped
// before it can appear as a path segment.
type ICD11 struct {
	c *Client
}

func NewICD11(c *Client) *ICD11 {
	return &ICD11{c: c}
}

func uriSegment(uri string) string {
	return url.PathEscape(uri)
}

func (i *ICD11) Chapters(ctx context.Context, q ports.ListQuery) (*domain.Page[domain.ICD11Chapter], error) {
	env, err := i.c.do(ctx, http.MethodGet, icd11Path+"/chapters", q.Values(), nil)
	if err != nil {
		return nil, err
	}
	return decodePage[domain.ICD11Chapter](env)
}

func (i *ICD11) Chapter(ctx context.Context, uri string) (*domain.ICD11Chapter, error) {
	env, err := i.c.do(ctx, http.MethodGet, icd11Path+"/chapters/"+uriSegment(uri), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.ICD11Chapter](env)
}

func (i *ICD11) CreateChapter(ctx context.Context, in ports.ICD11ChapterInput) (*domain.ICD11Chapter, error) {
	env, err := i.c.do(ctx, http.MethodPost, icd11Path+"/chapters", nil, in)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.ICD11Chapter](env)
}

func (i *ICD11) UpdateChapter(ctx context.Context, uri string, in ports.ICD11ChapterInput) (*domain.ICD11Chapter, error) {
	env, err := i.c.do(ctx, http.MethodPut, icd11Path+"/chapters/"+uriSegment(uri), nil, in)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.ICD11Chapter](env)
}

func (i *ICD11) Codes(ctx context.Context, q ports.ListQuery) (*domain.Page[domain.ICD11Code], error) {
	env, err := i.c.do(ctx, http.MethodGet, icd11Path+"/codes", q.Values(), nil)
	if err != nil {
		return nil, err
	}
	return decodePage[domain.ICD11Code](env)
}

func (i *ICD11) Code(ctx context.Context, uri string) (*domain.ICD11Code, error) {
	env, err := i.c.do(ctx, http.MethodGet, icd11Path+"/codes/"+uriSegment(uri), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.ICD11Code](env)
}

func (i *ICD11) CreateCode(ctx context.Context, in ports.ICD11CodeInput) (*domain.ICD11Code, error) {
	env, err := i.c.do(ctx, http.MethodPost, icd11Path+"/codes", nil, in)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.ICD11Code](env)
}

func (i *ICD11) UpdateCode(ctx context.Context, uri string, in ports.ICD11CodeInput) (*domain.ICD11Code, error) {
	env, err := i.c.do(ctx, http.MethodPut, icd11Path+"/codes/"+uriSegment(uri), nil, in)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.ICD11Code](env)
}

func (i *ICD11) Translations(ctx context.Context, q ports.ListQuery) (*domain.Page[domain.ICD11Translation], error) {
	env, err := i.c.do(ctx, http.MethodGet, icd11Path+"/translations", q.Values(), nil)
	if err != nil {
		return nil, err
	}
	return decodePage[domain.ICD11Translation](env)
}

func (i *ICD11) Translation(ctx context.Context, id int64) (*domain.ICD11Translation, error) {
	env, err := i.c.do(ctx, http.MethodGet, fmt.Sprintf("%s/translations/%d", icd11Path, id), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.ICD11Translation](env)
}

func (i *ICD11) CreateTranslation(ctx context.Context, in ports.ICD11TranslationInput) (*domain.ICD11Translation, error) {
	env, err := i.c.do(ctx, http.MethodPost, icd11Path+"/translations", nil, in)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.ICD11Translation](env)
}

func (i *ICD11) UpdateTranslation(ctx context.Context, id int64, in ports.ICD11TranslationInput) (*domain.ICD11Translation, error) {
	env, err := i.c.do(ctx, http.MethodPut, fmt.Sprintf("%s/translations/%d", icd11Path, id), nil, in)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.ICD11Translation](env)
}
