package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lanhcare/admin-gateway/internal/core/domain"
	"github.com/lanhcare/admin-gateway/internal/core/ports"
)

// ICD11Handler drives the ICD-11 reference data section. Chapters and codes
// are addressed by their canonical WHO URI, passed as a query parameter
// because URIs contain slashes; translations use numeric ids. The catalog
// has no delete operations.
type ICD11Handler struct {
	icd ports.ICD11Client
	log zerolog.Logger
}

func NewICD11Handler(icd ports.ICD11Client, log zerolog.Logger) *ICD11Handler {
	return &ICD11Handler{icd: icd, log: log}
}

// uriParam reads the mandatory ?uri= query parameter.
func uriParam(c echo.Context) (string, error) {
	uri := c.QueryParam("uri")
	if uri == "" {
		return "", fmt.Errorf("%w: uri is required", domain.ErrValidation)
	}
	return uri, nil
}

type chapterRequest struct {
	URI     string `json:"uri"`
	Code    string `json:"code"`
	Title   string `json:"title" validate:"required"`
	Version string `json:"version"`
}

type codeRequest struct {
	URI        string `json:"uri"`
	Code       string `json:"code" validate:"required"`
	Title      string `json:"title" validate:"required"`
	ChapterURI string `json:"chapterUri"`
}

type translationRequest struct {
	CodeURI  string `json:"codeUri" validate:"required"`
	Language string `json:"language" validate:"required"`
	Title    string `json:"title" validate:"required"`
}

// ── Chapters ─────────────────────────────────────────────────────────────────

// Chapters godoc
// @Summary  List ICD-11 chapters
// @Tags     icd11
// @Produce  json
// @Success  200  {object}  listView[domain.ICD11Chapter]
// @Router   /admin/icd11/chapters [get]
func (h *ICD11Handler) Chapters(c echo.Context) error {
	q := listQuery(c)
	pg, err := h.icd.Chapters(c.Request().Context(), q)
	return renderList(c, q, pg, err)
}

// Chapter godoc
// @Summary  Fetch one chapter by WHO URI
// @Tags     icd11
// @Produce  json
// @Param    uri  query     string  true  "Canonical chapter URI"
// @Success  200  {object}  detailView[domain.ICD11Chapter]
// @Router   /admin/icd11/chapters/item [get]
func (h *ICD11Handler) Chapter(c echo.Context) error {
	uri, err := uriParam(c)
	if err != nil {
		return err
	}
	chapter, err := h.icd.Chapter(c.Request().Context(), uri)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detailView[domain.ICD11Chapter]{Record: chapter})
}

func (h *ICD11Handler) CreateChapter(c echo.Context) error {
	var req chapterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.icd.CreateChapter(ctx, ports.ICD11ChapterInput{
		URI:     req.URI,
		Code:    req.Code,
		Title:   req.Title,
		Version: req.Version,
	}); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "Chapter created", func() (*domain.Page[domain.ICD11Chapter], error) {
		return h.icd.Chapters(ctx, q)
	})
}

func (h *ICD11Handler) UpdateChapter(c echo.Context) error {
	uri, err := uriParam(c)
	if err != nil {
		return err
	}
	var req chapterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.icd.UpdateChapter(ctx, uri, ports.ICD11ChapterInput{
		URI:     req.URI,
		Code:    req.Code,
		Title:   req.Title,
		Version: req.Version,
	}); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "Chapter updated", func() (*domain.Page[domain.ICD11Chapter], error) {
		return h.icd.Chapters(ctx, q)
	})
}

// ── Codes ────────────────────────────────────────────────────────────────────

// Codes godoc
// @Summary  List ICD-11 diagnosis codes
// @Tags     icd11
// @Produce  json
// @Param    search  query     string  false  "Free-text filter"
// @Success  200     {object}  listView[domain.ICD11Code]
// @Router   /admin/icd11/codes [get]
func (h *ICD11Handler) Codes(c echo.Context) error {
	q := listQuery(c)
	pg, err := h.icd.Codes(c.Request().Context(), q)
	return renderList(c, q, pg, err)
}

// Code godoc
// @Summary  Fetch one code by WHO URI
// @Tags     icd11
// @Produce  json
// @Param    uri  query     string  true  "Canonical code URI"
// @Success  200  {object}  detailView[domain.ICD11Code]
// @Router   /admin/icd11/codes/item [get]
func (h *ICD11Handler) Code(c echo.Context) error {
	uri, err := uriParam(c)
	if err != nil {
		return err
	}
	code, err := h.icd.Code(c.Request().Context(), uri)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detailView[domain.ICD11Code]{Record: code})
}

func (h *ICD11Handler) CreateCode(c echo.Context) error {
	var req codeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.icd.CreateCode(ctx, ports.ICD11CodeInput{
		URI:        req.URI,
		Code:       req.Code,
		Title:      req.Title,
		ChapterURI: req.ChapterURI,
	}); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "Code created", func() (*domain.Page[domain.ICD11Code], error) {
		return h.icd.Codes(ctx, q)
	})
}

func (h *ICD11Handler) UpdateCode(c echo.Context) error {
	uri, err := uriParam(c)
	if err != nil {
		return err
	}
	var req codeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.icd.UpdateCode(ctx, uri, ports.ICD11CodeInput{
		URI:        req.URI,
		Code:       req.Code,
		Title:      req.Title,
		ChapterURI: req.ChapterURI,
	}); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "Code updated", func() (*domain.Page[domain.ICD11Code], error) {
		return h.icd.Codes(ctx, q)
	})
}

// ── Translations ─────────────────────────────────────────────────────────────

// Translations godoc
// @Summary  List code translations
// @Tags     icd11
// @Produce  json
// @Param    language  query     string  false  "Language filter (e.g. vi, en)"
// @Success  200       {object}  listView[domain.ICD11Translation]
// @Router   /admin/icd11/translations [get]
func (h *ICD11Handler) Translations(c echo.Context) error {
	q := listQuery(c)
	pg, err := h.icd.Translations(c.Request().Context(), q)
	return renderList(c, q, pg, err)
}

func (h *ICD11Handler) Translation(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	tr, err := h.icd.Translation(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detailView[domain.ICD11Translation]{Record: tr})
}

func (h *ICD11Handler) CreateTranslation(c echo.Context) error {
	var req translationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.icd.CreateTranslation(ctx, ports.ICD11TranslationInput{
		CodeURI:  req.CodeURI,
		Language: req.Language,
		Title:    req.Title,
	}); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "Translation created", func() (*domain.Page[domain.ICD11Translation], error) {
		return h.icd.Translations(ctx, q)
	})
}

func (h *ICD11Handler) UpdateTranslation(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req translationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.icd.UpdateTranslation(ctx, id, ports.ICD11TranslationInput{
		CodeURI:  req.CodeURI,
		Language: req.Language,
		Title:    req.Title,
	}); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "Translation updated", func() (*domain.Page[domain.ICD11Translation], error) {
		return h.icd.Translations(ctx, q)
	})
}
