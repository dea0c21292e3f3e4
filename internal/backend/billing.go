package backend

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/lanhcare/admin-gateway/internal/api/metrics"
	"github.com/lanhcare/admin-gateway/internal/core/domain"
	"github.com/lanhcare/admin-gateway/internal/core/ports"
)

const (
	plansPath   = "/api/admin/service-plans"
	revenuePath = "/api/admin/revenue"
)

// ServicePlans maps service plan management to single HTTP calls.
type ServicePlans struct {
	c *Client
}

func NewServicePlans(c *Client) *ServicePlans {
	return &ServicePlans{c: c}
}

func (s *ServicePlans) List(ctx context.Context, q ports.ListQuery) (*domain.Page[domain.ServicePlan], error) {
	env, err := s.c.do(ctx, http.MethodGet, plansPath, q.Values(), nil)
	if err != nil {
		return nil, err
	}
	return decodePage[domain.ServicePlan](env)
}

func (s *ServicePlans) Get(ctx context.Context, id int64) (*domain.ServicePlan, error) {
	env, err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", plansPath, id), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.ServicePlan](env)
}

func (s *ServicePlans) Create(ctx context.Context, in ports.ServicePlanInput) (*domain.ServicePlan, error) {
	env, err := s.c.do(ctx, http.MethodPost, plansPath, nil, in)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.ServicePlan](env)
}

func (s *ServicePlans) Update(ctx context.Context, id int64, in ports.ServicePlanInput) (*domain.ServicePlan, error) {
	env, err := s.c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", plansPath, id), nil, in)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.ServicePlan](env)
}

func (s *ServicePlans) ChangeStatus(ctx context.Context, id int64, status string) (*domain.ServicePlan, error) {
	env, err := s.c.do(ctx, http.MethodPatch, fmt.Sprintf("%s/%d/status", plansPath, id), nil, statusBody{Status: status})
	if err != nil {
		return nil, err
	}
	return decodeData[domain.ServicePlan](env)
}

func (s *ServicePlans) Delete(ctx context.Context, id int64) error {
	_, err := s.c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", plansPath, id), nil, nil)
	return err
}

// exportExtensions maps the format selector to the saved file extension.
var exportExtensions = map[string]string{
	"CSV":   "csv",
	"EXCEL": "xlsx",
	"PDF":   "pdf",
}

// Revenue maps the revenue and transaction endpoints to single HTTP calls.
type Revenue struct {
	c *Client
}

func NewRevenue(c *Client) *Revenue {
	return &Revenue{c: c}
}

func (r *Revenue) Transactions(ctx context.Context, q ports.ListQuery) (*domain.Page[domain.Transaction], error) {
	env, err := r.c.do(ctx, http.MethodGet, revenuePath+"/transactions", q.Values(), nil)
	if err != nil {
		return nil, err
	}
	return decodePage[domain.Transaction](env)
}

func (r *Revenue) Transaction(ctx context.Context, id int64) (*domain.Transaction, error) {
	env, err := r.c.do(ctx, http.MethodGet, fmt.Sprintf("%s/transactions/%d", revenuePath, id), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.Transaction](env)
}

func (r *Revenue) CreateTransaction(ctx context.Context, in ports.TransactionInput) (*domain.Transaction, error) {
	env, err := r.c.do(ctx, http.MethodPost, revenuePath+"/transactions", nil, in)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.Transaction](env)
}

func (r *Revenue) ChangeTransactionStatus(ctx context.Context, id int64, status string) (*domain.Transaction, error) {
	env, err := r.c.do(ctx, http.MethodPatch, fmt.Sprintf("%s/transactions/%d/status", revenuePath, id), nil, statusBody{Status: status})
	if err != nil {
		return nil, err
	}
	return decodeData[domain.Transaction](env)
}

func (r *Revenue) Statistics(ctx context.Context, q ports.ListQuery) (*domain.RevenueStats, error) {
	env, err := r.c.do(ctx, http.MethodGet, revenuePath+"/statistics", q.Values(), nil)
	if err != nil {
		return nil, err
	}
	return decodeData[domain.RevenueStats](env)
}

// Export streams the filtered transaction list in the requested format.
// The format must already be validated to one of CSV, EXCEL, PDF.
func (r *Revenue) Export(ctx context.Context, format string, q ports.ListQuery) (*ports.Export, error) {
	ext, ok := exportExtensions[format]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported export format %q", domain.ErrValidation, format)
	}

	query := q.Values()
	query.Set("format", format)
	resp, err := r.c.stream(ctx, revenuePath+"/export", query)
	if err != nil {
		return nil, err
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	metrics.ExportsTotal.WithLabelValues(format).Inc()
	return &ports.Export{
		Filename:    fmt.Sprintf("transactions_%s.%s", time.Now().Format("20060102"), ext),
		ContentType: contentType,
		Body:        resp.Body,
	}, nil
}
