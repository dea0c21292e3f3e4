package handler

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lanhcare/admin-gateway/internal/core/domain"
	"github.com/lanhcare/admin-gateway/internal/core/ports"
)

type fakeRevenueClient struct {
	page  *domain.Page[domain.Transaction]
	stats *domain.RevenueStats

	statsErr   error
	lastFormat string
	lastQ      ports.ListQuery
}

func (f *fakeRevenueClient) Transactions(_ context.Context, q ports.ListQuery) (*domain.Page[domain.Transaction], error) {
	f.lastQ = q
	return f.page, nil
}

func (f *fakeRevenueClient) Transaction(_ context.Context, id int64) (*domain.Transaction, error) {
	return &domain.Transaction{ID: id, Status: "COMPLETED"}, nil
}

func (f *fakeRevenueClient) CreateTransaction(_ context.Context, _ ports.TransactionInput) (*domain.Transaction, error) {
	return &domain.Transaction{ID: 1}, nil
}

func (f *fakeRevenueClient) ChangeTransactionStatus(_ context.Context, id int64, status string) (*domain.Transaction, error) {
	return &domain.Transaction{ID: id, Status: status}, nil
}

func (f *fakeRevenueClient) Statistics(_ context.Context, q ports.ListQuery) (*domain.RevenueStats, error) {
	f.lastQ = q
	return f.stats, f.statsErr
}

func (f *fakeRevenueClient) Export(_ context.Context, format string, q ports.ListQuery) (*ports.Export, error) {
	f.lastFormat = format
	f.lastQ = q
	return &ports.Export{
		Filename:    "transactions_20260829.csv",
		ContentType: "text/csv",
		Body:        io.NopCloser(strings.NewReader("id,amount\n1,9.99\n")),
	}, nil
}

func TestRevenueExportStreamsAttachment(t *testing.T) {
	fake := &fakeRevenueClient{}
	h := NewRevenueHandler(fake, zerolog.Nop())

	c, rec := newContext(t, http.MethodGet, "/admin/revenue/export?format=csv&dateFrom=2026-01-01", nil)
	if err := h.Export(c); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	// Format selectors are normalised to upper case before they hit the
	// backend client.
	if fake.lastFormat != "CSV" {
		t.Errorf("format = %q, want CSV", fake.lastFormat)
	}
	if fake.lastQ.DateFrom != "2026-01-01" {
		t.Errorf("dateFrom = %q, not forwarded", fake.lastQ.DateFrom)
	}

	disposition := rec.Header().Get("Content-Disposition")
	if disposition != `attachment; filename="transactions_20260829.csv"` {
		t.Errorf("Content-Disposition = %q", disposition)
	}
	if got := rec.Body.String(); got != "id,amount\n1,9.99\n" {
		t.Errorf("body = %q", got)
	}
}

func TestRevenueExportDefaultsToCSV(t *testing.T) {
	fake := &fakeRevenueClient{}
	h := NewRevenueHandler(fake, zerolog.Nop())

	c, _ := newContext(t, http.MethodGet, "/admin/revenue/export", nil)
	if err := h.Export(c); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if fake.lastFormat != "CSV" {
		t.Errorf("format = %q, want CSV default", fake.lastFormat)
	}
}

func TestRevenueStatisticsForwardsDateRange(t *testing.T) {
	fake := &fakeRevenueClient{stats: &domain.RevenueStats{TotalRevenue: 1234.5}}
	h := NewRevenueHandler(fake, zerolog.Nop())

	c, rec := newContext(t, http.MethodGet, "/admin/revenue/statistics?dateFrom=2026-01-01&dateTo=2026-06-30", nil)
	if err := h.Statistics(c); err != nil {
		t.Fatalf("Statistics() error = %v", err)
	}

	if fake.lastQ.DateFrom != "2026-01-01" || fake.lastQ.DateTo != "2026-06-30" {
		t.Errorf("query = %+v", fake.lastQ)
	}
	stats := decodeBody[domain.RevenueStats](t, rec)
	if stats.TotalRevenue != 1234.5 {
		t.Errorf("TotalRevenue = %v", stats.TotalRevenue)
	}
}
