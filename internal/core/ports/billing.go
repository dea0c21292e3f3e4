package ports

import (
	"context"
	"io"

	"github.com/lanhcare/admin-gateway/internal/core/domain"
)

// ServicePlanInput carries a service plan create or update payload.
type ServicePlanInput struct {
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
	DurationDays int     `json:"durationDays"`
	Status       string  `json:"status,omitempty"`
}

// TransactionInput carries a manually recorded transaction.
type TransactionInput struct {
	UserID        int64   `json:"userId"`
	ServicePlanID int64   `json:"servicePlanId,omitempty"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod,omitempty"`
	Status        string  `json:"status,omitempty"`
}

// Export is a binary download produced by the export endpoint. The caller
// owns Body and must close it after streaming.
type Export struct {
	Filename    string
	ContentType string
	Body        io.ReadCloser
}

// ServicePlanClient maps service plan management to HTTP calls.
type ServicePlanClient interface {
	List(ctx context.Context, q ListQuery) (*domain.Page[domain.ServicePlan], error)
	Get(ctx context.Context, id int64) (*domain.ServicePlan, error)
	Create(ctx context.Context, in ServicePlanInput) (*domain.ServicePlan, error)
	Update(ctx context.Context, id int64, in ServicePlanInput) (*domain.ServicePlan, error)
	ChangeStatus(ctx context.Context, id int64, status string) (*domain.ServicePlan, error)
	Delete(ctx context.Context, id int64) error
}

// RevenueClient maps the revenue and transaction endpoints to HTTP calls.
type RevenueClient interface {
	Transactions(ctx context.Context, q ListQuery) (*domain.Page[domain.Transaction], error)
	Transaction(ctx context.Context, id int64) (*domain.Transaction, error)
	CreateTransaction(ctx context.Context, in TransactionInput) (*domain.Transaction, error)
	ChangeTransactionStatus(ctx context.Context, id int64, status string) (*domain.Transaction, error)
	Statistics(ctx context.Context, q ListQuery) (*domain.RevenueStats, error)
	// Export fetches the filtered transaction list as CSV, EXCEL or PDF.
	Export(ctx context.Context, format string, q ListQuery) (*Export, error)
}
