package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lanhcare/admin-gateway/internal/core/domain"
	"github.com/lanhcare/admin-gateway/internal/core/ports"
)

// RevenueHandler drives the revenue section: the transaction table, the
// aggregate statistics and the export download.
type RevenueHandler struct {
	revenue ports.RevenueClient
	log     zerolog.Logger
}

func NewRevenueHandler(revenue ports.RevenueClient, log zerolog.Logger) *RevenueHandler {
	return &RevenueHandler{revenue: revenue, log: log}
}

type transactionRequest struct {
	UserID        int64   `json:"userId" validate:"required,gt=0"`
	ServicePlanID int64   `json:"servicePlanId"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PaymentMethod string  `json:"paymentMethod"`
	Status        string  `json:"status" validate:"omitempty,oneof=PENDING COMPLETED FAILED REFUNDED"`
}

// Transactions godoc
// @Summary  List payment transactions
// @Tags     revenue
// @Produce  json
// @Param    page      query     int     false  "Zero-based page index"
// @Param    status    query     string  false  "Transaction status filter"
// @Param    dateFrom  query     string  false  "Inclusive start date (YYYY-MM-DD)"
// @Param    dateTo    query     string  false  "Inclusive end date (YYYY-MM-DD)"
// @Success  200       {object}  listView[domain.Transaction]
// @Router   /admin/revenue/transactions [get]
func (h *RevenueHandler) Transactions(c echo.Context) error {
	q := listQuery(c)
	pg, err := h.revenue.Transactions(c.Request().Context(), q)
	return renderList(c, q, pg, err)
}

// Transaction godoc
// @Summary  Fetch one transaction
// @Tags     revenue
// @Produce  json
// @Param    id   path      int  true  "Transaction id"
// @Success  200  {object}  detailView[domain.Transaction]
// @Router   /admin/revenue/transactions/{id} [get]
func (h *RevenueHandler) Transaction(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	tx, err := h.revenue.Transaction(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return renderDetail(c, tx, tx.Status)
}

// CreateTransaction godoc
// @Summary  Record a transaction manually
// @Tags     revenue
// @Accept   json
// @Produce  json
// @Param    transaction  body      transactionRequest  true  "New transaction"
// @Success  200          {object}  listView[domain.Transaction]
// @Router   /admin/revenue/transactions [post]
func (h *RevenueHandler) CreateTransaction(c echo.Context) error {
	var req transactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.revenue.CreateTransaction(ctx, ports.TransactionInput{
		UserID:        req.UserID,
		ServicePlanID: req.ServicePlanID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Status:        req.Status,
	}); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "Transaction recorded", func() (*domain.Page[domain.Transaction], error) {
		return h.revenue.Transactions(ctx, q)
	})
}

// ChangeTransactionStatus godoc
// @Summary  Change a transaction's status
// @Tags     revenue
// @Produce  json
// @Param    id      path      int     true  "Transaction id"
// @Param    status  query     string  true  "Target status"
// @Success  200     {object}  listView[domain.Transaction]
// @Router   /admin/revenue/transactions/{id}/status [patch]
func (h *RevenueHandler) ChangeTransactionStatus(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	status, err := statusParam(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.revenue.ChangeTransactionStatus(ctx, id, status); err != nil {
		return err
	}

	q := listQuery(c)
	return mutated(c, q, "Transaction status updated", func() (*domain.Page[domain.Transaction], error) {
		return h.revenue.Transactions(ctx, q)
	})
}

// Statistics godoc
// @Summary  Revenue aggregates for the current filter
// @Tags     revenue
// @Produce  json
// @Param    dateFrom  query     string  false  "Inclusive start date (YYYY-MM-DD)"
// @Param    dateTo    query     string  false  "Inclusive end date (YYYY-MM-DD)"
// @Success  200       {object}  domain.RevenueStats
// @Router   /admin/revenue/statistics [get]
func (h *RevenueHandler) Statistics(c echo.Context) error {
	stats, err := h.revenue.Statistics(c.Request().Context(), listQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Export godoc
// @Summary      Download the filtered transaction list
// @Description  Streams the export in CSV, EXCEL or PDF format as an attachment.
// @Tags         revenue
// @Produce      octet-stream
// @Param        format    query  string  false  "CSV, EXCEL or PDF (default CSV)"
// @Param        dateFrom  query  string  false  "Inclusive start date (YYYY-MM-DD)"
// @Param        dateTo    query  string  false  "Inclusive end date (YYYY-MM-DD)"
// @Success      200  {file}  binary
// @Router       /admin/revenue/export [get]
func (h *RevenueHandler) Export(c echo.Context) error {
	format := strings.ToUpper(strings.TrimSpace(c.QueryParam("format")))
	if format == "" {
		format = "CSV"
	}

	export, err := h.revenue.Export(c.Request().Context(), format, listQuery(c))
	if err != nil {
		return err
	}
	defer export.Body.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, export.Filename))
	return c.Stream(http.StatusOK, export.ContentType, export.Body)
}
