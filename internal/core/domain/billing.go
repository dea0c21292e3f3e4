package domain

// ServicePlan is a purchasable subscription tier.
type ServicePlan struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
	DurationDays int     `json:"durationDays"`
	Status       string  `json:"status"`
}

// Transaction is one payment row in the revenue section.
type Transaction struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"userId"`
	UserEmail       string  `json:"userEmail,omitempty"`
	ServicePlanID   int64   `json:"servicePlanId,omitempty"`
	ServicePlanName string  `json:"servicePlanName,omitempty"`
	Amount          float64 `json:"amount"`
	PaymentMethod   string  `json:"paymentMethod,omitempty"`
	Status          string  `json:"status"`
	TransactionDate string  `json:"transactionDate"`
}

// RevenueStats is the aggregate returned by the revenue statistics endpoint.
type RevenueStats struct {
	TotalRevenue     float64 `json:"totalRevenue"`
	MonthlyRevenue   float64 `json:"monthlyRevenue,omitempty"`
	TransactionCount int64   `json:"transactionCount,omitempty"`
	RefundedAmount   float64 `json:"refundedAmount,omitempty"`
}
