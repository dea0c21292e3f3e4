package domain

// AdminUser is the platform user row shown in the user management table.
type AdminUser struct {
	ID               int64   `json:"id"`
	Email            string  `json:"email"`
	Fullname         string  `json:"fullname"`
	Role             string  `json:"role"`
	Status           string  `json:"status"`
	TransactionCount int     `json:"transactionCount"`
	TotalSpent       float64 `json:"totalSpent"`
}

// AdminUserDetail is the expanded view behind a single user. The health
// profile and recent transactions are backend-defined and passed through
// untyped: the backend has shipped rows whose enum values no longer parse,
// and the detail view must render around them.
type AdminUserDetail struct {
	AdminUser
	HealthProfile         map[string]any   `json:"healthProfile,omitempty"`
	RecentTransactions    []map[string]any `json:"recentTransactions,omitempty"`
	TotalTransactionCount int              `json:"totalTransactionCount"`
	MealLogCount          int              `json:"mealLogCount"`
}
