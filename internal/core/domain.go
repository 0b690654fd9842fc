package core

// User is the session user shape persisted locally and exchanged with the
// backend auth endpoints. Business validation lives server-side; the client
// only carries these fields through.
type User struct {
	ID        int64    `json:"id"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Roles     []string `json:"roles"`
	Currency  string   `json:"currency"`
}

// Expense is a pass-through payload for the expenses resource.
type Expense struct {
	ID            int64   `json:"id,omitempty"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	Date          string  `json:"date"`
	Category      string  `json:"category"`
	PaymentMethod string  `json:"paymentMethod"`
}

// Budget is a pass-through payload for the budgets resource.
type Budget struct {
	ID              int64   `json:"id,omitempty"`
	Name            string  `json:"name"`
	AllocatedAmount float64 `json:"allocatedAmount"`
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate"`
	BudgetType      string  `json:"budgetType"`
}

// Category is an expense category managed through the admin resource.
type Category struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
}

// CurrencyOption describes one entry of the currency catalog persisted under
// the enabledCurrencies / allCurrencies state keys.
type CurrencyOption struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
	Enabled bool   `json:"enabled,omitempty"`
}
