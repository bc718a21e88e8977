package models

// Budget represents a named sub-allocation of an account.
//
// The Amount is the budget's own balance. Budget names are unique
// across all budgets, not only within the owning account.
type Budget struct {
	ID        string `json:"id" example:"0f6ac4ee-8f17-4b57-9d57-1ba2db1e76a3"`        // UUID for the resource
	AccountID string `json:"accountId" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the owning account
	Name      string `json:"name" example:"Groceries"`                                 // Name of the budget
	Amount    Amount `json:"amount" example:"30000"`                                   // Amount in minor units
}

// NewBudget returns a budget with a fresh ID.
func NewBudget(name string, amount Amount, accountID string) Budget {
	return Budget{
		ID:        newID(),
		AccountID: accountID,
		Name:      name,
		Amount:    amount,
	}
}

func (b Budget) GetID() string {
	return b.ID
}

func (b Budget) Key(field string) (string, bool) {
	switch field {
	case "id":
		return b.ID, true
	case "name":
		return b.Name, true
	case "accountId":
		return b.AccountID, true
	}
	return "", false
}
