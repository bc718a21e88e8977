package models

// Account represents an account holding money, e.g. a bank account.
type Account struct {
	ID      string `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // UUID for the resource
	Name    string `json:"name" example:"Checking"`                           // Name of the account, unique across all accounts
	Balance Amount `json:"balance" example:"180000"`                          // Balance in minor units
}

// NewAccount returns an account with a fresh ID.
func NewAccount(name string, balance Amount) Account {
	return Account{
		ID:      newID(),
		Name:    name,
		Balance: balance,
	}
}

func (a Account) GetID() string {
	return a.ID
}

func (a Account) Key(field string) (string, bool) {
	switch field {
	case "id":
		return a.ID, true
	case "name":
		return a.Name, true
	}
	return "", false
}
