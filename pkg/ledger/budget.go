package ledger

import (
	"context"
	"fmt"

	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/envelope-zero/ledger/pkg/repository"
)

// BudgetController creates and lists budgets.
type BudgetController struct {
	accounts *repository.Repository[models.Account]
	budgets  *repository.Repository[models.Budget]
}

// Create creates a budget for an existing account.
//
// Budget names are unique across all accounts. Unlike accounts, a
// duplicate name is an error wrapping models.ErrAlreadyExists.
// A negative amount is rejected with models.ErrInvalidAmount.
func (c BudgetController) Create(ctx context.Context, name, accountID string, amount models.Amount) (models.Budget, error) {
	if amount < 0 {
		return models.Budget{}, fmt.Errorf("%w: the amount of a new budget must not be negative", models.ErrInvalidAmount)
	}

	if err := ctx.Err(); err != nil {
		return models.Budget{}, err
	}
	ctx = context.WithoutCancel(ctx)

	account, err := c.accounts.GetByID(accountID)
	if err != nil {
		return models.Budget{}, err
	}

	return c.budgets.InsertIfNotExists(ctx, models.NewBudget(name, amount, account.ID), "name")
}

// List returns all budgets in creation order.
func (c BudgetController) List() []models.Budget {
	return c.budgets.GetAll()
}
