package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/envelope-zero/ledger/pkg/repository"
	"github.com/rs/zerolog/log"
)

// AccountController creates and lists accounts.
type AccountController struct {
	accounts *repository.Repository[models.Account]
}

// Create creates an account with a unique name.
//
// If an account with the name already exists, that account is returned
// unchanged and balance is ignored.
func (c AccountController) Create(ctx context.Context, name string, balance models.Amount) (models.Account, error) {
	account, _, err := c.FindOrCreate(ctx, name, balance)
	return account, err
}

// FindOrCreate works like Create and additionally reports if the
// account was created.
func (c AccountController) FindOrCreate(ctx context.Context, name string, balance models.Amount) (models.Account, bool, error) {
	if balance < 0 {
		return models.Account{}, false, fmt.Errorf("%w: the balance of a new account must not be negative", models.ErrInvalidAmount)
	}

	if err := ctx.Err(); err != nil {
		return models.Account{}, false, err
	}
	ctx = context.WithoutCancel(ctx)

	account, err := c.accounts.InsertIfNotExists(ctx, models.NewAccount(name, balance), "name")
	if errors.Is(err, models.ErrAlreadyExists) {
		log.Debug().Str("name", name).Msg("account exists, returning it")
		account, err = c.accounts.GetByKey("name", name)
		return account, false, err
	}

	return account, err == nil, err
}

// Get returns the account with the ID.
func (c AccountController) Get(id string) (models.Account, error) {
	return c.accounts.GetByID(id)
}

// List returns all accounts in creation order.
func (c AccountController) List() []models.Account {
	return c.accounts.GetAll()
}
