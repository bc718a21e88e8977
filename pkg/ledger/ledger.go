// Package ledger implements the operations on accounts, budgets and
// transactions on top of their repositories.
package ledger

import (
	"context"
	"fmt"

	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/envelope-zero/ledger/pkg/repository"
)

// Collection names used with a repository.Backend.
const (
	CollectionAccounts     = "accounts"
	CollectionBudgets      = "budgets"
	CollectionTransactions = "transactions"
)

// Ledger bundles the controllers working on one set of repositories.
type Ledger struct {
	Accounts     AccountController
	Budgets      BudgetController
	Transactions *TransactionController

	pingers []func(context.Context) error
}

// New returns a Ledger working on the repositories.
//
// notifier may be nil.
func New(
	accounts *repository.Repository[models.Account],
	budgets *repository.Repository[models.Budget],
	transactions *repository.Repository[models.Transaction],
	notifier Notifier,
) *Ledger {
	return &Ledger{
		Accounts: AccountController{accounts: accounts},
		Budgets:  BudgetController{accounts: accounts, budgets: budgets},
		Transactions: &TransactionController{
			transactions: transactions,
			accounts:     accounts,
			budgets:      budgets,
			resolver:     Resolver{accounts: accounts, budgets: budgets},
			locks:        newLocks(),
			notifier:     notifier,
		},
		pingers: []func(context.Context) error{accounts.Ping, budgets.Ping, transactions.Ping},
	}
}

// Open opens the repositories of all collections in the backend and
// returns a Ledger working on them.
func Open(ctx context.Context, backend repository.Backend, opts repository.Options, notifier Notifier) (*Ledger, error) {
	accounts, err := open[models.Account](ctx, backend, CollectionAccounts, opts)
	if err != nil {
		return nil, err
	}

	budgets, err := open[models.Budget](ctx, backend, CollectionBudgets, opts)
	if err != nil {
		return nil, err
	}

	transactions, err := open[models.Transaction](ctx, backend, CollectionTransactions, opts)
	if err != nil {
		return nil, err
	}

	return New(accounts, budgets, transactions, notifier), nil
}

func open[T models.Entity](ctx context.Context, backend repository.Backend, collection string, opts repository.Options) (*repository.Repository[T], error) {
	store, err := backend.Store(collection)
	if err != nil {
		return nil, fmt.Errorf("%w: could not open %s: %w", models.ErrStorage, collection, err)
	}

	return repository.Open[T](ctx, store, opts)
}

// Ping checks that the stores of all repositories are reachable.
func (l *Ledger) Ping(ctx context.Context) error {
	for _, ping := range l.pingers {
		if err := ping(ctx); err != nil {
			return fmt.Errorf("%w: %w", models.ErrStorage, err)
		}
	}
	return nil
}

// Resolve finds the account or budget with the ID, preferring accounts.
func (l *Ledger) Resolve(id string) (Target, error) {
	return l.Transactions.resolver.Resolve(id)
}
