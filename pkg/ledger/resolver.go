package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/envelope-zero/ledger/pkg/repository"
)

// Target is an Account or a Budget resolved from an ID.
//
// Only the field matching Kind is set.
type Target struct {
	Kind    models.EntityKind
	Account models.Account
	Budget  models.Budget
}

// ID returns the ID of the resolved entity.
func (t Target) ID() string {
	if t.Kind == models.KindBudget {
		return t.Budget.ID
	}
	return t.Account.ID
}

// Funds returns the account balance or the budget amount.
func (t Target) Funds() models.Amount {
	if t.Kind == models.KindBudget {
		return t.Budget.Amount
	}
	return t.Account.Balance
}

// Reference returns a reference to the resolved entity.
func (t Target) Reference() models.Reference {
	return models.Reference{Kind: t.Kind, ID: t.ID()}
}

// add adds amount to the funds of the target. Negative amounts subtract.
//
// The target is unchanged if the result is out of range.
func (t *Target) add(amount models.Amount) error {
	funds, err := t.Funds().Add(amount)
	if err != nil {
		return err
	}

	if t.Kind == models.KindBudget {
		t.Budget.Amount = funds
	} else {
		t.Account.Balance = funds
	}
	return nil
}

// MarshalJSON encodes the entity with its kind added.
func (t Target) MarshalJSON() ([]byte, error) {
	if t.Kind == models.KindBudget {
		return json.Marshal(struct {
			models.Budget
			Kind models.EntityKind `json:"kind"`
		}{t.Budget, t.Kind})
	}

	return json.Marshal(struct {
		models.Account
		Kind models.EntityKind `json:"kind"`
	}{t.Account, models.KindAccount})
}

// Resolver finds out whether an ID names an Account or a Budget.
type Resolver struct {
	accounts *repository.Repository[models.Account]
	budgets  *repository.Repository[models.Budget]
}

type lookup struct {
	target Target
	err    error
}

// Resolve looks up the ID in the repositories of all kinds in order
// concurrently.
//
// If more than one lookup succeeds, the kind that comes first in order
// wins. Without an order, accounts are preferred over budgets. If no
// lookup succeeds, the error wraps models.ErrNotFound.
func (r Resolver) Resolve(id string, order ...models.EntityKind) (Target, error) {
	if len(order) == 0 {
		order = []models.EntityKind{models.KindAccount, models.KindBudget}
	}

	results := make([]lookup, len(order))

	var wg sync.WaitGroup
	for i, kind := range order {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = r.lookup(kind, id)
		}()
	}
	wg.Wait()

	for _, result := range results {
		if result.err == nil {
			return result.target, nil
		}

		if !errors.Is(result.err, models.ErrNotFound) {
			return Target{}, result.err
		}
	}

	return Target{}, fmt.Errorf("%w: account or budget with id %q", models.ErrNotFound, id)
}

func (r Resolver) lookup(kind models.EntityKind, id string) lookup {
	switch kind {
	case models.KindAccount:
		account, err := r.accounts.GetByID(id)
		return lookup{Target{Kind: kind, Account: account}, err}
	case models.KindBudget:
		budget, err := r.budgets.GetByID(id)
		return lookup{Target{Kind: kind, Budget: budget}, err}
	}

	return lookup{err: fmt.Errorf("cannot resolve entities of kind %q", kind)}
}
