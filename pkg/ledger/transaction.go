package ledger

import (
	"context"
	"fmt"

	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/envelope-zero/ledger/pkg/repository"
	"github.com/rs/zerolog/log"
)

// Notifier is informed about every transaction recorded in the audit log.
type Notifier interface {
	TransactionRecorded(models.Transaction)
}

// TransferResult holds both participants of a transfer after it was applied.
type TransferResult struct {
	From Target `json:"from"`
	To   Target `json:"to"`
}

// TransactionController applies income, expenses and transfers.
//
// Every operation records the transaction in the audit log first and
// then persists each affected entity. If persisting an entity fails,
// the record stays in the log.
type TransactionController struct {
	transactions *repository.Repository[models.Transaction]
	accounts     *repository.Repository[models.Account]
	budgets      *repository.Repository[models.Budget]
	resolver     Resolver
	locks        *locks
	notifier     Notifier
}

// Income adds amount to the balance of the account.
//
// A balance that would exceed the largest Amount is rejected with
// models.ErrInvalidAmount before anything is written.
func (c *TransactionController) Income(ctx context.Context, amount models.Amount, accountID, date string) (models.Account, error) {
	if err := validAmount(amount); err != nil {
		return models.Account{}, err
	}

	if err := ctx.Err(); err != nil {
		return models.Account{}, err
	}

	unlock := c.locks.lock(accountID)
	defer unlock()
	ctx = context.WithoutCancel(ctx)

	account, err := c.accounts.GetByID(accountID)
	if err != nil {
		return models.Account{}, err
	}

	balance, err := account.Balance.Add(amount)
	if err != nil {
		return models.Account{}, err
	}

	if err := c.record(ctx, models.NewIncome(amount, dateOrNow(date), account)); err != nil {
		return models.Account{}, err
	}

	account.Balance = balance
	return c.accounts.Replace(ctx, account)
}

// Expense subtracts amount from the account or budget with the ID.
//
// If the ID names both an account and a budget, the account is used.
// The funds of the target are not checked, an expense can make them negative
// down to the smallest Amount. Below that, the error wraps models.ErrInvalidAmount.
func (c *TransactionController) Expense(ctx context.Context, amount models.Amount, targetID, date string) (Target, error) {
	if err := validAmount(amount); err != nil {
		return Target{}, err
	}

	if err := ctx.Err(); err != nil {
		return Target{}, err
	}

	unlock := c.locks.lock(targetID)
	defer unlock()
	ctx = context.WithoutCancel(ctx)

	target, err := c.resolver.Resolve(targetID, models.KindAccount, models.KindBudget)
	if err != nil {
		return Target{}, err
	}

	if err := target.add(-amount); err != nil {
		return Target{}, err
	}

	if err := c.record(ctx, models.NewExpense(amount, dateOrNow(date), target.Reference())); err != nil {
		return Target{}, err
	}

	return c.save(ctx, target)
}

// Transfer moves amount between two accounts or budgets.
//
// If an ID names both an account and a budget, the budget is used.
// The source must hold at least amount, otherwise the error wraps
// models.ErrInsufficientFunds and nothing is written.
//
// It fails with models.ErrSameParticipant if fromID equals toID and with
// models.ErrInvalidAmount if the destination would exceed the largest Amount.
func (c *TransactionController) Transfer(ctx context.Context, amount models.Amount, fromID, toID, date string) (TransferResult, error) {
	if err := validAmount(amount); err != nil {
		return TransferResult{}, err
	}

	if fromID == toID {
		return TransferResult{}, fmt.Errorf("%w: %q", models.ErrSameParticipant, fromID)
	}

	if err := ctx.Err(); err != nil {
		return TransferResult{}, err
	}

	unlock := c.locks.lock(fromID, toID)
	defer unlock()
	ctx = context.WithoutCancel(ctx)

	from, err := c.resolver.Resolve(fromID, models.KindBudget, models.KindAccount)
	if err != nil {
		return TransferResult{}, err
	}

	to, err := c.resolver.Resolve(toID, models.KindBudget, models.KindAccount)
	if err != nil {
		return TransferResult{}, err
	}

	if from.Funds() < amount {
		return TransferResult{}, fmt.Errorf("%w: %s %s holds %d, %d needed", models.ErrInsufficientFunds, from.Kind, from.ID(), from.Funds(), amount)
	}

	if err := from.add(-amount); err != nil {
		return TransferResult{}, err
	}

	if err := to.add(amount); err != nil {
		return TransferResult{}, err
	}

	if err := c.record(ctx, models.NewTransfer(amount, dateOrNow(date), from.Reference(), to.Reference())); err != nil {
		return TransferResult{}, err
	}

	if from, err = c.save(ctx, from); err != nil {
		return TransferResult{}, err
	}

	if to, err = c.save(ctx, to); err != nil {
		return TransferResult{}, err
	}

	return TransferResult{From: from, To: to}, nil
}

// List returns the audit log in the order the transactions were recorded.
func (c *TransactionController) List() []models.Transaction {
	return c.transactions.GetAll()
}

// record appends the transaction to the audit log.
func (c *TransactionController) record(ctx context.Context, t models.Transaction) error {
	if _, err := c.transactions.InsertIfNotExists(ctx, t); err != nil {
		return err
	}

	transactionsRecorded.WithLabelValues(string(t.Kind())).Inc()
	log.Debug().Str("transaction", t.ID).Str("kind", string(t.Kind())).Int64("amount", int64(t.Amount)).Msg("transaction recorded")

	if c.notifier != nil {
		c.notifier.TransactionRecorded(t)
	}

	return nil
}

// save persists the entity of the target.
func (c *TransactionController) save(ctx context.Context, t Target) (Target, error) {
	var err error

	switch t.Kind {
	case models.KindAccount:
		t.Account, err = c.accounts.Replace(ctx, t.Account)
	case models.KindBudget:
		t.Budget, err = c.budgets.Replace(ctx, t.Budget)
	default:
		err = fmt.Errorf("cannot save entities of kind %q", t.Kind)
	}

	if err != nil {
		log.Error().Err(err).Str(string(t.Kind), t.ID()).Msg("transaction is recorded but the balance was not updated")
		return Target{}, err
	}

	return t, nil
}

func validAmount(amount models.Amount) error {
	if amount <= 0 {
		return fmt.Errorf("%w: the amount must be positive, got %d", models.ErrInvalidAmount, amount)
	}
	return nil
}

func dateOrNow(date string) string {
	if date == "" {
		return models.Now()
	}
	return date
}
