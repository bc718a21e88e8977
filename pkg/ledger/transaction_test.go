package ledger_test

import (
	"context"
	"math"
	"sync"

	"github.com/envelope-zero/ledger/pkg/ledger"
	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestIncome() {
	account := suite.createAccount("acc1", 100)

	updated, err := suite.ledger.Transactions.Income(context.Background(), 250, account.ID, "2024-01-01")
	suite.Require().Nil(err)
	assert.Equal(suite.T(), models.Amount(350), updated.Balance)

	stored, _ := suite.ledger.Accounts.Get(account.ID)
	assert.Equal(suite.T(), updated, stored)

	log := suite.ledger.Transactions.List()
	suite.Require().Len(log, 1)
	assert.Equal(suite.T(), models.Amount(250), log[0].Amount)
	assert.Equal(suite.T(), "2024-01-01", log[0].Date)
	assert.Equal(suite.T(), models.Income{AccountID: account.ID}, log[0].Details)

	assert.Equal(suite.T(), log, suite.notifier.recorded())
}

func (suite *TestSuiteStandard) TestIncomeDefaultDate() {
	account := suite.createAccount("acc1", 0)

	_, err := suite.ledger.Transactions.Income(context.Background(), 1, account.ID, "")
	suite.Require().Nil(err)
	assert.NotEmpty(suite.T(), suite.ledger.Transactions.List()[0].Date)
}

func (suite *TestSuiteStandard) TestIncomeNotFound() {
	_, err := suite.ledger.Transactions.Income(context.Background(), 100, "nope", "")
	assert.ErrorIs(suite.T(), err, models.ErrNotFound)
	assert.Empty(suite.T(), suite.ledger.Transactions.List())
}

func (suite *TestSuiteStandard) TestInvalidAmounts() {
	ctx := context.Background()
	account := suite.createAccount("acc1", 100)
	budget := suite.createBudget("mercado", account.ID, 100)

	for _, amount := range []models.Amount{0, -1} {
		_, err := suite.ledger.Transactions.Income(ctx, amount, account.ID, "")
		assert.ErrorIs(suite.T(), err, models.ErrInvalidAmount)

		_, err = suite.ledger.Transactions.Expense(ctx, amount, account.ID, "")
		assert.ErrorIs(suite.T(), err, models.ErrInvalidAmount)

		_, err = suite.ledger.Transactions.Transfer(ctx, amount, account.ID, budget.ID, "")
		assert.ErrorIs(suite.T(), err, models.ErrInvalidAmount)
	}

	assert.Empty(suite.T(), suite.ledger.Transactions.List())
}

func (suite *TestSuiteStandard) TestExpenseAccount() {
	account := suite.createAccount("acc1", 100)

	target, err := suite.ledger.Transactions.Expense(context.Background(), 40, account.ID, "")
	suite.Require().Nil(err)
	assert.Equal(suite.T(), models.KindAccount, target.Kind)
	assert.Equal(suite.T(), models.Amount(60), target.Account.Balance)

	log := suite.ledger.Transactions.List()
	suite.Require().Len(log, 1)
	assert.Equal(suite.T(), models.Expense{Target: models.Reference{Kind: models.KindAccount, ID: account.ID}}, log[0].Details)
}

func (suite *TestSuiteStandard) TestExpenseBudget() {
	account := suite.createAccount("acc1", 100)
	budget := suite.createBudget("mercado", account.ID, 50)

	target, err := suite.ledger.Transactions.Expense(context.Background(), 20, budget.ID, "")
	suite.Require().Nil(err)
	assert.Equal(suite.T(), models.KindBudget, target.Kind)
	assert.Equal(suite.T(), models.Amount(30), target.Budget.Amount)

	// The owning account is not touched
	stored, _ := suite.ledger.Accounts.Get(account.ID)
	assert.Equal(suite.T(), models.Amount(100), stored.Balance)

	log := suite.ledger.Transactions.List()
	suite.Require().Len(log, 1)
	assert.Equal(suite.T(), models.Expense{Target: models.Reference{Kind: models.KindBudget, ID: budget.ID}}, log[0].Details)
}

func (suite *TestSuiteStandard) TestExpenseMayOverdraw() {
	account := suite.createAccount("acc1", 10)

	target, err := suite.ledger.Transactions.Expense(context.Background(), 25, account.ID, "")
	suite.Require().Nil(err)
	assert.Equal(suite.T(), models.Amount(-15), target.Funds())
}

func (suite *TestSuiteStandard) TestExpenseNotFound() {
	_, err := suite.ledger.Transactions.Expense(context.Background(), 500, "unknown", "")
	assert.ErrorIs(suite.T(), err, models.ErrNotFound)
	assert.Empty(suite.T(), suite.ledger.Transactions.List())
}

func (suite *TestSuiteStandard) TestTransfer() {
	account := suite.createAccount("acc1", 100)
	budget := suite.createBudget("mercado", account.ID, 0)

	result, err := suite.ledger.Transactions.Transfer(context.Background(), 100, account.ID, budget.ID, "2024-02-01")
	suite.Require().Nil(err)
	assert.Equal(suite.T(), models.KindAccount, result.From.Kind)
	assert.Equal(suite.T(), models.Amount(0), result.From.Account.Balance)
	assert.Equal(suite.T(), models.KindBudget, result.To.Kind)
	assert.Equal(suite.T(), models.Amount(100), result.To.Budget.Amount)

	log := suite.ledger.Transactions.List()
	suite.Require().Len(log, 1)
	assert.Equal(suite.T(), models.Transfer{
		From: models.Reference{Kind: models.KindAccount, ID: account.ID},
		To:   models.Reference{Kind: models.KindBudget, ID: budget.ID},
	}, log[0].Details)
}

func (suite *TestSuiteStandard) TestTransferInsufficientFunds() {
	account := suite.createAccount("acc1", 100)
	budget := suite.createBudget("mercado", account.ID, 0)

	_, err := suite.ledger.Transactions.Transfer(context.Background(), 101, account.ID, budget.ID, "")
	assert.ErrorIs(suite.T(), err, models.ErrInsufficientFunds)

	stored, _ := suite.ledger.Accounts.Get(account.ID)
	assert.Equal(suite.T(), models.Amount(100), stored.Balance)
	assert.Equal(suite.T(), models.Amount(0), suite.ledger.Budgets.List()[0].Amount)
	assert.Empty(suite.T(), suite.ledger.Transactions.List())
	assert.Empty(suite.T(), suite.notifier.recorded())
}

func (suite *TestSuiteStandard) TestTransferFromOverdrawnSource() {
	ctx := context.Background()
	from := suite.createAccount("acc1", 0)
	to := suite.createAccount("acc2", 0)

	_, err := suite.ledger.Transactions.Expense(ctx, 2, from.ID, "")
	suite.Require().Nil(err)

	_, err = suite.ledger.Transactions.Transfer(ctx, math.MaxInt64, from.ID, to.ID, "")
	assert.ErrorIs(suite.T(), err, models.ErrInsufficientFunds)

	stored, _ := suite.ledger.Accounts.Get(from.ID)
	assert.Equal(suite.T(), models.Amount(-2), stored.Balance)
	stored, _ = suite.ledger.Accounts.Get(to.ID)
	assert.Equal(suite.T(), models.Amount(0), stored.Balance)
	assert.Len(suite.T(), suite.ledger.Transactions.List(), 1)
}

func (suite *TestSuiteStandard) TestTransferDestinationOutOfRange() {
	from := suite.createAccount("acc1", 100)
	to := suite.createAccount("acc2", math.MaxInt64-50)

	_, err := suite.ledger.Transactions.Transfer(context.Background(), 100, from.ID, to.ID, "")
	assert.ErrorIs(suite.T(), err, models.ErrInvalidAmount)

	stored, _ := suite.ledger.Accounts.Get(from.ID)
	assert.Equal(suite.T(), models.Amount(100), stored.Balance)
	stored, _ = suite.ledger.Accounts.Get(to.ID)
	assert.Equal(suite.T(), models.Amount(math.MaxInt64-50), stored.Balance)
	assert.Empty(suite.T(), suite.ledger.Transactions.List())
	assert.Empty(suite.T(), suite.notifier.recorded())
}

func (suite *TestSuiteStandard) TestIncomeOutOfRange() {
	account := suite.createAccount("acc1", 10)

	_, err := suite.ledger.Transactions.Income(context.Background(), math.MaxInt64, account.ID, "")
	assert.ErrorIs(suite.T(), err, models.ErrInvalidAmount)

	stored, _ := suite.ledger.Accounts.Get(account.ID)
	assert.Equal(suite.T(), models.Amount(10), stored.Balance)
	assert.Empty(suite.T(), suite.ledger.Transactions.List())
}

func (suite *TestSuiteStandard) TestExpenseOutOfRange() {
	ctx := context.Background()
	account := suite.createAccount("acc1", 0)

	target, err := suite.ledger.Transactions.Expense(ctx, math.MaxInt64, account.ID, "")
	suite.Require().Nil(err)
	assert.Equal(suite.T(), models.Amount(-math.MaxInt64), target.Account.Balance)

	_, err = suite.ledger.Transactions.Expense(ctx, 2, account.ID, "")
	assert.ErrorIs(suite.T(), err, models.ErrInvalidAmount)

	stored, _ := suite.ledger.Accounts.Get(account.ID)
	assert.Equal(suite.T(), models.Amount(-math.MaxInt64), stored.Balance)
	assert.Len(suite.T(), suite.ledger.Transactions.List(), 1)
}

func (suite *TestSuiteStandard) TestTransferSameParticipant() {
	account := suite.createAccount("acc1", 100)

	_, err := suite.ledger.Transactions.Transfer(context.Background(), 10, account.ID, account.ID, "")
	assert.ErrorIs(suite.T(), err, models.ErrSameParticipant)
	assert.Empty(suite.T(), suite.ledger.Transactions.List())
}

func (suite *TestSuiteStandard) TestTransferNotFound() {
	account := suite.createAccount("acc1", 100)

	_, err := suite.ledger.Transactions.Transfer(context.Background(), 10, account.ID, "nope", "")
	assert.ErrorIs(suite.T(), err, models.ErrNotFound)

	_, err = suite.ledger.Transactions.Transfer(context.Background(), 10, "nope", account.ID, "")
	assert.ErrorIs(suite.T(), err, models.ErrNotFound)

	assert.Empty(suite.T(), suite.ledger.Transactions.List())
}

func (suite *TestSuiteStandard) TestTransferBetweenAccounts() {
	first := suite.createAccount("acc1", 100)
	second := suite.createAccount("acc2", 0)

	result, err := suite.ledger.Transactions.Transfer(context.Background(), 60, first.ID, second.ID, "")
	suite.Require().Nil(err)
	assert.Equal(suite.T(), models.Amount(40), result.From.Funds())
	assert.Equal(suite.T(), models.Amount(60), result.To.Funds())
}

func (suite *TestSuiteStandard) TestCancelledContext() {
	account := suite.createAccount("acc1", 100)
	budget := suite.createBudget("mercado", account.ID, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := suite.ledger.Transactions.Income(ctx, 1, account.ID, "")
	assert.ErrorIs(suite.T(), err, context.Canceled)

	_, err = suite.ledger.Transactions.Expense(ctx, 1, account.ID, "")
	assert.ErrorIs(suite.T(), err, context.Canceled)

	_, err = suite.ledger.Transactions.Transfer(ctx, 1, account.ID, budget.ID, "")
	assert.ErrorIs(suite.T(), err, context.Canceled)

	assert.Empty(suite.T(), suite.ledger.Transactions.List())
}

func (suite *TestSuiteStandard) TestRecordPersistedBeforeBalance() {
	account := suite.createAccount("acc1", 100)
	suite.backend.fail("accounts", true)

	_, err := suite.ledger.Transactions.Income(context.Background(), 50, account.ID, "")
	assert.ErrorIs(suite.T(), err, models.ErrStorage)

	// The record stays while the balance is unchanged
	assert.Len(suite.T(), suite.ledger.Transactions.List(), 1)
	stored, _ := suite.ledger.Accounts.Get(account.ID)
	assert.Equal(suite.T(), models.Amount(100), stored.Balance)
}

func (suite *TestSuiteStandard) TestRecordFailureChangesNothing() {
	account := suite.createAccount("acc1", 100)
	suite.backend.fail("transactions", true)

	_, err := suite.ledger.Transactions.Expense(context.Background(), 50, account.ID, "")
	assert.ErrorIs(suite.T(), err, models.ErrStorage)

	assert.Empty(suite.T(), suite.ledger.Transactions.List())
	assert.Empty(suite.T(), suite.notifier.recorded())
	stored, _ := suite.ledger.Accounts.Get(account.ID)
	assert.Equal(suite.T(), models.Amount(100), stored.Balance)
}

func (suite *TestSuiteStandard) TestConcurrentTransfers() {
	ctx := context.Background()
	account := suite.createAccount("acc1", 1000)
	first := suite.createBudget("first", account.ID, 0)
	second := suite.createBudget("second", account.ID, 0)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			_, err := suite.ledger.Transactions.Transfer(ctx, 10, account.ID, first.ID, "")
			assert.Nil(suite.T(), err)
		}()
		go func() {
			defer wg.Done()
			_, err := suite.ledger.Transactions.Transfer(ctx, 5, account.ID, second.ID, "")
			assert.Nil(suite.T(), err)
		}()
		go func() {
			defer wg.Done()
			_, err := suite.ledger.Transactions.Income(ctx, 1, account.ID, "")
			assert.Nil(suite.T(), err)
		}()
	}
	wg.Wait()

	stored, _ := suite.ledger.Accounts.Get(account.ID)
	assert.Equal(suite.T(), models.Amount(1000-50*10-50*5+50), stored.Balance)

	budgets := suite.ledger.Budgets.List()
	assert.Equal(suite.T(), models.Amount(500), budgets[0].Amount)
	assert.Equal(suite.T(), models.Amount(250), budgets[1].Amount)
	assert.Len(suite.T(), suite.ledger.Transactions.List(), 150)
}

func (suite *TestSuiteStandard) TestConcurrentTransfersNeverOverdraw() {
	ctx := context.Background()
	account := suite.createAccount("acc1", 100)
	budget := suite.createBudget("mercado", account.ID, 0)

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = suite.ledger.Transactions.Transfer(ctx, 10, account.ID, budget.ID, "")
		}()
	}
	wg.Wait()

	stored, _ := suite.ledger.Accounts.Get(account.ID)
	assert.Equal(suite.T(), models.Amount(0), stored.Balance)
	assert.Len(suite.T(), suite.ledger.Transactions.List(), 10)
}

func (suite *TestSuiteStandard) TestScenario() {
	ctx := context.Background()

	account := suite.createAccount("acc1", 0)
	_, err := suite.ledger.Transactions.Income(ctx, 180000, account.ID, "")
	suite.Require().Nil(err)

	budget := suite.createBudget("mercado", account.ID, 0)
	result, err := suite.ledger.Transactions.Transfer(ctx, 30000, account.ID, budget.ID, "")
	suite.Require().Nil(err)

	assert.Equal(suite.T(), models.Amount(150000), result.From.Account.Balance)
	assert.Equal(suite.T(), models.Amount(30000), result.To.Budget.Amount)

	log := suite.ledger.Transactions.List()
	suite.Require().Len(log, 2)
	assert.Equal(suite.T(), models.KindIncome, log[0].Kind())
	assert.Equal(suite.T(), models.KindTransfer, log[1].Kind())

	// Everything survives a reload
	reopened := suite.open()
	assert.Equal(suite.T(), suite.ledger.Accounts.List(), reopened.Accounts.List())
	assert.Equal(suite.T(), suite.ledger.Budgets.List(), reopened.Budgets.List())
	assert.Equal(suite.T(), log, reopened.Transactions.List())
}

func (suite *TestSuiteStandard) TestPing() {
	assert.Nil(suite.T(), suite.ledger.Ping(context.Background()))
}

func (suite *TestSuiteStandard) TestResolve() {
	account := suite.createAccount("acc1", 0)
	budget := suite.createBudget("mercado", account.ID, 0)

	target, err := suite.ledger.Resolve(budget.ID)
	suite.Require().Nil(err)
	assert.Equal(suite.T(), ledger.Target{Kind: models.KindBudget, Budget: budget}, target)
}
