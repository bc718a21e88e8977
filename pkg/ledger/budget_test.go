package ledger_test

import (
	"context"

	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetCreate() {
	account := suite.createAccount("acc1", 0)
	budget := suite.createBudget("mercado", account.ID, 300)

	assert.NotEmpty(suite.T(), budget.ID)
	assert.Equal(suite.T(), account.ID, budget.AccountID)
	assert.Equal(suite.T(), models.Amount(300), budget.Amount)
	assert.Equal(suite.T(), []models.Budget{budget}, suite.ledger.Budgets.List())
}

func (suite *TestSuiteStandard) TestBudgetCreateDuplicateName() {
	first := suite.createAccount("acc1", 0)
	second := suite.createAccount("acc2", 0)
	suite.createBudget("mercado", first.ID, 0)

	// Names are unique across all accounts
	for _, accountID := range []string{first.ID, second.ID} {
		_, err := suite.ledger.Budgets.Create(context.Background(), "mercado", accountID, 0)
		assert.ErrorIs(suite.T(), err, models.ErrAlreadyExists)
	}

	assert.Len(suite.T(), suite.ledger.Budgets.List(), 1)
}

func (suite *TestSuiteStandard) TestBudgetCreateMissingAccount() {
	_, err := suite.ledger.Budgets.Create(context.Background(), "mercado", "no-account", 0)
	assert.ErrorIs(suite.T(), err, models.ErrNotFound)
	assert.Contains(suite.T(), err.Error(), "not found: account with id")
	assert.Empty(suite.T(), suite.ledger.Budgets.List())
}

func (suite *TestSuiteStandard) TestBudgetCreateNegativeAmount() {
	account := suite.createAccount("acc1", 0)

	_, err := suite.ledger.Budgets.Create(context.Background(), "mercado", account.ID, -10)
	assert.ErrorIs(suite.T(), err, models.ErrInvalidAmount)
}

func (suite *TestSuiteStandard) TestBudgetCreateCancelled() {
	account := suite.createAccount("acc1", 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := suite.ledger.Budgets.Create(ctx, "mercado", account.ID, 0)
	assert.ErrorIs(suite.T(), err, context.Canceled)
	assert.Empty(suite.T(), suite.ledger.Budgets.List())
}
