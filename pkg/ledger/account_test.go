package ledger_test

import (
	"context"

	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAccountCreate() {
	account := suite.createAccount("acc1", 1000)

	assert.NotEmpty(suite.T(), account.ID)
	assert.Equal(suite.T(), "acc1", account.Name)
	assert.Equal(suite.T(), models.Amount(1000), account.Balance)
	assert.Equal(suite.T(), []models.Account{account}, suite.ledger.Accounts.List())

	stored, err := suite.ledger.Accounts.Get(account.ID)
	suite.Require().Nil(err)
	assert.Equal(suite.T(), account, stored)
}

func (suite *TestSuiteStandard) TestAccountCreateIsIdempotent() {
	first := suite.createAccount("acc1", 1000)
	second := suite.createAccount("acc1", 5)

	assert.Equal(suite.T(), first, second, "the existing account must be returned unchanged")
	assert.Len(suite.T(), suite.ledger.Accounts.List(), 1)

	account, created, err := suite.ledger.Accounts.FindOrCreate(context.Background(), "acc1", 0)
	suite.Require().Nil(err)
	assert.False(suite.T(), created)
	assert.Equal(suite.T(), first, account)

	_, created, err = suite.ledger.Accounts.FindOrCreate(context.Background(), "acc2", 0)
	suite.Require().Nil(err)
	assert.True(suite.T(), created)
}

func (suite *TestSuiteStandard) TestAccountNamesAreCaseSensitive() {
	lower := suite.createAccount("cash", 0)
	upper := suite.createAccount("Cash", 0)

	assert.NotEqual(suite.T(), lower.ID, upper.ID)
}

func (suite *TestSuiteStandard) TestAccountCreateNegativeBalance() {
	_, err := suite.ledger.Accounts.Create(context.Background(), "acc1", -1)
	assert.ErrorIs(suite.T(), err, models.ErrInvalidAmount)
	assert.Empty(suite.T(), suite.ledger.Accounts.List())
}

func (suite *TestSuiteStandard) TestAccountCreateCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := suite.ledger.Accounts.Create(ctx, "acc1", 0)
	assert.ErrorIs(suite.T(), err, context.Canceled)
	assert.Empty(suite.T(), suite.ledger.Accounts.List())
}

func (suite *TestSuiteStandard) TestAccountCreateStorageFailure() {
	suite.backend.fail("accounts", true)

	_, err := suite.ledger.Accounts.Create(context.Background(), "acc1", 0)
	assert.ErrorIs(suite.T(), err, models.ErrStorage)
	assert.Empty(suite.T(), suite.ledger.Accounts.List())
}

func (suite *TestSuiteStandard) TestAccountGetNotFound() {
	_, err := suite.ledger.Accounts.Get("nope")
	assert.ErrorIs(suite.T(), err, models.ErrNotFound)
}
