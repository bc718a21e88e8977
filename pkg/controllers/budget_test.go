package controllers_test

import (
	"net/http"
	"testing"

	"github.com/envelope-zero/ledger/pkg/controllers"
	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetsCreate() {
	account := suite.createTestAccount(controllers.AccountEditable{Name: "Checking", Balance: 150000})
	budget := suite.createTestBudget(controllers.BudgetEditable{Name: "Groceries", AccountID: account.ID, Amount: 30000})

	suite.Assert().NotEmpty(budget.ID)
	suite.Assert().Equal("Groceries", budget.Name)
	suite.Assert().Equal(account.ID, budget.AccountID)
	suite.Assert().Equal(models.Amount(30000), budget.Amount)

	a, err := suite.controller.Ledger.Accounts.Get(account.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(models.Amount(150000), a.Balance, "Creating a budget must not touch the account balance")
}

func (suite *TestSuiteStandard) TestBudgetsCreateFails() {
	account := suite.createTestAccount(controllers.AccountEditable{Name: "Checking"})
	suite.createTestBudget(controllers.BudgetEditable{Name: "Groceries", AccountID: account.ID})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Empty body", nil, http.StatusBadRequest},
		{"No account", controllers.BudgetEditable{Name: "Rent"}, http.StatusBadRequest},
		{"Blank name", controllers.BudgetEditable{Name: " ", AccountID: account.ID}, http.StatusBadRequest},
		{"Negative amount", controllers.BudgetEditable{Name: "Rent", AccountID: account.ID, Amount: -5}, http.StatusBadRequest},
		{"Unknown account", controllers.BudgetEditable{Name: "Rent", AccountID: "5f5a6bb0-0be9-4a8a-9c07-8bbd0f9e0b2d"}, http.StatusNotFound},
		{"Duplicate name", controllers.BudgetEditable{Name: "Groceries", AccountID: account.ID}, http.StatusConflict},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.controllerRequest(http.MethodPost, "http://example.com/v1/budgets", tt.body)
			assert.Equal(t, tt.status, r.Code, r.Body.String())
		})
	}

	suite.Assert().Len(suite.controller.Ledger.Budgets.List(), 1)
}

func (suite *TestSuiteStandard) TestBudgetsCreateDuplicateOtherAccount() {
	checking := suite.createTestAccount(controllers.AccountEditable{Name: "Checking"})
	savings := suite.createTestAccount(controllers.AccountEditable{Name: "Savings"})
	suite.createTestBudget(controllers.BudgetEditable{Name: "Groceries", AccountID: checking.ID})

	r := suite.controllerRequest(http.MethodPost, "http://example.com/v1/budgets", controllers.BudgetEditable{Name: "Groceries", AccountID: savings.ID})
	suite.assertHTTPStatus(&r, http.StatusConflict)
}

func (suite *TestSuiteStandard) TestBudgetsGet() {
	checking := suite.createTestAccount(controllers.AccountEditable{Name: "Checking"})
	savings := suite.createTestAccount(controllers.AccountEditable{Name: "Savings"})

	suite.createTestBudget(controllers.BudgetEditable{Name: "Groceries", AccountID: checking.ID})
	suite.createTestBudget(controllers.BudgetEditable{Name: "Rent", AccountID: checking.ID})
	suite.createTestBudget(controllers.BudgetEditable{Name: "Gifts", AccountID: savings.ID})

	tests := []struct {
		query string
		names []string
	}{
		{"", []string{"Groceries", "Rent", "Gifts"}},
		{"name=G*", []string{"Groceries", "Gifts"}},
		{"account=" + checking.ID, []string{"Groceries", "Rent"}},
		{"account=" + savings.ID + "&name=G*", []string{"Gifts"}},
		{"account=unknown", []string{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := suite.controllerRequest(http.MethodGet, "http://example.com/v1/budgets?"+tt.query, nil)
			assert.Equal(t, http.StatusOK, r.Code)

			var response controllers.BudgetListResponse
			suite.decodeResponse(&r, &response)

			names := []string{}
			for _, b := range response.Data {
				names = append(names, b.Name)
			}
			assert.Equal(t, tt.names, names)
		})
	}
}
