package controllers_test

import (
	"net/http"
	"testing"

	"github.com/envelope-zero/ledger/pkg/controllers"
	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAccountsCreate() {
	account := suite.createTestAccount(controllers.AccountEditable{Name: "Checking", Balance: 180000})

	suite.Assert().NotEmpty(account.ID)
	suite.Assert().Equal("Checking", account.Name)
	suite.Assert().Equal(models.Amount(180000), account.Balance)
}

func (suite *TestSuiteStandard) TestAccountsCreateExisting() {
	first := suite.createTestAccount(controllers.AccountEditable{Name: "Checking", Balance: 100})

	r := suite.controllerRequest(http.MethodPost, "http://example.com/v1/accounts", controllers.AccountEditable{Name: "Checking", Balance: 500})
	suite.assertHTTPStatus(&r, http.StatusOK)

	var response controllers.AccountResponse
	suite.decodeResponse(&r, &response)
	suite.Assert().Equal(first, response.Data, "The existing account must be returned unchanged")
	suite.Assert().Len(suite.controller.Ledger.Accounts.List(), 1)
}

func (suite *TestSuiteStandard) TestAccountsCreateNormalizesName() {
	first := suite.createTestAccount(controllers.AccountEditable{Name: "Café"})

	r := suite.controllerRequest(http.MethodPost, "http://example.com/v1/accounts", controllers.AccountEditable{Name: "  Café "})
	suite.assertHTTPStatus(&r, http.StatusOK)

	var response controllers.AccountResponse
	suite.decodeResponse(&r, &response)
	suite.Assert().Equal(first.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestAccountsCreateFails() {
	tests := []struct {
		name   string
		body   any
		status int
		err    string
	}{
		{"Empty body", nil, http.StatusBadRequest, "the request body must not be empty"},
		{"Broken JSON", `{ "name": "Checking"`, http.StatusBadRequest, ""},
		{"Wrong type", `{ "name": "Checking", "balance": "lots" }`, http.StatusBadRequest, ""},
		{"No name", `{ "balance": 100 }`, http.StatusBadRequest, "name is required"},
		{"Blank name", controllers.AccountEditable{Name: "   "}, http.StatusBadRequest, "the name must not be empty"},
		{"Negative balance", controllers.AccountEditable{Name: "Checking", Balance: -1}, http.StatusBadRequest, "balance must be at least 0"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.controllerRequest(http.MethodPost, "http://example.com/v1/accounts", tt.body)
			assert.Equal(t, tt.status, r.Code, r.Body.String())

			if tt.err != "" {
				assert.Equal(t, tt.err, suite.decodeError(&r))
			}
		})
	}

	suite.Assert().Empty(suite.controller.Ledger.Accounts.List())
}

func (suite *TestSuiteStandard) TestAccountsCreateStorageError() {
	suite.failing.Store(true)

	r := suite.controllerRequest(http.MethodPost, "http://example.com/v1/accounts", controllers.AccountEditable{Name: "Checking"})
	suite.assertHTTPStatus(&r, http.StatusInternalServerError)

	message := suite.decodeError(&r)
	suite.Assert().Contains(message, r.Result().Header.Get("x-request-id"))
	suite.Assert().NotContains(message, errDiskFull.Error(), "Storage details must not be sent to the client")
}

func (suite *TestSuiteStandard) TestAccountsGet() {
	suite.createTestAccount(controllers.AccountEditable{Name: "Checking"})
	suite.createTestAccount(controllers.AccountEditable{Name: "Savings"})
	suite.createTestAccount(controllers.AccountEditable{Name: "Cash"})

	tests := []struct {
		query string
		names []string
	}{
		{"", []string{"Checking", "Savings", "Cash"}},
		{"name=Savings", []string{"Savings"}},
		{"name=C*", []string{"Checking", "Cash"}},
		{"name=*ing*", []string{"Checking", "Savings"}},
		{"name=Nope", []string{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := suite.controllerRequest(http.MethodGet, "http://example.com/v1/accounts?"+tt.query, nil)
			assert.Equal(t, http.StatusOK, r.Code)

			var response controllers.AccountListResponse
			suite.decodeResponse(&r, &response)

			names := []string{}
			for _, a := range response.Data {
				names = append(names, a.Name)
			}
			assert.Equal(t, tt.names, names)
		})
	}
}

func (suite *TestSuiteStandard) TestAccountsGetEmpty() {
	r := suite.controllerRequest(http.MethodGet, "http://example.com/v1/accounts", nil)
	suite.assertHTTPStatus(&r, http.StatusOK)
	suite.Assert().JSONEq(`{"data": []}`, r.Body.String())
}
