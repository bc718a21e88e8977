package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"

	"github.com/envelope-zero/ledger/internal/httperror"
	"github.com/envelope-zero/ledger/pkg/controllers"
	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/stretchr/testify/assert"
)

// target is the decoded form of an account or budget returned with its kind.
type target struct {
	ID      string            `json:"id"`
	Kind    models.EntityKind `json:"kind"`
	Name    string            `json:"name"`
	Balance models.Amount     `json:"balance"`
	Amount  models.Amount     `json:"amount"`
}

type expenseResponse struct {
	Data target `json:"data"`
}

type transferResponse struct {
	Data struct {
		From target `json:"from"`
		To   target `json:"to"`
	} `json:"data"`
}

// controllerRequest sends a request to the suite's engine.
//
// String bodies are sent as they are, everything else is encoded as JSON.
func (suite *TestSuiteStandard) controllerRequest(method, url string, body any) httptest.ResponseRecorder {
	var b []byte
	switch v := body.(type) {
	case nil:
	case string:
		b = []byte(v)
	default:
		var err error
		b, err = json.Marshal(body)
		suite.Require().Nil(err, "Request body could not be marshalled")
	}

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(method, url, bytes.NewBuffer(b))
	suite.engine.ServeHTTP(recorder, req)

	return *recorder
}

func (suite *TestSuiteStandard) assertHTTPStatus(r *httptest.ResponseRecorder, expectedStatus ...int) {
	assert.Contains(suite.T(), expectedStatus, r.Code, "HTTP status is wrong. Request ID: '%s' Response body: %s", r.Result().Header.Get("x-request-id"), r.Body.String())
}

// decodeResponse decodes an HTTP response into a target struct.
func (suite *TestSuiteStandard) decodeResponse(r *httptest.ResponseRecorder, target interface{}) {
	err := json.NewDecoder(r.Body).Decode(target)
	if err != nil {
		assert.FailNow(suite.T(), "Parsing error", "Unable to parse response from server %q into %v, '%v', Request ID: %s", r.Body, reflect.TypeOf(target), err, r.Result().Header.Get("x-request-id"))
	}
}

// decodeError returns the error message of an error response.
func (suite *TestSuiteStandard) decodeError(r *httptest.ResponseRecorder) string {
	var e httperror.Error
	suite.decodeResponse(r, &e)
	return e.Message
}

func (suite *TestSuiteStandard) createTestAccount(a controllers.AccountEditable) models.Account {
	r := suite.controllerRequest(http.MethodPost, "http://example.com/v1/accounts", a)
	suite.assertHTTPStatus(&r, http.StatusCreated)

	var response controllers.AccountResponse
	suite.decodeResponse(&r, &response)
	return response.Data
}

func (suite *TestSuiteStandard) createTestBudget(b controllers.BudgetEditable) models.Budget {
	r := suite.controllerRequest(http.MethodPost, "http://example.com/v1/budgets", b)
	suite.assertHTTPStatus(&r, http.StatusCreated)

	var response controllers.BudgetResponse
	suite.decodeResponse(&r, &response)
	return response.Data
}
