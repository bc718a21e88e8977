package controllers

import (
	"net/http"

	"github.com/envelope-zero/ledger/pkg/httputil"
	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/gin-gonic/gin"
)

// RegisterTransactionRoutes registers the routes for income, expenses,
// transfers and the transaction log with the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/income", co.OptionsTransactionCreate)
	r.POST("/income", co.CreateIncome)
	r.OPTIONS("/expense", co.OptionsTransactionCreate)
	r.POST("/expense", co.CreateExpense)
	r.OPTIONS("/transfer", co.OptionsTransactionCreate)
	r.POST("/transfer", co.CreateTransfer)

	r.OPTIONS("/transactions", co.OptionsTransactionList)
	r.GET("/transactions", co.GetTransactions)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/income [options]
// @Router			/v1/expense [options]
// @Router			/v1/transfer [options]
func (co Controller) OptionsTransactionCreate(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func (co Controller) OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Record income
// @Description	Adds the amount to the balance of the account
// @Tags			Transactions
// @Produce		json
// @Success		200		{object}	IncomeResponse
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			income	body		IncomeEditable	true	"Income"
// @Router			/v1/income [post]
func (co Controller) CreateIncome(c *gin.Context) {
	var editable IncomeEditable
	if err := httputil.BindData(c, &editable); err != nil {
		respondError(c, err)
		return
	}

	date, err := httputil.Date(editable.Date)
	if err != nil {
		respondError(c, err)
		return
	}

	account, err := co.Ledger.Transactions.Income(c.Request.Context(), editable.Amount, editable.AccountID, date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, IncomeResponse{Data: account})
}

// @Summary		Record expense
// @Description	Subtracts the amount from the account or budget. If the ID names both, the account is used.
// @Tags			Transactions
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expense [post]
func (co Controller) CreateExpense(c *gin.Context) {
	var editable ExpenseEditable
	if err := httputil.BindData(c, &editable); err != nil {
		respondError(c, err)
		return
	}

	date, err := httputil.Date(editable.Date)
	if err != nil {
		respondError(c, err)
		return
	}

	target, err := co.Ledger.Transactions.Expense(c.Request.Context(), editable.Amount, editable.TargetID, date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: target})
}

// @Summary		Record transfer
// @Description	Moves the amount between two accounts or budgets. If an ID names both, the budget is used.
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	TransferResponse
// @Failure		400			{object}	httperror.Error
// @Failure		404			{object}	httperror.Error
// @Failure		422			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			transfer	body		TransferEditable	true	"Transfer"
// @Router			/v1/transfer [post]
func (co Controller) CreateTransfer(c *gin.Context) {
	var editable TransferEditable
	if err := httputil.BindData(c, &editable); err != nil {
		respondError(c, err)
		return
	}

	date, err := httputil.Date(editable.Date)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := co.Ledger.Transactions.Transfer(c.Request.Context(), editable.Amount, editable.FromID, editable.ToID, date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, TransferResponse{Data: result})
}

// @Summary		List transactions
// @Description	Returns the transaction log in the order the transactions were recorded
// @Tags			Transactions
// @Produce		json
// @Success		200		{object}	TransactionListResponse
// @Failure		400		{object}	httperror.Error
// @Param			kind	query		string	false	"Filter by kind"	Enums(income, expense, transfer)
// @Router			/v1/transactions [get]
func (co Controller) GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := httputil.BindQuery(c, &filter); err != nil {
		respondError(c, err)
		return
	}

	transactions := []models.Transaction{}
	for _, t := range co.Ledger.Transactions.List() {
		if filter.Kind != "" && string(t.Kind()) != filter.Kind {
			continue
		}
		transactions = append(transactions, t)
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: transactions})
}
