package controllers

import (
	"net/http"

	"github.com/envelope-zero/ledger/pkg/httputil"
	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
)

// RegisterAccountRoutes registers the routes for accounts with
// the RouterGroup that is passed.
func (co Controller) RegisterAccountRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsAccountList)
	r.GET("", co.GetAccounts)
	r.POST("", co.CreateAccount)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Router			/v1/accounts [options]
func (co Controller) OptionsAccountList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Create account
// @Description	Creates a new account. If an account with the name already exists, it is returned unchanged with status 200.
// @Tags			Accounts
// @Produce		json
// @Success		200		{object}	AccountResponse
// @Success		201		{object}	AccountResponse
// @Failure		400		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			account	body		AccountEditable	true	"Account"
// @Router			/v1/accounts [post]
func (co Controller) CreateAccount(c *gin.Context) {
	var editable AccountEditable
	if err := httputil.BindData(c, &editable); err != nil {
		respondError(c, err)
		return
	}

	name, err := httputil.Name(editable.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	account, created, err := co.Ledger.Accounts.FindOrCreate(c.Request.Context(), name, editable.Balance)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	c.JSON(status, AccountResponse{Data: account})
}

// @Summary		List accounts
// @Description	Returns all accounts in creation order
// @Tags			Accounts
// @Produce		json
// @Success		200		{object}	AccountListResponse
// @Failure		400		{object}	httperror.Error
// @Param			name	query		string	false	"Filter by name, * matches any text"
// @Router			/v1/accounts [get]
func (co Controller) GetAccounts(c *gin.Context) {
	var filter AccountQueryFilter
	if err := httputil.BindQuery(c, &filter); err != nil {
		respondError(c, err)
		return
	}

	accounts := []models.Account{}
	for _, account := range co.Ledger.Accounts.List() {
		if filter.Name != "" && !glob.Glob(filter.Name, account.Name) {
			continue
		}
		accounts = append(accounts, account)
	}

	c.JSON(http.StatusOK, AccountListResponse{Data: accounts})
}
