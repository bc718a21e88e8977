package controllers

import (
	"net/http"

	"github.com/envelope-zero/ledger/pkg/httputil"
	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsBudgetList)
	r.GET("", co.GetBudgets)
	r.POST("", co.CreateBudget)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func (co Controller) OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Create budget
// @Description	Creates a new budget for an existing account
// @Tags			Budgets
// @Produce		json
// @Success		201		{object}	BudgetResponse
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		409		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets [post]
func (co Controller) CreateBudget(c *gin.Context) {
	var editable BudgetEditable
	if err := httputil.BindData(c, &editable); err != nil {
		respondError(c, err)
		return
	}

	name, err := httputil.Name(editable.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	budget, err := co.Ledger.Budgets.Create(c.Request.Context(), name, editable.AccountID, editable.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, BudgetResponse{Data: budget})
}

// @Summary		List budgets
// @Description	Returns all budgets in creation order
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetListResponse
// @Failure		400		{object}	httperror.Error
// @Param			name	query		string	false	"Filter by name, * matches any text"
// @Param			account	query		string	false	"Filter by account ID"
// @Router			/v1/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	var filter BudgetQueryFilter
	if err := httputil.BindQuery(c, &filter); err != nil {
		respondError(c, err)
		return
	}

	budgets := []models.Budget{}
	for _, budget := range co.Ledger.Budgets.List() {
		if filter.Name != "" && !glob.Glob(filter.Name, budget.Name) {
			continue
		}

		if filter.Account != "" && budget.AccountID != filter.Account {
			continue
		}

		budgets = append(budgets, budget)
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: budgets})
}
