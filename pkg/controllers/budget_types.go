package controllers

import (
	"github.com/envelope-zero/ledger/pkg/models"
)

type BudgetEditable struct {
	Name      string        `json:"name" example:"Groceries" binding:"required"`                                      // Name of the budget, unique across all budgets
	AccountID string        `json:"accountId" example:"65392deb-5e92-4268-b114-297faad6cdce" binding:"required"` // ID of the account the budget belongs to
	Amount    models.Amount `json:"amount" example:"30000" binding:"gte=0"`                                           // Initial amount in minor units
}

type BudgetResponse struct {
	Data models.Budget `json:"data"` // Data for the budget
}

type BudgetListResponse struct {
	Data []models.Budget `json:"data"` // List of budgets
}

type BudgetQueryFilter struct {
	Name    string `form:"name" example:"Groc*"`                                     // Glob pattern the name must match
	Account string `form:"account" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the account the budgets belong to
}
