package controllers

import (
	"github.com/envelope-zero/ledger/pkg/models"
)

type AccountEditable struct {
	Name    string        `json:"name" example:"Checking" binding:"required"` // Name of the account, unique across all accounts
	Balance models.Amount `json:"balance" example:"180000" binding:"gte=0"`   // Initial balance in minor units
}

type AccountResponse struct {
	Data models.Account `json:"data"` // Data for the account
}

type AccountListResponse struct {
	Data []models.Account `json:"data"` // List of accounts
}

type AccountQueryFilter struct {
	Name string `form:"name" example:"Check*"` // Glob pattern the name must match
}
