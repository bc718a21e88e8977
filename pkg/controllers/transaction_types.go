package controllers

import (
	"github.com/envelope-zero/ledger/pkg/ledger"
	"github.com/envelope-zero/ledger/pkg/models"
)

type IncomeEditable struct {
	Amount    models.Amount `json:"amount" example:"180000" binding:"gt=0"`                                          // Amount in minor units
	AccountID string        `json:"accountId" example:"65392deb-5e92-4268-b114-297faad6cdce" binding:"required"` // ID of the account receiving the income
	Date      string        `json:"date" example:"2024-01-31"`                                                       // Date of the income, defaults to now
}

type ExpenseEditable struct {
	Amount   models.Amount `json:"amount" example:"500" binding:"gt=0"`                                            // Amount in minor units
	TargetID string        `json:"targetId" example:"0f6ac4ee-8f17-4b57-9d57-1ba2db1e76a3" binding:"required"` // ID of the account or budget paying the expense
	Date     string        `json:"date" example:"2024-01-31"`                                                      // Date of the expense, defaults to now
}

type TransferEditable struct {
	Amount models.Amount `json:"amount" example:"30000" binding:"gt=0"`                                        // Amount in minor units
	FromID string        `json:"fromId" example:"65392deb-5e92-4268-b114-297faad6cdce" binding:"required"` // ID of the account or budget the money is taken from
	ToID   string        `json:"toId" example:"0f6ac4ee-8f17-4b57-9d57-1ba2db1e76a3" binding:"required"`   // ID of the account or budget receiving the money
	Date   string        `json:"date" example:"2024-01-31"`                                                    // Date of the transfer, defaults to now
}

type IncomeResponse struct {
	Data models.Account `json:"data"` // The account after the income
}

type ExpenseResponse struct {
	Data ledger.Target `json:"data" swaggertype:"object"` // The account or budget after the expense, with its kind
}

type TransferResponse struct {
	Data ledger.TransferResult `json:"data"` // Both participants after the transfer
}

type TransactionListResponse struct {
	Data []models.Transaction `json:"data" swaggertype:"array,object"` // The audit log
}

type TransactionQueryFilter struct {
	Kind string `form:"kind" example:"transfer" binding:"omitempty,oneof=income expense transfer"` // Only return transactions of this kind
}
