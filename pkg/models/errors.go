package models

import (
	"errors"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("a resource with this key already exists")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrStorage           = errors.New("the storage backend failed")
)

// Validation errors for arguments passed to the ledger.
var (
	ErrInvalidAmount   = errors.New("the amount is not valid")
	ErrSameParticipant = errors.New("source and destination of a transfer must be different")
)
