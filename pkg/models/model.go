package models

import (
	"github.com/google/uuid"
)

// Entity is implemented by every record stored in a repository.
type Entity interface {
	GetID() string

	// Key returns the value of a named field that can be used as a
	// uniqueness key. ok is false for fields that are not keys.
	Key(field string) (value string, ok bool)
}

// EntityKind names the kind of balance-bearing entity a reference points to.
type EntityKind string

const (
	KindAccount EntityKind = "account"
	KindBudget  EntityKind = "budget"
)

func (k EntityKind) Valid() bool {
	return k == KindAccount || k == KindBudget
}

// Reference points to an Account or a Budget.
type Reference struct {
	Kind EntityKind `json:"kind" example:"budget"`                             // Kind of the referenced entity
	ID   string     `json:"id" example:"0f6ac4ee-8f17-4b57-9d57-1ba2db1e76a3"` // ID of the referenced entity
}

// newID generates the identifier for a new entity.
func newID() string {
	return uuid.NewString()
}
