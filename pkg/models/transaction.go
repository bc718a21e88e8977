package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type TransactionKind string

const (
	KindIncome   TransactionKind = "income"
	KindExpense  TransactionKind = "expense"
	KindTransfer TransactionKind = "transfer"
)

// Transaction is an immutable audit record for a balance-affecting event.
//
// Details holds exactly one of Income, Expense or Transfer.
type Transaction struct {
	ID      string
	Amount  Amount
	Date    string // ISO 8601 date or timestamp
	Details TransactionDetails
}

// TransactionDetails is the part of a Transaction that differs per kind.
// It is implemented by Income, Expense and Transfer only.
type TransactionDetails interface {
	Kind() TransactionKind
	sealed()
}

// Income moves money into an account.
type Income struct {
	AccountID string `json:"accountId"`
}

// Expense moves money out of an account or budget.
type Expense struct {
	Target Reference `json:"target"`
}

// Transfer moves money between any two accounts or budgets.
type Transfer struct {
	From Reference `json:"from"`
	To   Reference `json:"to"`
}

func (Income) Kind() TransactionKind   { return KindIncome }
func (Expense) Kind() TransactionKind  { return KindExpense }
func (Transfer) Kind() TransactionKind { return KindTransfer }

func (Income) sealed()   {}
func (Expense) sealed()  {}
func (Transfer) sealed() {}

// Now returns the default date for transactions.
func Now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// NewIncome returns an income record for the account.
func NewIncome(amount Amount, date string, account Account) Transaction {
	return Transaction{
		ID:      newID(),
		Amount:  amount,
		Date:    date,
		Details: Income{AccountID: account.ID},
	}
}

// NewExpense returns an expense record for the target.
func NewExpense(amount Amount, date string, target Reference) Transaction {
	return Transaction{
		ID:      newID(),
		Amount:  amount,
		Date:    date,
		Details: Expense{Target: target},
	}
}

// NewTransfer returns a transfer record between from and to.
func NewTransfer(amount Amount, date string, from, to Reference) Transaction {
	return Transaction{
		ID:      newID(),
		Amount:  amount,
		Date:    date,
		Details: Transfer{From: from, To: to},
	}
}

// Kind returns the kind of the transaction, or an empty string
// if it has no details.
func (t Transaction) Kind() TransactionKind {
	if t.Details == nil {
		return ""
	}
	return t.Details.Kind()
}

func (t Transaction) GetID() string {
	return t.ID
}

func (t Transaction) Key(field string) (string, bool) {
	switch field {
	case "id":
		return t.ID, true
	case "kind":
		return string(t.Kind()), true
	}
	return "", false
}

// References returns the references to all accounts and budgets
// affected by the transaction.
func (t Transaction) References() []Reference {
	switch d := t.Details.(type) {
	case Income:
		return []Reference{{Kind: KindAccount, ID: d.AccountID}}
	case Expense:
		return []Reference{d.Target}
	case Transfer:
		return []Reference{d.From, d.To}
	}
	return nil
}

// transactionJSON is the persisted layout of all transaction kinds.
type transactionJSON struct {
	Kind      TransactionKind `json:"kind"`
	ID        string          `json:"id"`
	Amount    Amount          `json:"amount"`
	Date      string          `json:"date"`
	AccountID string          `json:"accountId,omitempty"`
	Target    *Reference      `json:"target,omitempty"`
	From      *Reference      `json:"from,omitempty"`
	To        *Reference      `json:"to,omitempty"`
}

func (t Transaction) MarshalJSON() ([]byte, error) {
	out := transactionJSON{
		ID:     t.ID,
		Amount: t.Amount,
		Date:   t.Date,
	}

	switch d := t.Details.(type) {
	case Income:
		out.Kind = KindIncome
		out.AccountID = d.AccountID
	case Expense:
		out.Kind = KindExpense
		out.Target = &d.Target
	case Transfer:
		out.Kind = KindTransfer
		out.From = &d.From
		out.To = &d.To
	default:
		return nil, fmt.Errorf("transaction %s has no details", t.ID)
	}

	return json.Marshal(out)
}

func (t *Transaction) UnmarshalJSON(data []byte) error {
	var in transactionJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	t.ID = in.ID
	t.Amount = in.Amount
	t.Date = in.Date

	switch in.Kind {
	case KindIncome:
		t.Details = Income{AccountID: in.AccountID}
	case KindExpense:
		if in.Target == nil {
			return fmt.Errorf("expense transaction %s has no target", in.ID)
		}
		t.Details = Expense{Target: *in.Target}
	case KindTransfer:
		if in.From == nil || in.To == nil {
			return fmt.Errorf("transfer transaction %s needs both from and to", in.ID)
		}
		t.Details = Transfer{From: *in.From, To: *in.To}
	default:
		return fmt.Errorf("unknown transaction kind %q", in.Kind)
	}

	return nil
}
