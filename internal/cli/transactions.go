package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/envelope-zero/ledger/pkg/httputil"
	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/google/subcommands"
)

type transactionsCmd struct {
	*env
	kind string
}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "list the transaction log" }
func (*transactionsCmd) Usage() string {
	return `ledger transactions [-kind income|expense|transfer]

  Lists transactions in the order they were recorded.
`
}

func (c *transactionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "", "Only list transactions of this kind.")
}

func (c *transactionsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	switch models.TransactionKind(c.kind) {
	case "", models.KindIncome, models.KindExpense, models.KindTransfer:
	default:
		return c.usage("-kind must be one of income, expense, transfer")
	}

	l, closeBackend, err := c.openLedger(ctx, nil, false)
	if err != nil {
		return c.fail(err)
	}
	defer closeBackend()

	w := c.table()
	fmt.Fprintln(w, "ID\tDATE\tKIND\tAMOUNT\tFROM\tTO")
	for _, t := range l.Transactions.List() {
		if c.kind != "" && string(t.Kind()) != c.kind {
			continue
		}

		var from, to string
		switch d := t.Details.(type) {
		case models.Income:
			to = "account " + d.AccountID
		case models.Expense:
			from = reference(d.Target)
		case models.Transfer:
			from, to = reference(d.From), reference(d.To)
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", t.ID, t.Date, t.Kind(), c.money(t.Amount), from, to)
	}

	if err := w.Flush(); err != nil {
		return c.fail(err)
	}
	return subcommands.ExitSuccess
}

func reference(r models.Reference) string {
	return string(r.Kind) + " " + r.ID
}

// transactionFlags are the flags shared by income, expense and transfer.
type transactionFlags struct {
	amount string
	date   string
}

func (t *transactionFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&t.amount, "amount", "", "Amount in major units, e.g. 1800.50.")
	f.StringVar(&t.date, "date", "", "Date of the transaction as YYYY-MM-DD or RFC 3339. Defaults to now.")
}

// parse validates the flags and returns amount and date.
func (t *transactionFlags) parse(e *env) (models.Amount, string, error) {
	if t.amount == "" {
		return 0, "", errors.New("-amount is required")
	}

	amount, err := e.parseAmount(t.amount)
	if err != nil {
		return 0, "", fmt.Errorf("-amount: %w", err)
	}

	date, err := httputil.Date(t.date)
	if err != nil {
		return 0, "", fmt.Errorf("-date: %w", err)
	}

	return amount, date, nil
}

type incomeCmd struct {
	*env
	transactionFlags
	account string
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record income on an account" }
func (*incomeCmd) Usage() string {
	return `ledger income -account <id> -amount <amount> [-date <date>]

  Adds the amount to the balance of the account.
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.StringVar(&c.account, "account", "", "ID of the account receiving the income.")
}

func (c *incomeCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, date, err := c.parse(c.env)
	if err != nil {
		return c.usage("%v", err)
	}

	l, closeBackend, err := c.openLedger(ctx, nil, false)
	if err != nil {
		return c.fail(err)
	}
	defer closeBackend()

	account, err := l.Transactions.Income(ctx, amount, c.account, date)
	if err != nil {
		return c.fail(err)
	}

	c.printAccount(account)
	return subcommands.ExitSuccess
}

type expenseCmd struct {
	*env
	transactionFlags
	target string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record an expense on an account or budget" }
func (*expenseCmd) Usage() string {
	return `ledger expense -target <id> -amount <amount> [-date <date>]

  Subtracts the amount from the account or budget with the ID.
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.StringVar(&c.target, "target", "", "ID of the account or budget paying the expense.")
}

func (c *expenseCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, date, err := c.parse(c.env)
	if err != nil {
		return c.usage("%v", err)
	}

	l, closeBackend, err := c.openLedger(ctx, nil, false)
	if err != nil {
		return c.fail(err)
	}
	defer closeBackend()

	target, err := l.Transactions.Expense(ctx, amount, c.target, date)
	if err != nil {
		return c.fail(err)
	}

	c.printTarget(target)
	return subcommands.ExitSuccess
}

type transferCmd struct {
	*env
	transactionFlags
	from string
	to   string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "move money between accounts and budgets" }
func (*transferCmd) Usage() string {
	return `ledger transfer -from <id> -to <id> -amount <amount> [-date <date>]

  Moves the amount between two accounts or budgets. The source must hold
  at least the amount.
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.StringVar(&c.from, "from", "", "ID of the account or budget the money is taken from.")
	f.StringVar(&c.to, "to", "", "ID of the account or budget receiving the money.")
}

func (c *transferCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, date, err := c.parse(c.env)
	if err != nil {
		return c.usage("%v", err)
	}

	l, closeBackend, err := c.openLedger(ctx, nil, false)
	if err != nil {
		return c.fail(err)
	}
	defer closeBackend()

	result, err := l.Transactions.Transfer(ctx, amount, c.from, c.to, date)
	if err != nil {
		return c.fail(err)
	}

	c.printTarget(result.From)
	c.printTarget(result.To)
	return subcommands.ExitSuccess
}
