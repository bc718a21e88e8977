package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/envelope-zero/ledger/pkg/httputil"
	"github.com/google/subcommands"
)

type budgetsCmd struct {
	*env
	account string
}

func (*budgetsCmd) Name() string     { return "budgets" }
func (*budgetsCmd) Synopsis() string { return "list all budgets" }
func (*budgetsCmd) Usage() string {
	return `ledger budgets [-account <id>]

  Lists budgets in creation order.
`
}

func (c *budgetsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Only list budgets of this account.")
}

func (c *budgetsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, closeBackend, err := c.openLedger(ctx, nil, false)
	if err != nil {
		return c.fail(err)
	}
	defer closeBackend()

	w := c.table()
	fmt.Fprintln(w, "ID\tNAME\tACCOUNT\tAMOUNT")
	for _, b := range l.Budgets.List() {
		if c.account != "" && b.AccountID != c.account {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", b.ID, b.Name, b.AccountID, c.money(b.Amount))
	}

	if err := w.Flush(); err != nil {
		return c.fail(err)
	}
	return subcommands.ExitSuccess
}

type createBudgetCmd struct {
	*env
	name    string
	account string
	amount  string
}

func (*createBudgetCmd) Name() string     { return "create-budget" }
func (*createBudgetCmd) Synopsis() string { return "create a budget for an account" }
func (*createBudgetCmd) Usage() string {
	return `ledger create-budget -name <name> -account <id> [-amount <amount>]

  Creates a budget. Budget names are unique across all accounts.
`
}

func (c *createBudgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the budget.")
	f.StringVar(&c.account, "account", "", "ID of the account the budget belongs to.")
	f.StringVar(&c.amount, "amount", "0", "Initial amount in major units.")
}

func (c *createBudgetCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name, err := httputil.Name(c.name)
	if err != nil {
		return c.usage("-name: %v", err)
	}

	if c.account == "" {
		return c.usage("-account is required")
	}

	amount, err := c.parseAmount(c.amount)
	if err != nil {
		return c.usage("-amount: %v", err)
	}

	l, closeBackend, err := c.openLedger(ctx, nil, false)
	if err != nil {
		return c.fail(err)
	}
	defer closeBackend()

	budget, err := l.Budgets.Create(ctx, name, c.account, amount)
	if err != nil {
		return c.fail(err)
	}

	c.printBudget(budget)
	return subcommands.ExitSuccess
}
