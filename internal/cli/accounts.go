package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/envelope-zero/ledger/pkg/httputil"
	"github.com/google/subcommands"
	"github.com/ryanuber/go-glob"
)

type accountsCmd struct {
	*env
	name string
}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list all accounts" }
func (*accountsCmd) Usage() string {
	return `ledger accounts [-name <pattern>]

  Lists accounts in creation order.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Only list accounts whose name matches the pattern, * matches any text.")
}

func (c *accountsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, closeBackend, err := c.openLedger(ctx, nil, false)
	if err != nil {
		return c.fail(err)
	}
	defer closeBackend()

	w := c.table()
	fmt.Fprintln(w, "ID\tNAME\tBALANCE")
	for _, a := range l.Accounts.List() {
		if c.name != "" && !glob.Glob(c.name, a.Name) {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", a.ID, a.Name, c.money(a.Balance))
	}

	if err := w.Flush(); err != nil {
		return c.fail(err)
	}
	return subcommands.ExitSuccess
}

type createAccountCmd struct {
	*env
	name    string
	balance string
}

func (*createAccountCmd) Name() string     { return "create-account" }
func (*createAccountCmd) Synopsis() string { return "create an account" }
func (*createAccountCmd) Usage() string {
	return `ledger create-account -name <name> [-balance <amount>]

  Creates an account. If an account with the name exists, it is printed
  unchanged.
`
}

func (c *createAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the account.")
	f.StringVar(&c.balance, "balance", "0", "Initial balance in major units, e.g. 1800.50.")
}

func (c *createAccountCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name, err := httputil.Name(c.name)
	if err != nil {
		return c.usage("-name: %v", err)
	}

	balance, err := c.parseAmount(c.balance)
	if err != nil {
		return c.usage("-balance: %v", err)
	}

	l, closeBackend, err := c.openLedger(ctx, nil, false)
	if err != nil {
		return c.fail(err)
	}
	defer closeBackend()

	account, err := l.Accounts.Create(ctx, name, balance)
	if err != nil {
		return c.fail(err)
	}

	c.printAccount(account)
	return subcommands.ExitSuccess
}
