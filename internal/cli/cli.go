// Package cli implements the ledger command line.
//
// Every engine operation has its own command working directly on the
// configured storage. The serve command runs the HTTP API.
package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/envelope-zero/ledger/internal/config"
	"github.com/envelope-zero/ledger/pkg/ledger"
	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/envelope-zero/ledger/pkg/repository"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

// env is shared by all commands.
type env struct {
	cfg    *config.Config
	out    io.Writer
	errOut io.Writer
}

// Commands returns all commands of the ledger command line.
func Commands(cfg *config.Config, out, errOut io.Writer) []subcommands.Command {
	e := &env{cfg: cfg, out: out, errOut: errOut}

	return []subcommands.Command{
		&serveCmd{env: e},
		&accountsCmd{env: e},
		&createAccountCmd{env: e},
		&budgetsCmd{env: e},
		&createBudgetCmd{env: e},
		&transactionsCmd{env: e},
		&incomeCmd{env: e},
		&expenseCmd{env: e},
		&transferCmd{env: e},
	}
}

// Register registers all commands with the commander.
func Register(commander *subcommands.Commander, cfg *config.Config, out, errOut io.Writer) {
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	for _, c := range Commands(cfg, out, errOut) {
		group := "ledger"
		if c.Name() == "serve" {
			group = ""
		}
		commander.Register(c, group)
	}
}

// openLedger opens the configured backend and a ledger on it.
//
// The collections are only discarded if reset is set and the storage is
// configured to be reset. The returned function closes the backend.
func (e *env) openLedger(ctx context.Context, notifier ledger.Notifier, reset bool) (*ledger.Ledger, func(), error) {
	s := e.cfg.Storage

	backend, err := repository.OpenBackend(ctx, s.Backend, s.DataDir, s.DatabaseURL)
	if err != nil {
		return nil, func() {}, err
	}

	closeBackend := func() {
		if err := backend.Close(); err != nil {
			log.Error().Err(err).Str("backend", s.Backend).Msg("could not close storage backend")
		}
	}

	l, err := ledger.Open(ctx, backend, repository.Options{Reset: reset && s.Reset}, notifier)
	if err != nil {
		closeBackend()
		return nil, func() {}, err
	}

	return l, closeBackend, nil
}

// fail prints the error and returns the matching exit status.
func (e *env) fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(e.errOut, "Error: %v\n", err)
	return subcommands.ExitFailure
}

// usage prints the message and returns the usage exit status.
func (e *env) usage(format string, a ...any) subcommands.ExitStatus {
	fmt.Fprintf(e.errOut, "Error: "+format+"\n", a...)
	return subcommands.ExitUsageError
}

// parseAmount parses an amount flag in major units of the configured currency.
func (e *env) parseAmount(s string) (models.Amount, error) {
	return models.ParseAmount(s, e.cfg.Currency)
}

// money formats the amount in the configured currency.
func (e *env) money(a models.Amount) string {
	return a.Money(e.cfg.Currency).Display()
}

// table returns a writer aligning tab separated columns.
//
// It must be flushed after writing.
func (e *env) table() *tabwriter.Writer {
	return tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)
}

func (e *env) printAccount(a models.Account) {
	fmt.Fprintf(e.out, "account %s %q balance %s\n", a.ID, a.Name, e.money(a.Balance))
}

func (e *env) printBudget(b models.Budget) {
	fmt.Fprintf(e.out, "budget %s %q amount %s\n", b.ID, b.Name, e.money(b.Amount))
}

func (e *env) printTarget(t ledger.Target) {
	if t.Kind == models.KindBudget {
		e.printBudget(t.Budget)
		return
	}
	e.printAccount(t.Account)
}
