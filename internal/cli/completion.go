package cli

import (
	"flag"
	"io"

	"github.com/envelope-zero/ledger/internal/config"
	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion for all commands.
//
// Flags are taken from the flag sets of the commands. Install it with
// COMP_INSTALL=1 ledger.
func Completion(cfg *config.Config) *complete.Command {
	root := &complete.Command{Sub: map[string]*complete.Command{}}

	for _, c := range Commands(cfg, io.Discard, io.Discard) {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)

		sub := &complete.Command{Flags: map[string]complete.Predictor{}}
		f.VisitAll(func(fl *flag.Flag) {
			sub.Flags[fl.Name] = predict.Something
		})

		root.Sub[c.Name()] = sub
	}

	root.Sub["transactions"].Flags["kind"] = predict.Set{
		string(models.KindIncome),
		string(models.KindExpense),
		string(models.KindTransfer),
	}

	return root
}
