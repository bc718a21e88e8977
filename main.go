package main

import (
	"context"
	"flag"
	"io"
	"os"
	"path"

	"github.com/envelope-zero/ledger/internal/cli"
	"github.com/envelope-zero/ledger/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

//	@title			Envelope Zero Ledger
//	@version		1.0
//	@description	Accounts, budgets and an append-only transaction log.

//	@license.name	AGPL-3.0
//	@license.url	https://www.gnu.org/licenses/agpl-3.0.en.html

//	@BasePath	/

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	if cfg.GinMode == "" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(cfg.GinMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stderr)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	name := path.Base(os.Args[0])
	cli.Completion(cfg).Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	cli.Register(commander, cfg, os.Stdout, os.Stderr)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
