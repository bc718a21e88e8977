package cli

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/envelope-zero/ledger/pkg/controllers"
	"github.com/envelope-zero/ledger/pkg/events"
	"github.com/envelope-zero/ledger/pkg/router"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

// shutdownTimeout is how long running requests get to finish on shutdown.
const shutdownTimeout = 10 * time.Second

type serveCmd struct {
	*env
	port string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "run the HTTP API" }
func (*serveCmd) Usage() string {
	return `ledger serve [-port <port>]

  Serves the HTTP API until SIGINT or SIGTERM is received.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.port, "port", "", "Port to listen on. Defaults to PORT or 8080.")
}

func (c *serveCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := events.NewHub()
	defer hub.Close()

	l, closeBackend, err := c.openLedger(ctx, hub, true)
	if err != nil {
		return c.fail(err)
	}
	defer closeBackend()

	r, teardown, err := router.Config(c.cfg.APIURL)
	if err != nil {
		return c.fail(err)
	}
	defer teardown()

	router.AttachRoutes(controllers.Controller{Ledger: l, Events: hub}, r.Group("/"))

	port := c.port
	if port == "" {
		port = c.cfg.Port
	}

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Str("storage", c.cfg.Storage.Backend).Msg("listening")
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return c.fail(err)
		}
		return subcommands.ExitSuccess
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")

	// Websocket connections are hijacked and not closed by Shutdown
	hub.Close()

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return c.fail(err)
	}

	return subcommands.ExitSuccess
}
