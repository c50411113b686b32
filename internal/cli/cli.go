// Package cli implements brainctl, the admin command line for brainstore.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/fairyhunter13/brainstore/internal/adapter/observability"
	"github.com/fairyhunter13/brainstore/internal/config"
	"github.com/fairyhunter13/brainstore/internal/domain"
	obsctx "github.com/fairyhunter13/brainstore/internal/observability"
	"github.com/fairyhunter13/brainstore/internal/seed"
	"github.com/fairyhunter13/brainstore/internal/usecase"
)

// env bundles the state shared by every command of one invocation.
type env struct {
	cfg     config.Config
	backend *Backend
	out     io.Writer
}

func (e *env) service() usecase.BrainService { return usecase.NewBrainService(e.backend.Brains) }

func (e *env) print(v any) error {
	enc := json.NewEncoder(e.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Run executes brainctl with args, writing results as JSON to out.
func Run(ctx context.Context, args []string, out io.Writer, open Opener) error {
	e := &env{out: out}

	app := &cli.Command{
		Name:   "brainctl",
		Usage:  "Administer brains, memberships and vectors",
		Writer: out,
		Before: func(ctx context.Context, _ *cli.Command) (context.Context, error) {
			cfg, err := config.Load()
			if err != nil {
				return ctx, err
			}
			e.cfg = cfg
			// stdout carries command output
			logger := observability.NewLogger(cfg, os.Stderr)
			slog.SetDefault(logger)
			ctx = obsctx.ContextWithLogger(ctx, logger)
			ctx = obsctx.ContextWithRequestID(ctx, obsctx.NewRequestID())

			be, err := open(ctx, cfg)
			if err != nil {
				return ctx, err
			}
			e.backend = be
			return ctx, nil
		},
		After: func(context.Context, *cli.Command) error {
			if e.backend != nil && e.backend.Close != nil {
				e.backend.Close()
			}
			return nil
		},
		Commands: []*cli.Command{
			cmdMigrate(e),
			cmdBrains(e),
			cmdFiles(e),
			cmdVectors(e),
			cmdSweep(e),
			cmdSeed(e),
		},
	}
	return app.Run(ctx, args)
}

func uuidFlag(c *cli.Command, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.String(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: --%s: %v", domain.ErrInvalidArgument, name, err)
	}
	return id, nil
}

func requiredString(name, usage string) *cli.StringFlag {
	return &cli.StringFlag{Name: name, Usage: usage, Required: true}
}

func cmdMigrate(e *env) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply the database schema",
		Action: func(ctx context.Context, _ *cli.Command) error {
			if err := e.backend.Migrate(ctx); err != nil {
				return err
			}
			return e.print(map[string]string{"status": "migrated"})
		},
	}
}

func cmdSweep(e *env) *cli.Command {
	return &cli.Command{
		Name:  "sweep",
		Usage: "Delete vectors no brain references anymore",
		Flags: []cli.Flag{
			&cli.DurationFlag{Name: "grace", Usage: "Only collect vectors older than this"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			grace := c.Duration("grace")
			if grace == 0 {
				grace = e.cfg.OrphanGracePeriod
			}
			n, err := e.backend.Sweep(ctx, grace)
			if err != nil {
				return err
			}
			return e.print(map[string]int64{"collected": n})
		},
	}
}

func cmdSeed(e *env) *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Load brains and file vectors from a YAML fixture",
		Flags: []cli.Flag{requiredString("file", "Fixture path, relative to the working directory")},
		Action: func(ctx context.Context, c *cli.Command) error {
			l := seed.Loader{Brains: e.backend.Brains, Vectors: e.backend.Vectors}
			st, err := l.SeedFile(ctx, c.String("file"))
			if err != nil {
				return err
			}
			return e.print(st)
		},
	}
}
