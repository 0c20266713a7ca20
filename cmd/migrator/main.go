package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/urfave/cli/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := command(log).Run(ctx, os.Args); err != nil {
		log.ErrorContext(ctx, "failed to apply migrations", slog.String("err", err.Error()))
		stop()
		os.Exit(1)
	}
}

func command(log *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "migrator",
		Usage: "apply doc_intelligence schema migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "username", Usage: "database username", Required: true, Sources: cli.EnvVars("PG_USERNAME")},
			&cli.StringFlag{Name: "password", Usage: "database password", Required: true, Sources: cli.EnvVars("PG_PASSWORD")},
			&cli.StringFlag{Name: "host", Usage: "database host", Value: "127.0.0.1", Sources: cli.EnvVars("PG_HOST")},
			&cli.StringFlag{Name: "port", Usage: "database port", Value: "5432", Sources: cli.EnvVars("PG_PORT")},
			&cli.StringFlag{Name: "db", Usage: "database name", Value: "doc_intelligence", Sources: cli.EnvVars("PG_DBNAME")},
		},
		Commands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply all pending migrations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withMigrator(ctx, log, cmd, "up", (*migrate.Migrate).Up)
				},
			},
			{
				Name:  "down",
				Usage: "roll back all migrations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withMigrator(ctx, log, cmd, "down", (*migrate.Migrate).Down)
				},
			},
			{
				Name:  "version",
				Usage: "print the current schema version",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withMigrator(ctx, log, cmd, "version", func(m *migrate.Migrate) error {
						version, dirty, err := m.Version()
						if err != nil {
							return err
						}

						log.InfoContext(ctx, "schema version", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))

						return nil
					})
				},
			},
		},
	}
}

func withMigrator(
	ctx context.Context,
	log *slog.Logger,
	cmd *cli.Command,
	name string,
	apply func(*migrate.Migrate) error,
) (err error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migrations source: %w", err)
	}

	migrator, err := migrate.NewWithSourceInstance("iofs", src, databaseURL(cmd))
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := migrator.Close()
		err = errors.Join(err, srcErr, dbErr)
	}()

	go func() {
		<-ctx.Done()
		migrator.GracefulStop <- true
	}()

	if err := apply(migrator); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.InfoContext(ctx, "no migrations to apply")
			return nil
		}

		return fmt.Errorf("failed to run %s: %w", name, err)
	}

	log.InfoContext(ctx, "migrations applied successfully", slog.String("type", name))

	return nil
}

func databaseURL(cmd *cli.Command) string {
	return (&url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cmd.String("username"), cmd.String("password")),
		Host:     net.JoinHostPort(cmd.String("host"), cmd.String("port")),
		Path:     cmd.String("db"),
		RawQuery: "sslmode=disable",
	}).String()
}
