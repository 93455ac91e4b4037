package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/goalaudit/internal/audit"
	"github.com/alexanderramin/goalaudit/internal/cli"
	"github.com/alexanderramin/goalaudit/internal/config"
	"github.com/alexanderramin/goalaudit/internal/db"
	"github.com/alexanderramin/goalaudit/internal/evaluation"
	"github.com/alexanderramin/goalaudit/internal/logger"
	"github.com/alexanderramin/goalaudit/internal/repository"
	"github.com/alexanderramin/goalaudit/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.LoggerConfig())

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	eval, err := evaluation.ForMode(string(cfg.Evaluator))
	if err != nil {
		return err
	}
	policy := audit.PolicyAbort
	if cfg.OnGoalError == config.OnGoalErrorSkip {
		policy = audit.PolicySkip
	}
	observer := service.NewLogUseCaseObserver(log)

	app := &cli.App{
		Export: service.NewExportService(uow, eval, service.ExportOptions{
			Dir:    cfg.ExportDir,
			Policy: policy,
		}, log, observer),
		Import: service.NewImportService(uow, log, observer),
		Cases: service.NewContextService(
			repository.NewSQLiteCaseRepo(database),
			repository.NewSQLiteContextRepo(database),
			uow,
		),
		ExportDir: cfg.ExportDir,
	}

	// Pickers and the review table only run on a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Debug("starting", "db", cfg.DBPath, "evaluator", cfg.Evaluator, "on_goal_error", cfg.OnGoalError)
	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
