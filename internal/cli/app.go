package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/overtone-ring/Kentucky-cdl-prep/internal/bank"
	"github.com/overtone-ring/Kentucky-cdl-prep/internal/config"
	"github.com/overtone-ring/Kentucky-cdl-prep/internal/events"
	"github.com/overtone-ring/Kentucky-cdl-prep/internal/services"
	"github.com/overtone-ring/Kentucky-cdl-prep/internal/shuffle"
	"github.com/overtone-ring/Kentucky-cdl-prep/internal/stores"
	"github.com/overtone-ring/Kentucky-cdl-prep/internal/ui"
	"github.com/overtone-ring/Kentucky-cdl-prep/internal/validator"
	"github.com/overtone-ring/Kentucky-cdl-prep/pkg"
)

// app bundles everything the commands need, plus the handles that must be
// closed on the way out.
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	validator *validator.Validator
	bank      *bank.QuestionBank
	stats     stores.StatsStore
	publisher events.Publisher
	sessions  services.SessionService
	reviews   services.ReviewService

	closers []func() error
}

// runApp builds the dependency graph and launches the terminal UI.
func runApp(cmd *cobra.Command) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	return ui.Run(ui.Deps{
		Bank:     a.bank,
		Sessions: a.sessions,
		Reviews:  a.reviews,
		Stats:    a.stats,
		Logger:   a.logger,
	})
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := newLogger()
	v := validator.New()

	questionBank, err := loadBank(cmd, cfg, v)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: logger, validator: v, bank: questionBank}

	if err := a.openStats(); err != nil {
		return nil, err
	}

	publisher, err := cfg.Events.CreatePublisher(logger)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("create event publisher: %w", err)
	}
	a.publisher = publisher
	a.closers = append(a.closers, publisher.Close)

	a.sessions = services.NewSessionService(questionBank, a.stats, publisher, shuffle.NewSource(), logger, v)
	a.reviews = services.NewReviewService(publisher, logger)
	return a, nil
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("Failed to close resource", "error", err)
		}
	}
}

// loadBank reads the question source, picking the decoder by extension.
func loadBank(cmd *cobra.Command, cfg *config.Config, v *validator.Validator) (*bank.QuestionBank, error) {
	path := cfg.QuestionsPath
	if flagPath, _ := cmd.Flags().GetString("questions"); flagPath != "" {
		path = flagPath
	}

	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return bank.LoadXLSXFile(path, v)
	}
	return bank.LoadFile(path, v)
}

// openStats wires the configured stats backend.
func (a *app) openStats() error {
	switch a.cfg.StatsBackend {
	case "memory":
		a.stats = stores.NewMemoryStore()
	case "file":
		a.stats = stores.NewFileStore(a.cfg.StatsPath, a.logger)
	case "sqlite":
		store, err := stores.OpenSQLiteStore(a.cfg.StatsPath, a.logger)
		if err != nil {
			return fmt.Errorf("open sqlite stats store: %w", err)
		}
		a.stats = store
		a.closers = append(a.closers, store.Close)
	case "redis":
		client, err := pkg.NewRedisClient(a.cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		a.stats = stores.NewRedisStore(client, a.logger)
		a.closers = append(a.closers, client.Close)
	default:
		return fmt.Errorf("unknown stats backend %q", a.cfg.StatsBackend)
	}
	return nil
}

// newLogger keeps structured logs on stderr so they never mix into the
// terminal UI, which draws on stdout.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
