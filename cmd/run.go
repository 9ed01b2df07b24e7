package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vololibero/quizvl/internal/app"
	"github.com/vololibero/quizvl/internal/config"
	"github.com/vololibero/quizvl/internal/logging"
	"github.com/vololibero/quizvl/internal/practice"
	"github.com/vololibero/quizvl/internal/questions"
	"github.com/vololibero/quizvl/internal/screen"
	"github.com/vololibero/quizvl/internal/session"
	"github.com/vololibero/quizvl/internal/store"
)

// runtime holds what every command needs: config, logger, store and the
// wired practice service.
type runtime struct {
	cfg      config.Config
	store    *store.Store
	deps     *screen.Deps
	closeLog func() error
}

// setup loads config, installs the logger, opens the store and the bank.
func setup(cmd *cobra.Command) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level, _ := cfg.Log.SlogLevel()
	logPath := cfg.Log.File
	if logPath == "" {
		dir, err := store.DataDir()
		if err != nil {
			return nil, fmt.Errorf("resolve data dir: %w", err)
		}
		logPath = filepath.Join(dir, "quizvl.log")
	}
	closeLog, err := logging.Setup(logPath, level)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Logging to stderr:", err)
	}
	log := slog.Default()

	bank, err := loadBank(resolveBankPath(cmd, cfg.BankPath))
	if err != nil {
		closeLog()
		return nil, err
	}

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("open store: %w", err)
	}
	log.Debug("store opened", "path", dbPath, "questions", bank.Len())

	svc := practice.NewService(bank, st.AnswerRepo(),
		practice.WithMissedProbability(cfg.Quiz.MissedProbability),
		practice.WithEventRepo(st.EventRepo()),
		practice.WithLogger(log),
	)

	return &runtime{
		cfg:   cfg,
		store: st,
		deps: &screen.Deps{
			Practice: svc,
			Answers:  st.AnswerRepo(),
			Sections: st.SectionRepo(),
			Settings: st.SettingsRepo(),
			Events:   st.EventRepo(),
			Exam: session.ExamConfig{
				Questions: cfg.Quiz.ExamQuestions,
				MaxErrors: cfg.Quiz.ExamMaxErrors,
			},
			Log: log,
		},
		closeLog: closeLog,
	}, nil
}

func (r *runtime) Close() {
	if err := r.store.Close(); err != nil {
		slog.Warn("close store", "err", err)
	}
	r.closeLog()
}

// loadBank returns the embedded bank, or the bank file at path.
func loadBank(path string) (*questions.Bank, error) {
	if path == "" {
		bank, err := questions.Default()
		if err != nil {
			return nil, fmt.Errorf("load embedded bank: %w", err)
		}
		return bank, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bank: %w", err)
	}
	defer f.Close()
	bank, err := questions.LoadBank(f)
	if err != nil {
		return nil, fmt.Errorf("load bank %s: %w", path, err)
	}
	return bank, nil
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, start app.Start) error {
	rt, err := setup(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	// Fail before the TUI takes the screen if the stored state is unreadable.
	if err := checkState(cmd.Context(), rt.deps); err != nil {
		return err
	}

	return app.Run(app.Options{Deps: rt.deps, Start: start})
}

// checkState loads every stored blob once and reports the first that cannot
// be read, with the reset command that clears it.
func checkState(ctx context.Context, deps *screen.Deps) error {
	if _, err := deps.Answers.Load(ctx); err != nil {
		return corruptHint(err, store.KeyAnswers)
	}
	if _, err := deps.Sections.Completed(ctx); err != nil {
		return corruptHint(err, store.KeySections)
	}
	if _, err := deps.Settings.Load(ctx); err != nil {
		return corruptHint(err, store.KeySettings)
	}
	return nil
}

// corruptHint adds the reset command to run when stored state is corrupt.
func corruptHint(err error, what string) error {
	if errors.Is(err, store.ErrCorrupt) {
		return fmt.Errorf("%w (run `quizvl reset %s` to clear it)", err, what)
	}
	return err
}
