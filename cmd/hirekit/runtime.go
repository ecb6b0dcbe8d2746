package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/kingrea/hirekit/internal/config"
	"github.com/kingrea/hirekit/internal/export"
	"github.com/kingrea/hirekit/internal/logbook"
	"github.com/kingrea/hirekit/internal/logging"
	"github.com/kingrea/hirekit/internal/questions"
	"github.com/kingrea/hirekit/internal/storage"
	"github.com/kingrea/hirekit/internal/store"
	"github.com/kingrea/hirekit/internal/tui"
)

// runtime is everything a command needs, wired from .hirekit/config.yaml.
type runtime struct {
	cfg       *config.Config
	logger    *logging.Logger
	journal   *logbook.Logbook
	store     *store.Store
	generator *questions.Generator
	exporter  *export.Writer
	closers   []io.Closer
}

// openRuntime prepares the project directory, connects the configured
// storage backend and loads the collection.
func openRuntime(ctx context.Context, projectDir string, warn io.Writer) (*runtime, error) {
	if err := config.InitHirekitDir(projectDir); err != nil {
		return nil, fmt.Errorf("init %s: %w", config.HirekitDir, err)
	}
	cfg, err := config.NewConfig(projectDir)
	if err != nil {
		return nil, withCode(exitUsage, err)
	}

	rt := &runtime{cfg: cfg}
	logger, err := logging.New(cfg.LogsDir(), cfg.LogLevel())
	if err != nil {
		fmt.Fprintf(warn, "warning: diagnostics disabled: %v\n", err)
		logger = logging.Discard()
	}
	rt.logger = logger
	rt.closers = append(rt.closers, logger)

	journal, err := logbook.New(cfg.ActivityLogPath())
	if err != nil {
		logger.WithError(err).Warn("activity journal unavailable")
	}
	rt.journal = journal

	slot, err := rt.openSlot(ctx)
	if err != nil {
		rt.Close()
		return nil, withCode(exitStorage, err)
	}

	opts := []store.Option{
		store.WithKey(cfg.StorageKey()),
		store.WithLogger(logger.WithField("backend", cfg.StorageBackend())),
	}
	if journal != nil {
		opts = append(opts, store.WithJournal(journal))
	}
	rt.store = store.New(slot, opts...)
	if err := rt.store.Load(ctx); err != nil {
		rt.Close()
		return nil, withCode(exitStorage, err)
	}
	if issue := rt.store.LoadIssue(); issue != nil {
		fmt.Fprintf(warn, "warning: %v\n", issue)
	}

	rt.generator = questions.New(questions.WithPerCategory(cfg.QuestionsPerCategory()))
	rt.exporter = export.NewWriter(cfg.ExportDir())
	return rt, nil
}

func (rt *runtime) openSlot(ctx context.Context) (storage.Slot, error) {
	switch rt.cfg.StorageBackend() {
	case config.BackendRedis:
		slot, err := storage.NewRedisSlot(ctx, rt.cfg.RedisURL())
		if err != nil {
			return nil, err
		}
		rt.closers = append(rt.closers, slot)
		rt.logger.WithField("key", rt.cfg.StorageKey()).Info("using redis storage")
		return slot, nil
	default:
		slot, err := storage.NewFileSlot(rt.cfg.StateDir())
		if err != nil {
			return nil, err
		}
		rt.logger.WithField("path", slot.Path(rt.cfg.StorageKey())).Info("using file storage")
		return slot, nil
	}
}

func (rt *runtime) tuiDeps() tui.Deps {
	return tui.Deps{
		Store:     rt.store,
		Generator: rt.generator,
		Exporter:  rt.exporter,
		Logbook:   rt.journal,
		Logger:    rt.logger,
	}
}

// Close releases backend connections and the log file, last opened first.
func (rt *runtime) Close() {
	for i := len(rt.closers) - 1; i >= 0; i-- {
		if err := rt.closers[i].Close(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: close: %v\n", err)
		}
	}
	rt.closers = nil
}
