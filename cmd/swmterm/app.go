package main

import (
	"context"
	"strings"

	"swmterm/internal/config"
	"swmterm/internal/content"
	"swmterm/internal/log"
	"swmterm/internal/metrics"
	"swmterm/internal/terminal"
	"swmterm/internal/watch"
)

// app is the wiring shared by every subcommand.
type app struct {
	store *content.Store
	exec  *terminal.Executor
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func newApp(cfg *config.Config) *app {
	opts := []content.StoreOption{content.WithObserver(metrics.RecordIndexLoad)}
	if cfg.Index.QAPath != "" {
		opts = append(opts, content.WithQAFile(cfg.Index.QAPath))
	}
	store := content.NewStore(content.SourceFor(cfg.IndexLocation()), opts...)

	// Command names are fixed, so any executor can list them
	known := terminal.NewExecutor(nil).Commands()
	exec := terminal.NewExecutor(store,
		terminal.WithProfileImage(cfg.Profile.Image),
		terminal.WithObserver(metrics.CommandObserver(known)),
	)
	return &app{store: store, exec: exec}
}

// startReloader watches the local index when index.watch is set. The
// returned stop function is safe to call when nothing was started.
func (a *app) startReloader(ctx context.Context, cfg *config.Config, onReload func(path string, err error)) (func(), error) {
	if !cfg.Index.Watch {
		return func() {}, nil
	}

	r, err := watch.NewReloader(a.store)
	if err != nil {
		return nil, err
	}
	if err := r.AddFile(cfg.Index.Path); err != nil {
		return nil, err
	}
	if cfg.Index.QAPath != "" {
		if err := r.AddFile(cfg.Index.QAPath); err != nil {
			return nil, err
		}
	}
	if onReload != nil {
		r.SetCallback(onReload)
	}
	if err := r.Start(ctx); err != nil {
		return nil, err
	}
	log.LogWithFields(log.F("files", r.Status().Files)).Info("Watching content index")
	return r.Stop, nil
}
