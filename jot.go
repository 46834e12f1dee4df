package jot

import (
	"context"
	"log/slog"

	"github.com/aretw0/jot/pkg/adapters/fs"
	"github.com/aretw0/jot/pkg/core"
)

// New builds a Manager over the configured store and loads it.
//
//	mgr, err := jot.New(ctx, jot.WithFormat(fs.FormatCSV))
func New(ctx context.Context, opts ...Option) (*core.Manager, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	store := o.repository
	if store == nil {
		repo, err := fs.NewRepository(fs.Config{
			Path:         o.path,
			Format:       o.format,
			Logger:       o.logger.With("component", "fs"),
			ErrorHandler: o.onWatchErr,
		})
		if err != nil {
			return nil, err
		}
		store = repo
	}

	mgr := core.NewManager(store,
		core.WithManagerLogger(o.logger),
		core.WithNow(o.now),
	)
	if err := mgr.Load(ctx); err != nil {
		return nil, err
	}
	return mgr, nil
}
