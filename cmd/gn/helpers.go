package main

import (
	"context"
	"time"

	"github.com/raphi011/gn/internal/cache"
	"github.com/raphi011/gn/internal/config"
	"github.com/raphi011/gn/internal/log"
	"github.com/raphi011/gn/internal/scan"
)

// openStore creates the cache store for the configured TTL, or nil when
// caching is disabled or the cache directory cannot be set up. A broken
// cache only costs a rescan, so setup failures are warnings.
func openStore(ctx context.Context, cfg config.Config) *cache.Store {
	l := log.FromContext(ctx)

	if !cfg.Cache.Enabled {
		return nil
	}
	dir, err := cache.DefaultDir()
	if err != nil {
		l.Warnf("cache disabled: %v\n", err)
		return nil
	}
	store, err := cache.New(dir, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
	if err != nil {
		l.Warnf("cache disabled: %v\n", err)
		return nil
	}
	return store
}

// resolveRepos returns the repository list for the configured search
// path, serving a fresh cache entry when possible and scanning (and
// re-caching) otherwise. force skips cache reuse but still refreshes
// the entry.
func resolveRepos(ctx context.Context, cfg config.Config, force bool) ([]scan.Repo, error) {
	l := log.FromContext(ctx)
	searchPath := cfg.Search.BasePath
	store := openStore(ctx, cfg)

	if store != nil && !force && store.IsValid(searchPath) {
		repos, err := store.Load(searchPath)
		if err == nil {
			l.Debugf("loaded %d repositories from cache\n", len(repos))
			return repos, nil
		}
		// Unreadable cache entry counts as a miss.
		l.Warnf("cache read failed, rescanning: %v\n", err)
	}

	l.Debugf("scanning %s (max depth %d)\n", searchPath, cfg.Search.MaxDepth)
	repos, err := scan.Scan(searchPath, cfg.Search.MaxDepth)
	if err != nil {
		return nil, err
	}
	l.Debugf("found %d repositories\n", len(repos))

	if store != nil {
		if err := store.Save(searchPath, repos); err != nil {
			l.Warnf("cache write failed: %v\n", err)
		}
	}
	return repos, nil
}
