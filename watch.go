package breakout

import (
	"context"
	"time"

	"github.com/yacobolo/breakout/internal/logger"
	"github.com/yacobolo/breakout/internal/watch"
)

// WatchOptions configures Watch
type WatchOptions struct {
	// Paths are the configuration files whose changes trigger a rebuild.
	Paths    []string
	Debounce time.Duration
	// Load reads the current configuration before every build.
	Load func() (Config, error)
	// OnResult receives the outcome of every build.
	OnResult func(*GenerateResult, error)
	Logger   *logger.Logger
}

// Watch generates once, then again whenever one of opts.Paths changes,
// until ctx is done.
func Watch(ctx context.Context, opts WatchOptions) error {
	rebuild := func() {
		result, err := generateWith(opts.Load)
		if opts.OnResult != nil {
			opts.OnResult(result, err)
		}
	}

	rebuild()
	return watch.Run(ctx, watch.Options{
		Paths:    opts.Paths,
		Debounce: opts.Debounce,
		Logger:   opts.Logger,
	}, rebuild)
}

func generateWith(load func() (Config, error)) (*GenerateResult, error) {
	config, err := load()
	if err != nil {
		return nil, err
	}
	return Generate(config)
}
