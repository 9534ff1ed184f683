package stockpile

import (
	"github.com/pbnjay/memory"
	"go.uber.org/zap"
)

const defaultIndent = "  "

// Config controls how a persistence adapter writes and reads snapshots.
type Config struct {
	// Indent is the indentation unit of the serialized snapshot.
	Indent string

	// SyncOnWrite forces an fsync of the temporary file before it is
	// swapped into place.
	SyncOnWrite bool

	// SkipUnchanged lets Save leave the destination alone when the
	// serialized payload is identical to the one written (or loaded)
	// last AND the destination still holds exactly those bytes. Off by
	// default: plain Save always overwrites.
	SkipUnchanged bool

	// MaxSourceSize is the largest snapshot, in bytes, Load agrees to
	// read into memory. Zero disables the bound.
	MaxSourceSize uint64

	// Log receives debug output of the adapter. Never nil after
	// newConfig; defaults to a nop logger.
	Log *zap.SugaredLogger
}

// Option mutates the adapter config at construction time.
type Option func(cfg *Config)

func newConfig(opts []Option) *Config {
	cfg := &Config{
		Indent:        defaultIndent,
		SyncOnWrite:   true,
		MaxSourceSize: memory.TotalMemory() / 4,
		Log:           zap.NewNop().Sugar(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Log == nil {
		cfg.Log = zap.NewNop().Sugar()
	}

	return cfg
}

// WithIndent overrides the snapshot indentation unit.
func WithIndent(indent string) Option {
	return func(cfg *Config) { cfg.Indent = indent }
}

// WithoutSync skips the fsync before the atomic swap. Faster, at the
// price of possibly losing the latest snapshot on power failure.
func WithoutSync() Option {
	return func(cfg *Config) { cfg.SyncOnWrite = false }
}

// WithSkipUnchanged enables the unchanged-snapshot shortcut of Save.
func WithSkipUnchanged() Option {
	return func(cfg *Config) { cfg.SkipUnchanged = true }
}

// WithMaxSourceSize bounds the snapshot size Load accepts. Zero removes
// the bound.
func WithMaxSourceSize(n uint64) Option {
	return func(cfg *Config) { cfg.MaxSourceSize = n }
}

// WithLogger attaches a logger to the adapter.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(cfg *Config) { cfg.Log = log }
}
