package settings

import (
	"context"

	"go.uber.org/zap"

	"github.com/mexicanamerican/agent-zero/internal/agent"
	"github.com/mexicanamerican/agent-zero/internal/logging"
	"github.com/mexicanamerican/agent-zero/internal/tasks"
)

// Reloader preloads the speech-to-text model for a given size. Invoked
// fire-and-forget after a settings change; failures are logged, not
// surfaced.
type Reloader interface {
	Preload(ctx context.Context, modelSize string) error
}

// Service owns the single cached settings record of the process. The cache
// carries no lock: reads and writes are expected from one cooperative
// request loop, and concurrent writers get last-write-wins semantics on both
// the cache and the file.
type Service struct {
	store     *Store
	presenter *Presenter
	contexts  *agent.Registry
	env       Modes
	runner    *tasks.Runner
	log       *logging.Logger

	// Reload, when set, is triggered in the background after every Set with
	// the new STT model size.
	Reload Reloader

	current *Settings
}

// NewService wires the settings service. contexts may be nil when no agent
// contexts exist in the process.
func NewService(store *Store, presenter *Presenter, contexts *agent.Registry, env Modes, log *logging.Logger) *Service {
	if log == nil {
		log = logging.NewNop()
	}
	if contexts == nil {
		contexts = agent.NewRegistry()
	}
	return &Service{
		store:     store,
		presenter: presenter,
		contexts:  contexts,
		env:       env,
		runner:    tasks.NewRunner(log),
		log:       log,
	}
}

// Get returns the current record, loading it from disk on first use.
// Missing file means defaults; a corrupted file is logged and replaced by
// defaults rather than failing the process.
func (s *Service) Get() Settings {
	if s.current == nil {
		loaded, ok, err := s.store.Load()
		switch {
		case err != nil:
			s.log.Warn("settings file unreadable, falling back to defaults", zap.Error(err))
			loaded = Default()
		case !ok:
			loaded = Default()
		}
		norm := NormalizeSettings(loaded)
		s.current = &norm
	}
	return *s.current
}

// Set normalizes and caches the record, persists it, then propagates the
// reconfiguration: every live context rebuilds its config and pushes it down
// its delegation chain, and the STT model reload is scheduled detached.
func (s *Service) Set(set Settings) error {
	norm := NormalizeSettings(set)
	s.current = &norm

	if err := s.store.Save(norm); err != nil {
		return err
	}

	cfg := BuildAgentConfig(norm, s.env)
	s.contexts.Range(func(c *agent.Context) bool {
		c.SetConfig(cfg)
		return true
	})

	if s.Reload != nil {
		size := norm.STTModelSize
		s.runner.Go("stt-preload", func(ctx context.Context) error {
			return s.Reload.Preload(ctx, size)
		})
	}
	return nil
}

// Schema renders the current record as the UI form.
func (s *Service) Schema() Schema {
	return s.presenter.Schema(s.Get())
}

// SetSchema applies a submitted UI form onto the current record and stores
// the result.
func (s *Service) SetSchema(schema Schema) error {
	return s.Set(Apply(schema, s.Get()))
}

// Wait drains any in-flight background reloads, for tests and shutdown.
func (s *Service) Wait() {
	s.runner.Wait()
}
