package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/abhisek/multiz/internal/config"
	"github.com/abhisek/multiz/internal/problemgen"
	"github.com/abhisek/multiz/internal/rewards"
	"github.com/abhisek/multiz/internal/screens"
	"github.com/abhisek/multiz/internal/session"
	"github.com/abhisek/multiz/internal/settings"
	"github.com/abhisek/multiz/internal/store"
	"github.com/spf13/cobra"
)

// env is what every command opens before doing its work.
type env struct {
	store *store.Store
	cfg   config.FileConfig
	logs  io.Closer
}

// openEnv loads the config file, installs the file logger and opens the
// store.
func openEnv(cmd *cobra.Command) (*env, error) {
	cfgPath := resolveConfigPath(cmd)
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	e := &env{cfg: cfg}
	logPath, level, err := cfg.Log.Resolve()
	if err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}
	if e.logs, err = config.SetupLogger(logPath, level); err != nil {
		fmt.Fprintln(os.Stderr, "Logging disabled:", err)
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		e.close()
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	if e.store, err = store.Open(dbPath); err != nil {
		e.close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	slog.Debug("environment ready", "db", dbPath, "config", cfgPath)
	return e, nil
}

func (e *env) close() {
	if e.store != nil {
		e.store.Close()
	}
	if e.logs != nil {
		e.logs.Close()
	}
}

// baseSettings returns the saved settings, or the defaults when nothing
// was saved.
func (e *env) baseSettings(ctx context.Context) (settings.GameSettings, error) {
	saved, err := e.store.StateRepo().LoadSettings(ctx)
	if err != nil {
		return settings.GameSettings{}, fmt.Errorf("load settings: %w", err)
	}
	if saved == nil {
		return settings.Default(), nil
	}
	return *saved, nil
}

// effectiveSettings layers the config file over the saved settings.
func (e *env) effectiveSettings(ctx context.Context) (settings.GameSettings, error) {
	base, err := e.baseSettings(ctx)
	if err != nil {
		return base, err
	}
	s, err := e.cfg.Apply(base)
	if err != nil {
		return base, fmt.Errorf("config: %w", err)
	}
	return s, nil
}

// sessionID returns the persisted session id, creating one on first run.
func (e *env) sessionID(ctx context.Context) (string, error) {
	repo := e.store.StateRepo()
	id, err := repo.LoadSessionID(ctx)
	if err != nil {
		return "", fmt.Errorf("load session id: %w", err)
	}
	if id != "" {
		return id, nil
	}
	id = session.NewSessionID()
	if err := repo.SaveSessionID(ctx, id); err != nil {
		return "", fmt.Errorf("save session id: %w", err)
	}
	slog.Info("new session", "session_id", id)
	return id, nil
}

// restoreGame returns the saved in-flight game of sessionID, or nil. A
// snapshot that cannot be restored, or belongs to another session, is
// discarded.
func (e *env) restoreGame(ctx context.Context, sessionID string) *session.Game {
	repo := e.store.StateRepo()
	snap, err := repo.LoadGame(ctx)
	if err != nil || snap == nil {
		if err != nil {
			slog.Warn("failed to load game", "error", err)
		}
		return nil
	}
	g, err := session.Restore(snap)
	if err == nil && g.SessionID() == sessionID && g.State() == session.InProgress {
		return g
	}
	if err != nil {
		slog.Warn("discarding saved game", "error", err)
	}
	if err := repo.ClearGame(ctx); err != nil {
		slog.Warn("failed to clear game", "error", err)
	}
	return nil
}

// buildDeps wires the store, settings and generator for the TUI.
func (e *env) buildDeps(ctx context.Context, s settings.GameSettings) (*screens.Deps, error) {
	id, err := e.sessionID(ctx)
	if err != nil {
		return nil, err
	}

	seed := uint64(time.Now().UnixNano())
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))
	rewardRepo := e.store.RewardRepo()

	return &screens.Deps{
		State:     e.store.StateRepo(),
		Answers:   e.store.AnswerRepo(),
		Rewards:   rewardRepo,
		Builder:   session.NewBuilder(rng, problemgen.New(rng, problemgen.DefaultConfig())),
		Tracker:   rewards.NewTracker(s.Reward, rewardRepo),
		Settings:  s,
		SessionID: id,
		Game:      e.restoreGame(ctx, id),
	}, nil
}
