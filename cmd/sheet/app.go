package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-sheet/internal/catalog"
	"github.com/KirkDiggler/rpg-sheet/internal/clients/external"
	"github.com/KirkDiggler/rpg-sheet/internal/config"
	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/actions"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/features"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/spells"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/tracker"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
	characterrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
	dicesession "github.com/KirkDiggler/rpg-sheet/internal/repositories/dice_session"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/sessionstate"
)

const redisPingTimeout = 2 * time.Second

type appOptions struct {
	EnvFile  string
	DataDirs []string
	Backend  string
}

// app holds the wired services for one CLI invocation
type app struct {
	cfg        *config.Config
	clock      clock.Clock
	characters characterrepo.Repository
	states     sessionstate.Repository
	sheet      sheet.Service
	tracker    tracker.Service
	redis      redisclient.Client
	closers    []func() error
}

func newApp(ctx context.Context, opts *appOptions) (*app, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	var envFiles []string
	if opts.EnvFile != "" {
		envFiles = append(envFiles, opts.EnvFile)
	}
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return nil, err
	}
	if len(opts.DataDirs) > 0 {
		cfg.DataDirs = opts.DataDirs
	}
	if opts.Backend != "" {
		cfg.StateBackend = strings.ToLower(opts.Backend)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	slog.SetDefault(cfg.NewLogger())

	a := &app{cfg: cfg, clock: clock.New()}
	if err := a.wire(ctx); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *app) wire(ctx context.Context) error {
	store, err := catalog.NewStore(&catalog.StoreConfig{DataDirs: a.cfg.DataDirs})
	if err != nil {
		return errors.Wrap(err, "failed to create catalog store")
	}

	resolverCfg := &catalog.ResolverConfig{Store: store, Timeout: a.cfg.RemoteTimeout}
	if a.cfg.RemoteEnabled {
		remote, err := external.New(&external.Config{
			BaseURL:     a.cfg.RemoteBaseURL,
			HTTPTimeout: a.cfg.RemoteTimeout,
			CacheTTL:    a.cfg.RemoteCacheTTL,
		})
		if err != nil {
			return errors.Wrap(err, "failed to create remote catalog client")
		}
		resolverCfg.Remote = remote
	}
	resolver, err := catalog.NewResolver(resolverCfg)
	if err != nil {
		return errors.Wrap(err, "failed to create resolver")
	}

	eng, err := engine.New(&engine.Config{})
	if err != nil {
		return errors.Wrap(err, "failed to create engine")
	}

	a.characters, err = characterrepo.NewFile(&characterrepo.FileConfig{DataDirs: a.cfg.DataDirs})
	if err != nil {
		return errors.Wrap(err, "failed to create character repository")
	}

	if err := a.wireStates(ctx); err != nil {
		return err
	}

	combatSvc, err := combat.NewOrchestrator(&combat.Config{Resolver: resolver, Engine: eng})
	if err != nil {
		return err
	}
	featuresSvc, err := features.NewOrchestrator(&features.Config{Resolver: resolver})
	if err != nil {
		return err
	}
	actionsSvc, err := actions.NewOrchestrator(&actions.Config{Resolver: resolver, Engine: eng})
	if err != nil {
		return err
	}
	spellsSvc, err := spells.NewOrchestrator(&spells.Config{Resolver: resolver, Engine: eng})
	if err != nil {
		return err
	}

	a.sheet, err = sheet.NewOrchestrator(&sheet.Config{
		Characters: a.characters,
		States:     a.states,
		Combat:     combatSvc,
		Features:   featuresSvc,
		Actions:    actionsSvc,
		Spells:     spellsSvc,
	})
	if err != nil {
		return err
	}

	a.tracker, err = tracker.NewOrchestrator(&tracker.Config{
		Resolver:   resolver,
		Spells:     spellsSvc,
		Repository: a.states,
		Characters: a.characters,
		EventBus:   newEventLogger(),
	})
	return err
}

func (a *app) wireStates(ctx context.Context) error {
	switch a.cfg.StateBackend {
	case config.BackendRedis:
		client, err := a.redisClient(ctx)
		if err != nil {
			return err
		}
		a.states, err = sessionstate.NewRedis(&sessionstate.RedisConfig{Client: client, Clock: a.clock})
		return err
	default:
		repo, err := sessionstate.NewSQLite(&sessionstate.SQLiteConfig{Path: a.cfg.SQLitePath, Clock: a.clock})
		if err != nil {
			return errors.Wrap(err, "failed to open session state database")
		}
		a.closers = append(a.closers, repo.Close)
		a.states = repo
		return nil
	}
}

// redisClient connects on first use
func (a *app) redisClient(ctx context.Context) (redisclient.Client, error) {
	if a.redis != nil {
		return a.redis, nil
	}
	client, err := redisclient.NewClient(a.cfg.RedisAddr, &redisclient.Options{DB: a.cfg.RedisDB})
	if err != nil {
		return nil, err
	}
	if err := redisclient.Ping(ctx, client, redisPingTimeout); err != nil {
		_ = client.Close()
		return nil, err
	}
	a.redis = client
	a.closers = append(a.closers, client.Close)
	return client, nil
}

// diceService needs Redis whatever the state backend
func (a *app) diceService(ctx context.Context) (dice.Service, error) {
	client, err := a.redisClient(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "dice sessions need redis at %s", a.cfg.RedisAddr)
	}
	repo, err := dicesession.NewRedisRepository(&dicesession.Config{
		Client:     client,
		Clock:      a.clock,
		DefaultTTL: a.cfg.DiceTTL,
	})
	if err != nil {
		return nil, err
	}
	return dice.NewOrchestrator(&dice.Config{
		DiceSessionRepo: repo,
		IDGenerator:     idgen.NewUUID("roll"),
		DefaultTTL:      a.cfg.DiceTTL,
	})
}

// Close releases connections in reverse order
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			slog.Warn("Failed to close resource", "error", err)
		}
	}
	a.closers = nil
}

// newEventLogger logs every tracker event at debug level
func newEventLogger() events.EventBus {
	bus := events.NewBus()
	for _, op := range tracker.Ops {
		bus.SubscribeFunc(tracker.EventPrefix+op, 100, func(_ context.Context, e events.Event) error {
			msg, _ := e.Context().Get(tracker.EventKeyMessage)
			var source string
			if e.Source() != nil {
				source = e.Source().GetID()
			}
			slog.Debug("Sheet event", "type", e.Type(), "character", source, "message", msg)
			return nil
		})
	}
	return bus
}
