package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	sqlitejournal "github.com/bnema/netrun/internal/adapters/journal/sqlite"
	tomlrepo "github.com/bnema/netrun/internal/adapters/repo/toml"
	"github.com/bnema/netrun/internal/adapters/telemetry"
	"github.com/bnema/netrun/internal/adapters/transcript"
	worldyaml "github.com/bnema/netrun/internal/adapters/world/yaml"
	"github.com/bnema/netrun/internal/domain"
	"github.com/bnema/netrun/internal/ports"
	"github.com/bnema/netrun/internal/session"
	"github.com/bnema/netrun/internal/version"
	"github.com/spf13/viper"
)

const (
	keyWorldPath         = "world.path"
	keyMaxCapacity       = "terminal.max_capacity"
	keyMilliPerCycle     = "clock.milli_per_cycle"
	keyJournalPath       = "journal.path"
	keyTranscriptDir     = "transcript.dir"
	keyServeAddr         = "serve.addr"
	keyTelemetryExporter = "telemetry.exporter"
	keyTelemetryPath     = "telemetry.path"
)

type app struct {
	repo     *tomlrepo.SessionRepository
	settings settings
}

type settings struct {
	WorldPath         string
	MaxCapacity       int
	MilliPerCycle     int
	JournalPath       string
	TranscriptDir     string
	ServeAddr         string
	TelemetryExporter string
	TelemetryPath     string
}

func (s settings) cycle() time.Duration {
	return time.Duration(s.MilliPerCycle) * time.Millisecond
}

func wireApp() (*app, error) {
	dir, err := tomlrepo.ConfigDir()
	if err != nil {
		return nil, fmt.Errorf("wire config: %w", err)
	}

	cfg := viper.New()
	cfg.SetEnvPrefix("NETRUN")
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()
	cfg.SetDefault(keyWorldPath, "")
	cfg.SetDefault(keyMaxCapacity, domain.DefaultMaxTerminalCapacity)
	cfg.SetDefault(keyMilliPerCycle, domain.MilliPerCycle)
	cfg.SetDefault(keyJournalPath, filepath.Join(dir, "journal.db"))
	cfg.SetDefault(keyTranscriptDir, "")
	cfg.SetDefault(keyServeAddr, "127.0.0.1:8734")
	cfg.SetDefault(keyTelemetryExporter, telemetry.ExporterNone)
	cfg.SetDefault(keyTelemetryPath, filepath.Join(dir, "traces.jsonl"))

	repo, err := tomlrepo.NewSessionRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire session repository: %w", err)
	}

	s := settings{
		WorldPath:         cfg.GetString(keyWorldPath),
		MaxCapacity:       cfg.GetInt(keyMaxCapacity),
		MilliPerCycle:     cfg.GetInt(keyMilliPerCycle),
		JournalPath:       cfg.GetString(keyJournalPath),
		TranscriptDir:     cfg.GetString(keyTranscriptDir),
		ServeAddr:         cfg.GetString(keyServeAddr),
		TelemetryExporter: cfg.GetString(keyTelemetryExporter),
		TelemetryPath:     cfg.GetString(keyTelemetryPath),
	}
	if s.MilliPerCycle <= 0 {
		return nil, fmt.Errorf("%s must be positive, got %d", keyMilliPerCycle, s.MilliPerCycle)
	}

	return &app{repo: repo, settings: s}, nil
}

// runtime holds the per-process collaborators shared by every game.
type runtime struct {
	journal ports.ActionJournal
	sinks   []ports.OutputSink
	closers []func(context.Context) error
}

func (a *app) openRuntime() (*runtime, error) {
	rt := &runtime{}

	var next ports.ActionJournal
	if a.settings.JournalPath != "" {
		j, err := sqlitejournal.Open(a.settings.JournalPath)
		if err != nil {
			return nil, fmt.Errorf("open action journal: %w", err)
		}
		next = j
		rt.closers = append(rt.closers, func(context.Context) error { return j.Close() })
	}

	tp, shutdown, err := telemetry.Setup(telemetry.Config{
		Exporter: a.settings.TelemetryExporter,
		Path:     a.settings.TelemetryPath,
		Version:  version.Version,
	})
	if err != nil {
		_ = rt.Close(context.Background())
		return nil, fmt.Errorf("set up telemetry: %w", err)
	}
	rt.closers = append(rt.closers, shutdown)
	rt.journal = telemetry.NewJournal(tp, next)

	if a.settings.TranscriptDir != "" {
		w := transcript.NewWriter(a.settings.TranscriptDir)
		rt.sinks = append(rt.sinks, w)
		rt.closers = append(rt.closers, func(context.Context) error { return w.Close() })
	}

	return rt, nil
}

// Close releases collaborators in reverse opening order.
func (rt *runtime) Close(ctx context.Context) error {
	var errs []error
	for _, closeFn := range slices.Backward(rt.closers) {
		errs = append(errs, closeFn(ctx))
	}
	rt.closers = nil
	return errors.Join(errs...)
}

// newGame loads a fresh world and wires it with rt and the caller's
// front-end collaborators.
func (a *app) newGame(rt *runtime, opts session.Options) (*session.Game, error) {
	world, err := worldyaml.Load(a.settings.WorldPath)
	if err != nil {
		return nil, err
	}

	opts.Version = version.Version
	opts.MaxCapacity = a.settings.MaxCapacity
	opts.MilliPerCycle = a.settings.MilliPerCycle
	opts.Journal = rt.journal
	opts.Sinks = append(slices.Clone(rt.sinks), opts.Sinks...)
	return session.NewGame(world, opts)
}
