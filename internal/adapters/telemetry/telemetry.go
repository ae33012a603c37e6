// Package telemetry exports finalised terminal actions as OpenTelemetry spans.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/netrun/internal/domain"
	"github.com/bnema/netrun/internal/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	ExporterNone   = "none"
	ExporterStdout = "stdout"

	instrumentationName = "github.com/bnema/netrun"
)

type Config struct {
	Exporter string
	// Path receives stdout spans; empty writes to os.Stdout.
	Path    string
	Service string
	Version string
}

// Setup builds the tracer provider described by cfg and installs it
// globally. The returned function flushes and releases it.
func Setup(cfg Config) (trace.TracerProvider, func(context.Context) error, error) {
	exporter := strings.ToLower(strings.TrimSpace(cfg.Exporter))
	if exporter == "" || exporter == ExporterNone {
		tp := noop.NewTracerProvider()
		otel.SetTracerProvider(tp)
		return tp, func(context.Context) error { return nil }, nil
	}
	if exporter != ExporterStdout {
		return nil, nil, fmt.Errorf("unsupported telemetry exporter %q", cfg.Exporter)
	}

	out := os.Stdout
	if cfg.Path != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o700); err != nil {
			return nil, nil, fmt.Errorf("create telemetry directory: %w", err)
		}
		f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open telemetry file: %w", err)
		}
		out = f
	}

	exp, err := stdouttrace.New(stdouttrace.WithWriter(out))
	if err != nil {
		return nil, nil, fmt.Errorf("create stdout exporter: %w", err)
	}

	service := cfg.Service
	if service == "" {
		service = "netrun"
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", service),
			attribute.String("service.version", cfg.Version),
		)),
	)
	otel.SetTracerProvider(tp)

	shutdown := func(ctx context.Context) error {
		err := tp.Shutdown(ctx)
		if out != os.Stdout {
			err = errors.Join(err, out.Close())
		}
		return err
	}
	return tp, shutdown, nil
}

// Journal records a span for every outcome before passing it on.
type Journal struct {
	tracer trace.Tracer
	next   ports.ActionJournal
	now    func() time.Time
}

var _ ports.ActionJournal = (*Journal)(nil)

// NewJournal wraps next, which may be nil.
func NewJournal(tp trace.TracerProvider, next ports.ActionJournal) *Journal {
	return &Journal{
		tracer: tp.Tracer(instrumentationName),
		next:   next,
		now:    time.Now,
	}
}

func (j *Journal) Record(o domain.ActionOutcome) {
	end := o.FinishedAt
	if end.IsZero() {
		end = j.now()
	}
	start := end.Add(-time.Duration(o.Duration * float64(time.Second)))

	_, span := j.tracer.Start(context.Background(), "terminal."+o.Kind.String(),
		trace.WithTimestamp(start),
		trace.WithAttributes(
			attribute.String("netrun.action.kind", o.Kind.String()),
			attribute.String("netrun.server.hostname", o.Hostname),
			attribute.Bool("netrun.action.cancelled", o.Cancelled),
			attribute.Bool("netrun.action.success", o.Success),
			attribute.Float64("netrun.action.money_gained", o.MoneyGained),
			attribute.Float64("netrun.action.exp_gained", o.ExpGained),
			attribute.Float64("netrun.server.security_before", o.SecurityBefore),
			attribute.Float64("netrun.server.security_after", o.SecurityAfter),
		),
	)
	switch {
	case o.Rejected:
		span.SetStatus(codes.Error, "rejected by server category")
	case o.Cancelled:
		span.SetStatus(codes.Unset, "cancelled")
	default:
		span.SetStatus(codes.Ok, "")
	}
	span.End(trace.WithTimestamp(end))

	if j.next != nil {
		j.next.Record(o)
	}
}
