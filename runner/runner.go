package runner

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/evanx/component-validator/component"
	"github.com/evanx/component-validator/config"
	"github.com/evanx/component-validator/demo"
	"github.com/evanx/component-validator/loader"
	"github.com/evanx/component-validator/logger"
	"github.com/evanx/component-validator/observability"
	"github.com/evanx/component-validator/validator"
)

const defaultGracefulTimeout = 15 * time.Second

// Runner drives one component load-and-validate cycle from a validated
// configuration.
type Runner struct {
	cfg      *config.Config
	registry *component.Registry
	log      *logger.Logger

	gracefulTimeout time.Duration

	meterProvider  *sdkmetric.MeterProvider
	tracerProvider *sdktrace.TracerProvider
}

// Option configures a Runner.
type Option func(*Runner)

// WithRegistry supplies a pre-populated registry instead of the
// built-in demo components.
func WithRegistry(reg *component.Registry) Option {
	return func(r *Runner) { r.registry = reg }
}

// WithLogger sets the runner's logger.
func WithLogger(log *logger.Logger) Option {
	return func(r *Runner) { r.log = log }
}

// WithGracefulTimeout bounds the telemetry shutdown.
func WithGracefulTimeout(d time.Duration) Option {
	return func(r *Runner) { r.gracefulTimeout = d }
}

// New creates a Runner. The config must already be defaulted and
// validated.
func New(cfg *config.Config, opts ...Option) (*Runner, error) {
	r := &Runner{
		cfg:             cfg,
		gracefulTimeout: defaultGracefulTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = logger.GetGlobalLogger()
	}
	if r.registry == nil {
		r.registry = component.NewRegistry()
		if err := demo.Register(r.registry); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Run executes the cycle: load the configured module, validate the
// instance, and exercise it when its name carries the probe prefix.
// SIGINT/SIGTERM cancel the cycle; telemetry is flushed on the way out.
func (r *Runner) Run(ctx context.Context) error {
	started := time.Now()

	r.log.Info("Starting load cycle", map[string]interface{}{
		"module":       r.cfg.Module,
		"probe_prefix": r.cfg.ProbePrefix,
		"environment":  r.cfg.Environment,
	})

	if err := r.initTelemetry(ctx); err != nil {
		return err
	}
	defer r.shutdownTelemetry()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case sig := <-sigCh:
			r.log.Info("Received signal, canceling cycle", map[string]interface{}{
				"signal": sig.String(),
			})
			cancel()
		case <-runCtx.Done():
		}
	}()

	err := r.cycle(runCtx)
	if err != nil {
		r.log.WithError(err).Error("Load cycle failed", map[string]interface{}{
			"module":   r.cfg.Module,
			"duration": time.Since(started).String(),
		})
		return err
	}

	r.log.Info("Load cycle complete", map[string]interface{}{
		"module":   r.cfg.Module,
		"duration": time.Since(started).String(),
	})
	return nil
}

// cycle performs load, validate, and the conditional probe.
func (r *Runner) cycle(ctx context.Context) error {
	meter := observability.Meter(config.ServiceName)
	metrics, err := observability.NewMetrics(meter)
	if err != nil {
		return err
	}
	recorder, err := observability.NewRecorder(meter)
	if err != nil {
		return err
	}
	reporter := observability.NewLogReporter(r.log, metrics)

	ld := loader.New(r.registry,
		loader.WithLogger(r.log),
		loader.WithMetrics(metrics),
		loader.WithRecorder(recorder),
		loader.WithReporter(reporter),
		loader.WithProps(r.cfg.Props),
		loader.WithHookTimeout(r.cfg.HookTimeout),
	)

	inst, err := ld.Load(ctx, r.cfg.Module)
	if err != nil {
		return err
	}

	if err := validator.Validate(inst); err != nil {
		r.log.WithError(err).Error("Component failed validation", map[string]interface{}{
			logger.FieldComponent: displayName(inst),
		})
		return err
	}

	if !strings.HasPrefix(inst.Name, r.cfg.ProbePrefix) {
		r.log.Info("Component validated, probe skipped", map[string]interface{}{
			logger.FieldComponent: inst.Name,
		})
		return nil
	}

	prober := validator.NewProber(
		validator.WithLogger(r.log),
		validator.WithMetrics(metrics),
		validator.WithHookTimeout(r.cfg.HookTimeout),
	)
	if err := prober.Exercise(ctx, inst); err != nil {
		return err
	}

	r.log.Info("Component validated and exercised", map[string]interface{}{
		logger.FieldComponent: inst.Name,
	})
	return nil
}

// initTelemetry starts the OTLP exporters that are enabled in config.
func (r *Runner) initTelemetry(ctx context.Context) error {
	if r.cfg.Metrics.Enabled {
		mc := observability.DefaultMeterConfig(config.ServiceName)
		mc.ServiceVersion = r.cfg.Version
		mc.Environment = r.cfg.Environment
		mc.Endpoint = r.cfg.Metrics.Endpoint
		mc.Insecure = r.cfg.Metrics.Insecure

		mp, err := observability.InitMeter(ctx, &mc)
		if err != nil {
			return err
		}
		r.meterProvider = mp
	}

	if r.cfg.Tracing.Enabled {
		tc := observability.DefaultTracerConfig(config.ServiceName)
		tc.ServiceVersion = r.cfg.Version
		tc.Environment = r.cfg.Environment
		tc.Endpoint = r.cfg.Tracing.Endpoint
		tc.Insecure = r.cfg.Tracing.Insecure
		tc.SampleRate = r.cfg.Tracing.SampleRate

		tp, err := observability.InitTracer(ctx, tc)
		if err != nil {
			return err
		}
		r.tracerProvider = tp
	}

	return nil
}

// shutdownTelemetry flushes and stops the providers within the graceful
// timeout.
func (r *Runner) shutdownTelemetry() {
	ctx, cancel := context.WithTimeout(context.Background(), r.gracefulTimeout)
	defer cancel()

	if r.tracerProvider != nil {
		if err := r.tracerProvider.Shutdown(ctx); err != nil {
			r.log.Warn("Tracer shutdown error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	if r.meterProvider != nil {
		if err := r.meterProvider.Shutdown(ctx); err != nil {
			r.log.Warn("Meter shutdown error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}

func displayName(inst *component.Instance) string {
	if inst == nil {
		return ""
	}
	return inst.Name
}
