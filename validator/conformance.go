package validator

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/evanx/component-validator/component"
	"github.com/evanx/component-validator/errors"
	"github.com/evanx/component-validator/logger"
	"github.com/evanx/component-validator/observability"
)

// DefaultHookTimeout bounds each probed hook when no timeout is
// configured.
const DefaultHookTimeout = 30 * time.Second

// Prober exercises the lifecycle hooks of a validated instance.
type Prober struct {
	log         *logger.Logger
	metrics     *observability.Metrics
	hookTimeout time.Duration
}

// ProberOption configures a Prober.
type ProberOption func(*Prober)

// WithLogger sets the prober's logger.
func WithLogger(log *logger.Logger) ProberOption {
	return func(p *Prober) { p.log = log }
}

// WithMetrics sets the telemetry bundle for hook recordings.
func WithMetrics(m *observability.Metrics) ProberOption {
	return func(p *Prober) { p.metrics = m }
}

// WithHookTimeout bounds each hook invocation.
func WithHookTimeout(d time.Duration) ProberOption {
	return func(p *Prober) { p.hookTimeout = d }
}

// NewProber creates a Prober.
func NewProber(opts ...ProberOption) *Prober {
	p := &Prober{hookTimeout: DefaultHookTimeout}
	for _, opt := range opts {
		opt(p)
	}
	if p.log == nil {
		p.log = logger.GetGlobalLogger()
	}
	return p
}

// Exercise runs the instance's start hook and then its end hook. When
// start fails, end is skipped; the instance is assumed broken and never
// partially wound down. The instance is structurally validated first so
// a prober used on its own still reports contract violations.
func (p *Prober) Exercise(ctx context.Context, inst *component.Instance) error {
	if err := Validate(inst); err != nil {
		return err
	}

	ctx, span := observability.StartSpan(ctx, observability.SpanExercise,
		trace.WithAttributes(attribute.String(observability.AttrComponent, inst.Name)))
	defer span.End()

	log := p.log.WithContext(ctx).WithComponent(inst.Name)

	if err := p.runHook(ctx, inst.Name, "start", inst.Start); err != nil {
		observability.SetSpanError(ctx, err)
		p.metrics.RecordError(ctx, string(errors.CodeOf(err)), inst.Name)
		log.WithError(err).Error("Start hook failed, skipping end")
		return err
	}
	log.Debug("Start hook completed")

	if err := p.runHook(ctx, inst.Name, "end", inst.End); err != nil {
		observability.SetSpanError(ctx, err)
		p.metrics.RecordError(ctx, string(errors.CodeOf(err)), inst.Name)
		log.WithError(err).Error("End hook failed")
		return err
	}
	log.Info("Component exercised", map[string]interface{}{
		"start": "ok",
		"end":   "ok",
	})
	return nil
}

// runHook invokes one hook under the configured timeout. Hook errors
// come back as LIFECYCLE_FAILED; a deadline hit as TIMEOUT.
func (p *Prober) runHook(ctx context.Context, name, hook string, fn component.Hook) error {
	hctx, cancel := context.WithTimeout(ctx, p.hookTimeout)
	defer cancel()

	started := time.Now()
	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("panic: %v", r)
			}
		}()
		done <- fn(hctx)
	}()

	select {
	case err := <-done:
		p.metrics.RecordHook(ctx, name, hook, time.Since(started))
		if err != nil {
			return errors.Lifecycle(name, hook, err)
		}
		return nil
	case <-hctx.Done():
		p.metrics.RecordHook(ctx, name, hook, time.Since(started))
		return errors.Timeout(name, hook)
	}
}
