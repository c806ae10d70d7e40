package loader

import (
	"context"
	"fmt"
	"path"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/evanx/component-validator/component"
	"github.com/evanx/component-validator/errors"
	"github.com/evanx/component-validator/logger"
	"github.com/evanx/component-validator/observability"
)

// DefaultHookTimeout bounds Init and factory invocation when no timeout
// is configured.
const DefaultHookTimeout = 30 * time.Second

// Loader turns a registered module reference into a component instance.
type Loader struct {
	registry    *component.Registry
	log         *logger.Logger
	metrics     *observability.Metrics
	reporter    component.Reporter
	recorder    component.Metrics
	props       map[string]any
	hookTimeout time.Duration
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the loader's logger.
func WithLogger(log *logger.Logger) Option {
	return func(l *Loader) { l.log = log }
}

// WithMetrics sets the telemetry bundle for load and hook recordings.
func WithMetrics(m *observability.Metrics) Option {
	return func(l *Loader) { l.metrics = m }
}

// WithReporter sets the error reporter handed to components.
func WithReporter(r component.Reporter) Option {
	return func(l *Loader) { l.reporter = r }
}

// WithRecorder sets the observation recorder handed to components.
func WithRecorder(rec component.Metrics) Option {
	return func(l *Loader) { l.recorder = rec }
}

// WithProps sets the opaque configuration passed to components.
func WithProps(props map[string]any) Option {
	return func(l *Loader) { l.props = props }
}

// WithHookTimeout bounds each Init or factory invocation.
func WithHookTimeout(d time.Duration) Option {
	return func(l *Loader) { l.hookTimeout = d }
}

// New creates a Loader over the given registry.
func New(registry *component.Registry, opts ...Option) *Loader {
	l := &Loader{
		registry:    registry,
		hookTimeout: DefaultHookTimeout,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.log == nil {
		l.log = logger.GetGlobalLogger()
	}
	return l
}

// Load resolves ref, constructs the component, and returns the finished
// instance. The instance name defaults to the last segment of the
// module reference; a component may override it via its Named
// capability or by setting it on the factory result.
func (l *Loader) Load(ctx context.Context, ref string) (*component.Instance, error) {
	started := time.Now()

	ctx, span := observability.StartSpan(ctx, observability.SpanLoad,
		trace.WithAttributes(attribute.String(observability.AttrModule, ref)))
	defer span.End()

	if ref == "" {
		return nil, l.fail(ctx, ref, started, errors.Resolution(ref, nil))
	}

	exp, err := l.registry.Resolve(ref)
	if err != nil {
		return nil, l.fail(ctx, ref, started, errors.Resolution(ref, err))
	}
	if err := exp.Validate(); err != nil {
		return nil, l.fail(ctx, ref, started, errors.Shape(ref, err.Error()))
	}

	name := path.Base(ref)
	state := component.NewState(name, l.props, l.log, l.recorder, l.reporter)
	ctx = logger.ContextWithLoadID(ctx, state.LoadID.String())
	span.SetAttributes(
		attribute.String(observability.AttrKind, string(exp.Kind)),
		attribute.String(observability.AttrLoadID, state.LoadID.String()),
	)

	log := l.log.WithContext(ctx).WithComponent(name)
	log.Debug("Loading component module", map[string]interface{}{
		"module": ref,
		"kind":   string(exp.Kind),
	})

	var inst *component.Instance
	switch exp.Kind {
	case component.KindConstructor:
		inst, err = l.construct(ctx, name, exp.Constructor, state)
	case component.KindFactory:
		inst, err = l.manufacture(ctx, name, exp.Factory, state)
	default:
		err = errors.Shape(ref, fmt.Sprintf("unknown export kind %q", exp.Kind))
	}
	if err != nil {
		appErr, ok := err.(*errors.AppError)
		if !ok {
			appErr = errors.Init(name, "load failed", err)
		}
		return nil, l.fail(ctx, ref, started, appErr)
	}

	loadedName := name
	if inst != nil {
		loadedName = inst.Name
	}
	span.SetAttributes(attribute.String(observability.AttrComponent, loadedName))
	l.metrics.RecordLoad(ctx, ref, "ok", time.Since(started))
	log.Info("Component loaded", map[string]interface{}{
		"module":    ref,
		"component": loadedName,
		"duration":  time.Since(started).String(),
	})
	return inst, nil
}

// construct builds a constructor-shaped component: call the constructor,
// require the Init capability, await Init, then adapt the object's
// remaining capabilities onto the instance.
func (l *Loader) construct(ctx context.Context, name string, ctor component.Constructor, state *component.State) (*component.Instance, error) {
	obj, err := safeConstruct(ctor, state)
	if err != nil {
		return nil, errors.Init(name, "construction failed", err)
	}
	if obj == nil {
		return nil, errors.Init(name, "constructor returned nil", nil)
	}

	init, ok := obj.(component.Initializer)
	if !ok {
		return nil, errors.Init(name, "does not implement Init", nil)
	}
	if err := l.runHook(ctx, name, "init", func(hctx context.Context) error {
		return init.Init(hctx, state)
	}); err != nil {
		if errors.HasCode(err, errors.ErrCodeTimeout) {
			return nil, err
		}
		return nil, errors.Init(name, "init failed", err)
	}

	inst := &component.Instance{Name: name}
	if named, ok := obj.(component.Named); ok {
		if n := named.Name(); n != "" {
			inst.Name = n
		}
	}
	if starter, ok := obj.(component.Starter); ok {
		inst.Start = starter.Start
	}
	if ender, ok := obj.(component.Ender); ok {
		inst.End = ender.End
	}
	return inst, nil
}

// manufacture builds a factory-shaped component and assigns the derived
// name when the factory leaves it empty. A nil result is returned as-is
// so the validator reports the missing instance.
func (l *Loader) manufacture(ctx context.Context, name string, factory component.Factory, state *component.State) (*component.Instance, error) {
	var inst *component.Instance
	err := l.runHook(ctx, name, "factory", func(hctx context.Context) error {
		var ferr error
		inst, ferr = factory(hctx, state)
		return ferr
	})
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeTimeout) {
			return nil, err
		}
		return nil, errors.Init(name, "factory failed", err)
	}
	if inst != nil && inst.Name == "" {
		inst.Name = name
	}
	return inst, nil
}

// runHook invokes fn under the configured timeout and records the hook
// duration. A deadline hit returns a TIMEOUT error; the hook goroutine
// is abandoned to its context.
func (l *Loader) runHook(ctx context.Context, name, hook string, fn component.Hook) error {
	hctx, cancel := context.WithTimeout(ctx, l.hookTimeout)
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
		l.metrics.RecordHook(ctx, name, hook, time.Since(started))
		return err
	case <-hctx.Done():
		l.metrics.RecordHook(ctx, name, hook, time.Since(started))
		return errors.Timeout(name, hook)
	}
}

// fail records the failure on span, metrics, and log, then returns err.
func (l *Loader) fail(ctx context.Context, ref string, started time.Time, err *errors.AppError) error {
	observability.SetSpanError(ctx, err)
	l.metrics.RecordLoad(ctx, ref, "error", time.Since(started))
	l.metrics.RecordError(ctx, string(err.Code), ref)
	l.log.WithContext(ctx).WithError(err).Error("Component load failed", map[string]interface{}{
		"module": ref,
		"code":   string(err.Code),
	})
	return err
}

// safeConstruct calls the constructor with panic recovery so a throwing
// constructor surfaces as an init failure instead of crashing the load.
func safeConstruct(ctor component.Constructor, state *component.State) (obj any, err error) {
	defer func() {
		if r := recover(); r != nil {
			obj = nil
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return ctor(state), nil
}
