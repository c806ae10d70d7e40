package runner

import (
	"context"
	"testing"
	"time"

	"github.com/evanx/component-validator/component"
	"github.com/evanx/component-validator/config"
	"github.com/evanx/component-validator/demo"
	"github.com/evanx/component-validator/errors"
)

func testConfig(module string) *config.Config {
	cfg := &config.Config{Module: module}
	cfg.ApplyDefaults()
	return cfg
}

func TestRun_HelloFactory(t *testing.T) {
	r, err := New(testConfig(demo.RefHello))
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Run(context.Background()); err != nil {
		t.Errorf("expected clean cycle, got %v", err)
	}
}

func TestRun_HelloClass(t *testing.T) {
	r, err := New(testConfig(demo.RefHelloClass))
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Run(context.Background()); err != nil {
		t.Errorf("expected clean cycle, got %v", err)
	}
}

func TestRun_UnknownModule(t *testing.T) {
	r, err := New(testConfig("demo/no-such-module"))
	if err != nil {
		t.Fatal(err)
	}
	err = r.Run(context.Background())
	if err == nil {
		t.Fatal("expected resolution failure")
	}
	if !errors.HasCode(err, errors.ErrCodeResolution) {
		t.Errorf("expected RESOLUTION_FAILED, got %s", errors.CodeOf(err))
	}
}

func TestRun_ClassWithoutInit(t *testing.T) {
	r, err := New(testConfig(demo.RefNoInitClass))
	if err != nil {
		t.Fatal(err)
	}
	err = r.Run(context.Background())
	if err == nil {
		t.Fatal("expected init failure")
	}
	if !errors.HasCode(err, errors.ErrCodeInit) {
		t.Errorf("expected INIT_FAILED, got %s", errors.CodeOf(err))
	}
}

func TestRun_InstanceWithoutEnd(t *testing.T) {
	r, err := New(testConfig(demo.RefNoEndFactory))
	if err != nil {
		t.Fatal(err)
	}
	err = r.Run(context.Background())
	if err == nil {
		t.Fatal("expected contract violation")
	}
	if !errors.HasCode(err, errors.ErrCodeContract) {
		t.Errorf("expected CONTRACT_VIOLATION, got %s", errors.CodeOf(err))
	}
}

func TestRun_BrokenStartHook(t *testing.T) {
	r, err := New(testConfig(demo.RefBrokenClass))
	if err != nil {
		t.Fatal(err)
	}
	err = r.Run(context.Background())
	if err == nil {
		t.Fatal("expected lifecycle failure from the probe")
	}
	if !errors.HasCode(err, errors.ErrCodeLifecycle) {
		t.Errorf("expected LIFECYCLE_FAILED, got %s", errors.CodeOf(err))
	}
}

func TestRun_ProbeSkippedOutsidePrefix(t *testing.T) {
	startCalled := false
	reg := component.NewRegistry()
	err := reg.RegisterFactory("demo/quiet-component", func(ctx context.Context, state *component.State) (*component.Instance, error) {
		return &component.Instance{
			Start: func(ctx context.Context) error {
				startCalled = true
				return nil
			},
			End: func(ctx context.Context) error { return nil },
		}, nil
	})
	if err != nil {
		t.Fatal(err)
	}

	r, err := New(testConfig("demo/quiet-component"), WithRegistry(reg))
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("expected validated cycle without probe, got %v", err)
	}
	if startCalled {
		t.Error("expected probe skipped for non-prefixed component")
	}
}

func TestRun_PropsReachComponent(t *testing.T) {
	var seen string
	reg := component.NewRegistry()
	_ = reg.RegisterFactory("demo/hello-props", func(ctx context.Context, state *component.State) (*component.Instance, error) {
		seen, _ = state.Props["greeting"].(string)
		return &component.Instance{
			Start: func(ctx context.Context) error { return nil },
			End:   func(ctx context.Context) error { return nil },
		}, nil
	})

	cfg := testConfig("demo/hello-props")
	cfg.Props = map[string]any{"greeting": "howdy"}

	r, err := New(cfg, WithRegistry(reg))
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if seen != "howdy" {
		t.Errorf("expected props handed through, got %q", seen)
	}
}

func TestRun_CanceledContext(t *testing.T) {
	reg := component.NewRegistry()
	_ = reg.RegisterFactory("demo/hello-slow", func(ctx context.Context, state *component.State) (*component.Instance, error) {
		select {
		case <-time.After(time.Second):
			return &component.Instance{}, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	})

	cfg := testConfig("demo/hello-slow")
	r, err := New(cfg, WithRegistry(reg))
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := r.Run(ctx); err == nil {
		t.Error("expected error from canceled cycle")
	}
}
