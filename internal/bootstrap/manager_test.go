package bootstrap

import (
	"context"
	"errors"
	"testing"
)

type fakeComponent struct {
	name     string
	startErr error
	events   *[]string
}

func (f *fakeComponent) Name() string { return f.name }

func (f *fakeComponent) Start(ctx context.Context) error {
	if f.startErr != nil {
		return f.startErr
	}
	*f.events = append(*f.events, "start:"+f.name)
	return nil
}

func (f *fakeComponent) Stop(ctx context.Context) error {
	*f.events = append(*f.events, "stop:"+f.name)
	return nil
}

func TestManager_StartStopOrder(t *testing.T) {
	var events []string
	a := &fakeComponent{name: "a", events: &events}
	b := &fakeComponent{name: "b", events: &events}

	m := NewManager()
	if err := m.Register(a); err != nil {
		t.Fatal(err)
	}
	if err := m.Register(b, a); err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	if err := m.Start(ctx); err != nil {
		t.Fatal(err)
	}
	if err := m.Stop(ctx); err != nil {
		t.Fatal(err)
	}

	want := []string{"start:a", "start:b", "stop:b", "stop:a"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events[%d] = %s, want %s", i, events[i], want[i])
		}
	}
}

func TestManager_StartFailureRollsBack(t *testing.T) {
	var events []string
	a := &fakeComponent{name: "a", events: &events}
	b := &fakeComponent{name: "b", startErr: errors.New("boom"), events: &events}

	m := NewManager()
	if err := m.Register(a); err != nil {
		t.Fatal(err)
	}
	if err := m.Register(b, a); err != nil {
		t.Fatal(err)
	}

	if err := m.Start(context.Background()); err == nil {
		t.Fatal("expected start to fail")
	}

	// a was started and must have been stopped during rollback
	want := []string{"start:a", "stop:a"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	if m.IsRunning(a) {
		t.Error("expected a to be stopped after rollback")
	}
}

func TestManager_RegisterValidation(t *testing.T) {
	var events []string
	a := &fakeComponent{name: "a", events: &events}
	unregistered := &fakeComponent{name: "x", events: &events}

	m := NewManager()
	if err := m.Register(nil); err == nil {
		t.Error("expected error for nil component")
	}
	if err := m.Register(a); err != nil {
		t.Fatal(err)
	}
	if err := m.Register(a); err == nil {
		t.Error("expected error for duplicate registration")
	}
	if err := m.Register(&fakeComponent{name: "b", events: &events}, unregistered); err == nil {
		t.Error("expected error for unregistered dependency")
	}
}
