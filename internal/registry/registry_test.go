package registry

import (
	"testing"

	"github.com/vovakirdan/superngon/internal/config"
)

func TestRegisterAndGet(t *testing.T) {
	Register(Mode{
		ID:    "test-slow",
		Title: "Slow",
		Configure: func(cfg *config.NgonConfig) {
			cfg.Walls.ScrollStep = 5
		},
	})

	if !Exists("test-slow") {
		t.Fatal("registered mode does not exist")
	}
	m, err := Get("test-slow")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	cfg := m.Apply(config.DefaultNgonConfig())
	if cfg.Walls.ScrollStep != 5 {
		t.Errorf("ScrollStep = %v, want 5", cfg.Walls.ScrollStep)
	}

	found := false
	for _, info := range List() {
		if info.ID == "test-slow" {
			found = info.Title == "Slow"
		}
	}
	if !found {
		t.Error("List does not include the registered mode")
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("no-such-mode"); err == nil {
		t.Error("Get of unknown mode returned nil error")
	}
	if Exists("no-such-mode") {
		t.Error("Exists reported an unknown mode")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(Mode{ID: "test-dup"})
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register(Mode{ID: "test-dup"})
}

func TestApplyValidates(t *testing.T) {
	m := Mode{
		ID: "test-wide",
		Configure: func(cfg *config.NgonConfig) {
			cfg.Track.Sides = 500
		},
	}
	if got := m.Apply(config.DefaultNgonConfig()).Track.Sides; got != config.MaxSides {
		t.Errorf("Sides = %d, want %d", got, config.MaxSides)
	}
}

func TestListSorted(t *testing.T) {
	Register(Mode{ID: "test-b"})
	Register(Mode{ID: "test-a"})
	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
