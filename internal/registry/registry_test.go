package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/tui-scribble/internal/config"
	"github.com/vovakirdan/tui-scribble/internal/refimage"
)

type nopProvider struct{}

func (nopProvider) Fetch(context.Context, string) ([]byte, error) { return nil, nil }

func init() {
	Register("test-nop", "No-op", func(config.ReferenceConfig) (refimage.Provider, error) {
		return nopProvider{}, nil
	})
	Register("test-broken", "Broken", func(config.ReferenceConfig) (refimage.Provider, error) {
		return nil, errors.New("bad config")
	})
}

func TestCreate(t *testing.T) {
	p, err := Create(config.ReferenceConfig{Provider: "test-nop"})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if _, ok := p.(nopProvider); !ok {
		t.Errorf("Create() = %T, expected nopProvider", p)
	}

	if _, err := Create(config.ReferenceConfig{Provider: "missing"}); err == nil {
		t.Error("Create() should fail for unknown providers")
	}
	if _, err := Create(config.ReferenceConfig{Provider: "test-broken"}); err == nil {
		t.Error("Create() should surface factory errors")
	}
}

func TestListAndExists(t *testing.T) {
	if !Exists("test-nop") || Exists("missing") {
		t.Error("Exists() mismatch")
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List() not sorted: %v", list)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register() should panic on duplicate IDs")
		}
	}()
	Register("test-nop", "Again", nil)
}
