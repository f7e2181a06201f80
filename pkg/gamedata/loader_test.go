package gamedata_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-theft-craft/shared-enchantments/pkg/gamedata"
)

func TestLoad_UnknownVersion(t *testing.T) {
	_, err := gamedata.Load("nonexistent-version")
	if err == nil {
		t.Fatal("expected error for unknown version, got nil")
	}
	if !errors.Is(err, gamedata.ErrUnknownVersion) {
		t.Fatalf("expected ErrUnknownVersion, got %v", err)
	}
}

func TestLoad_UnknownVersionListsKnown(t *testing.T) {
	gamedata.Register("listed-version", func() *gamedata.GameData {
		return &gamedata.GameData{}
	})

	_, err := gamedata.Load("missing-version")
	if err == nil || !strings.Contains(err.Error(), "listed-version") {
		t.Fatalf("expected error to list registered versions, got %v", err)
	}
}

func TestRegisterAndLoad(t *testing.T) {
	called := false
	gamedata.Register("test-version", func() *gamedata.GameData {
		called = true
		return &gamedata.GameData{Version: "test-version"}
	})

	gd, err := gamedata.Load("test-version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gd == nil {
		t.Fatal("expected non-nil GameData")
	}
	if !called {
		t.Fatal("factory function was not called")
	}
}

func TestRegisteredVersions(t *testing.T) {
	gamedata.Register("rv-test", func() *gamedata.GameData {
		return &gamedata.GameData{}
	})

	versions := gamedata.RegisteredVersions()
	found := false
	for _, v := range versions {
		if v == "rv-test" {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected 'rv-test' in registered versions, got %v", versions)
	}
}
