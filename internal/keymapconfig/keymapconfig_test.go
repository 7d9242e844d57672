package keymapconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DylanBulfin/dmk"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keymap.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadBuildsLayers(t *testing.T) {
	path := writeTempConfig(t, `
key_count = 4

[[layer]]
keys = ["momentary_layer:1", "key:A", "key:R", "hold_tap:LShift:T:200:true"]

[[layer]]
keys = ["transparent", "key:U", "key:V", "key:W"]
`)

	layers, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(layers) != 2 {
		t.Fatalf("len(layers) = %d, want 2", len(layers))
	}

	base := layers[0]
	if b := base.Get(1); b.Kind != dmk.BehaviorKeyPress || b.Key != dmk.KeyA {
		t.Errorf("base.Get(1) = %+v, want KeyPress(A)", b)
	}
	if b := base.Get(3); b.Kind != dmk.BehaviorHoldTap {
		t.Errorf("base.Get(3) = %+v, want HoldTap", b)
	}

	overlay := layers[1]
	if b := overlay.Get(0); b.Kind != dmk.BehaviorTransparent {
		t.Errorf("overlay.Get(0) = %+v, want Transparent", b)
	}
	if b := overlay.Get(1); b.Key != dmk.KeyU {
		t.Errorf("overlay.Get(1) = %+v, want KeyPress(U)", b)
	}
}

func TestLoadRejectsUnknownKeyName(t *testing.T) {
	path := writeTempConfig(t, `
key_count = 1

[[layer]]
keys = ["key:NotAKey"]
`)

	if _, err := Load(path); err == nil {
		t.Errorf("Load() error = nil, want an error for an unknown key name")
	}
}

func TestLoadRejectsEmptyLayerSet(t *testing.T) {
	path := writeTempConfig(t, `key_count = 1`)

	if _, err := Load(path); err == nil {
		t.Errorf("Load() error = nil, want an error for a config with no layers")
	}
}

func TestLoadRejectsTooManyKeysForLayer(t *testing.T) {
	path := writeTempConfig(t, `
key_count = 1

[[layer]]
keys = ["key:A", "key:B"]
`)

	if _, err := Load(path); err == nil {
		t.Errorf("Load() error = nil, want an error when a layer has more keys than key_count")
	}
}
