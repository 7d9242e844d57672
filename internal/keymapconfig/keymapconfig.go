// Package keymapconfig loads a keyboard's layer stack from a TOML file, so
// a host binary can describe its base and overlay layers as data instead of
// a hand-written slice of dmk.Layer literals.
package keymapconfig

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/DylanBulfin/dmk"
)

// fileConfig is the root TOML document shape:
//
//	key_count = 4
//
//	[[layer]]
//	keys = ["momentary_layer:1", "key:A", "key:R", "hold_tap:S:T:200:true"]
//
//	[[layer]]
//	keys = ["transparent", "key:U", "key:V", "key:W"]
type fileConfig struct {
	KeyCount int           `toml:"key_count"`
	Layers   []layerConfig `toml:"layer"`
}

type layerConfig struct {
	Keys []string `toml:"keys"`
}

// Load reads path and builds the layer set it describes. layers[0] is the
// base layer, matching dmk.NewLayerStack's convention.
func Load(path string) ([]dmk.Layer, error) {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return nil, fmt.Errorf("keymapconfig: decoding %s: %w", path, err)
	}
	if len(fc.Layers) == 0 {
		return nil, errors.New("keymapconfig: config defines no layers")
	}

	layers := make([]dmk.Layer, len(fc.Layers))
	for i, lc := range fc.Layers {
		layer := dmk.NewLayer(fc.KeyCount)
		for key, spec := range lc.Keys {
			if key >= fc.KeyCount {
				return nil, fmt.Errorf("keymapconfig: layer %d has more keys than key_count %d", i, fc.KeyCount)
			}
			b, err := parseBehavior(spec)
			if err != nil {
				return nil, fmt.Errorf("keymapconfig: layer %d key %d: %w", i, key, err)
			}
			layer.Set(key, b)
		}
		layers[i] = layer
	}
	return layers, nil
}

// parseBehavior turns one "keys" entry into a dmk.Behavior. Recognized
// forms: "transparent", "noop", "key:<Name>", "momentary_layer:<id>", and
// "hold_tap:<hold>:<tap>:<timeoutMs>:<holdWhileUndecided>" where <hold> and
// <tap> are themselves simple-behavior tokens (see parseSimple).
func parseBehavior(spec string) (dmk.Behavior, error) {
	fields := strings.Split(spec, ":")
	switch fields[0] {
	case "transparent":
		return dmk.TransparentBehavior(), nil
	case "noop", "":
		return dmk.NoOp(), nil
	case "key":
		if len(fields) != 2 {
			return dmk.Behavior{}, fmt.Errorf("malformed %q, want \"key:<Name>\"", spec)
		}
		k, ok := dmk.ParseKey(fields[1])
		if !ok {
			return dmk.Behavior{}, fmt.Errorf("unknown key name %q", fields[1])
		}
		return dmk.KeyPress(k), nil
	case "momentary_layer":
		if len(fields) != 2 {
			return dmk.Behavior{}, fmt.Errorf("malformed %q, want \"momentary_layer:<id>\"", spec)
		}
		id, err := strconv.Atoi(fields[1])
		if err != nil {
			return dmk.Behavior{}, fmt.Errorf("malformed layer id in %q: %w", spec, err)
		}
		return dmk.MomentaryLayer(id), nil
	case "hold_tap":
		if len(fields) != 5 {
			return dmk.Behavior{}, fmt.Errorf(
				"malformed %q, want \"hold_tap:<hold>:<tap>:<timeoutMs>:<holdWhileUndecided>\"", spec)
		}
		hold, err := parseSimple(fields[1])
		if err != nil {
			return dmk.Behavior{}, fmt.Errorf("hold_tap hold argument: %w", err)
		}
		tap, err := parseSimple(fields[2])
		if err != nil {
			return dmk.Behavior{}, fmt.Errorf("hold_tap tap argument: %w", err)
		}
		timeoutMs, err := strconv.ParseInt(fields[3], 10, 64)
		if err != nil {
			return dmk.Behavior{}, fmt.Errorf("hold_tap timeout in %q: %w", spec, err)
		}
		holdWhileUndecided, err := strconv.ParseBool(fields[4])
		if err != nil {
			return dmk.Behavior{}, fmt.Errorf("hold_tap holdWhileUndecided in %q: %w", spec, err)
		}
		return dmk.NewHoldTap(hold, tap, dmk.Milliseconds(timeoutMs), holdWhileUndecided), nil
	default:
		return dmk.Behavior{}, fmt.Errorf("unrecognized behavior kind %q in %q", fields[0], spec)
	}
}

// parseSimple parses a HoldTap hold/tap argument: a bare key name for
// BehaviorKeyPress, or "ml<id>" for BehaviorMomentaryLayer.
func parseSimple(tok string) (dmk.SimpleBehavior, error) {
	if rest, ok := strings.CutPrefix(tok, "ml"); ok {
		id, err := strconv.Atoi(rest)
		if err != nil {
			return dmk.SimpleBehavior{}, fmt.Errorf("malformed momentary-layer token %q: %w", tok, err)
		}
		return dmk.SimpleMomentaryLayer(id), nil
	}
	k, ok := dmk.ParseKey(tok)
	if !ok {
		return dmk.SimpleBehavior{}, fmt.Errorf("unknown key name %q", tok)
	}
	return dmk.SimpleKeyPress(k), nil
}
