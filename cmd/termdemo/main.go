// termdemo drives the dmk decision engine from a live terminal, standing in
// for real keyboard-matrix hardware the way the original project's
// dmk-crossterm demo did for the Rust implementation — ported here onto
// tcell instead of crossterm.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/DylanBulfin/dmk"
	"github.com/DylanBulfin/dmk/internal/keymapconfig"
)

var (
	keymapPath       string
	holdTapTimeoutMs int64
)

var rootCmd = &cobra.Command{
	Use:   "termdemo",
	Short: "termdemo drives the dmk engine from a live terminal keyboard",
	Long: "termdemo maps a handful of terminal keystrokes onto a small physical layout, " +
		"runs them through the dmk engine, and renders the resulting virtual keyboard state.",
	Args: cobra.NoArgs,
	RunE: runTermDemo,
}

func init() {
	rootCmd.Flags().StringVar(&keymapPath, "keymap", "",
		"path to a TOML keymap config (see internal/keymapconfig); uses a small builtin demo layout if unset")
	rootCmd.Flags().Int64Var(&holdTapTimeoutMs, "hold-tap-timeout-ms", 500,
		"hold-tap decision timeout in milliseconds, used by the builtin demo layout (ignored with --keymap)")
}

// Execute runs termdemo according to the user's flags.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}

const demoKeyCount = 4

func runTermDemo(cmd *cobra.Command, args []string) error {
	layers, err := loadLayers()
	if err != nil {
		return fmt.Errorf("loading keymap: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	layout := newTermLayout(demoKeyCount)
	clock := newWallClock()
	engine := dmk.NewEngine(layers, layout, clock)

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
					return nil
				}
				if idx, ok := demoKeyIndex(ev.Rune()); ok {
					layout.hit(idx)
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			engine.Step()
			render(screen, engine)
		}
	}
}

// demoKeyIndex maps the builtin demo's four keystrokes (a, r, s, t) onto
// physical key indices, matching dmk-crossterm's CrosstermPhysKeys layout.
func demoKeyIndex(r rune) (int, bool) {
	switch r {
	case 'a':
		return 0, true
	case 'r':
		return 1, true
	case 's':
		return 2, true
	case 't':
		return 3, true
	}
	return 0, false
}

func loadLayers() ([]dmk.Layer, error) {
	if keymapPath != "" {
		return keymapconfig.Load(keymapPath)
	}
	return defaultLayers(holdTapTimeoutMs), nil
}

// defaultLayers reproduces dmk-crossterm's builtin demo layout: a momentary
// layer on 'a', plain key presses on 'r', and a hold-tap between 's' (hold)
// and 't' (tap) on the fourth key, with an overlay remapping the other
// three keys to u/v/w.
func defaultLayers(timeoutMs int64) []dmk.Layer {
	base := dmk.NewLayer(demoKeyCount)
	base.Set(0, dmk.MomentaryLayer(1))
	base.Set(1, dmk.KeyPress(dmk.KeyA))
	base.Set(2, dmk.KeyPress(dmk.KeyR))
	base.Set(3, dmk.NewHoldTap(dmk.SimpleKeyPress(dmk.KeyS), dmk.SimpleKeyPress(dmk.KeyT), dmk.Milliseconds(timeoutMs), true))

	overlay := dmk.NewLayer(demoKeyCount)
	overlay.Set(1, dmk.KeyPress(dmk.KeyU))
	overlay.Set(2, dmk.KeyPress(dmk.KeyV))
	overlay.Set(3, dmk.KeyPress(dmk.KeyW))

	return []dmk.Layer{base, overlay}
}

func render(screen tcell.Screen, engine *dmk.Engine) {
	screen.Clear()

	line := "pressed:"
	for _, k := range engine.VirtualKeyboard().Pressed() {
		line += " " + k.String()
	}
	for i, r := range []rune(line) {
		screen.SetContent(i, 0, r, nil, tcell.StyleDefault)
	}

	hint := "press a/r/s/t, q to quit"
	for i, r := range []rune(hint) {
		screen.SetContent(i, 2, r, nil, tcell.StyleDefault.Dim(true))
	}

	screen.Show()
}
