// Package desktop runs a game in a native window through Ebiten. Unlike the
// terminal, the window reports real key-up events, so held directions follow
// the keyboard exactly.
package desktop

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/ninja/internal/core"
	"github.com/vovakirdan/ninja/internal/gfx"
	"github.com/vovakirdan/ninja/internal/registry"
)

// Settings configures the window.
type Settings struct {
	Runtime core.RuntimeConfig
	Scale   int         // Window pixels per logical pixel
	Logger  *log.Logger // nil discards
}

// Bindings maps actions to keys. Any listed key triggers the action.
type Bindings struct {
	Left    []ebiten.Key
	Right   []ebiten.Key
	Actions map[core.Action][]ebiten.Key
}

// DefaultBindings mirrors the terminal key map.
func DefaultBindings() Bindings {
	return Bindings{
		Left:  []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		Right: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Actions: map[core.Action][]ebiten.Key{
			core.ActionJump:    {ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeySpace},
			core.ActionDash:    {ebiten.KeyX},
			core.ActionPause:   {ebiten.KeyP, ebiten.KeyEscape},
			core.ActionRestart: {ebiten.KeyR},
			core.ActionQuit:    {ebiten.KeyQ},
		},
	}
}

// actionOrder fixes the polling order so frames do not depend on map order.
var actionOrder = []core.Action{
	core.ActionJump, core.ActionDash, core.ActionPause, core.ActionRestart, core.ActionQuit,
}

// Window adapts a registry.Game to ebiten.Game.
type Window struct {
	game   registry.Game
	keys   Bindings
	canvas *gfx.Canvas
	frame  *ebiten.Image
	pix    []byte
	input  core.InputFrame
	state  core.GameState
	log    *log.Logger
}

// NewWindow creates a window runner for game.
func NewWindow(game registry.Game, logger *log.Logger) *Window {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w, h := game.Resolution()
	return &Window{
		game:   game,
		keys:   DefaultBindings(),
		canvas: gfx.NewCanvas(w, h),
		input:  core.NewInputFrame(),
		log:    logger,
	}
}

func anyPressed(keys []ebiten.Key, pressed func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if pressed(k) {
			return true
		}
	}
	return false
}

// poll fills the input frame from the current key states.
func (w *Window) poll() {
	w.input.Left = anyPressed(w.keys.Left, ebiten.IsKeyPressed)
	w.input.Right = anyPressed(w.keys.Right, ebiten.IsKeyPressed)
	for _, a := range actionOrder {
		if anyPressed(w.keys.Actions[a], inpututil.IsKeyJustPressed) {
			w.input.Set(a)
		}
	}
}

// Update runs one simulation tick. Ebiten calls it at the configured TPS.
func (w *Window) Update() error {
	w.poll()
	if w.input.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	w.state = w.game.Step(w.input).State
	w.input.Clear()
	return nil
}

// Draw renders the logical frame and hands it to Ebiten, which scales it to
// the window.
func (w *Window) Draw(screen *ebiten.Image) {
	cw, ch := w.canvas.Size()
	if w.frame == nil {
		w.frame = ebiten.NewImage(cw, ch)
	}
	w.game.Render(w.canvas)
	w.pix = w.canvas.RGBA(w.pix[:0])
	w.frame.WritePixels(w.pix)
	screen.DrawImage(w.frame, nil)
}

// Layout keeps the logical resolution; Ebiten upscales to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.canvas.Size()
}

// Run opens the window and blocks until it is closed or the game quits.
func Run(game registry.Game, s Settings) error {
	cfg := s.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	scale := max(1, s.Scale)

	win := NewWindow(game, s.Logger)
	gw, gh := game.Resolution()
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(gw*scale, gh*scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TickRate)

	game.Reset(cfg)
	win.log.Info("window opened", "width", gw*scale, "height", gh*scale, "tps", cfg.TickRate, "seed", cfg.Seed)

	err := ebiten.RunGame(win)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
