package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ninja/internal/core"
	"github.com/vovakirdan/ninja/internal/gfx"
)

// HalfBlock shows two stacked pixels in one cell: the top pixel as foreground
// and the bottom pixel as background.
const HalfBlock = '▀'

// Presenter scales the logical canvas into terminal cells and styles them.
// Terminal cells are about twice as tall as wide, so one cell carries one
// pixel column and two pixel rows.
type Presenter struct {
	renderer *lipgloss.Renderer
	styles   map[[2]core.Color]lipgloss.Style
}

// NewPresenter creates a presenter. A nil renderer uses the process default;
// SSH sessions pass the session's renderer so colors match the client.
func NewPresenter(r *lipgloss.Renderer) *Presenter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Presenter{
		renderer: r,
		styles:   make(map[[2]core.Color]lipgloss.Style),
	}
}

// Fit returns the largest cell area that shows a sw×sh canvas without
// distorting it inside cw×ch cells.
func Fit(sw, sh, cw, ch int) (w, h int) {
	if sw <= 0 || sh <= 0 || cw <= 0 || ch <= 0 {
		return 0, 0
	}
	scale := min(float64(cw)/float64(sw), float64(2*ch)/float64(sh))
	w = max(1, int(float64(sw)*scale))
	h = max(1, int(float64(sh)*scale/2))
	return min(w, cw), min(h, ch)
}

// Draw samples src nearest-neighbor into dst, centered and letterboxed.
func (p *Presenter) Draw(src *gfx.Image, dst *core.Screen) {
	dst.Clear()
	sw, sh := src.Size()
	w, h := Fit(sw, sh, dst.Width(), dst.Height())
	if w == 0 || h == 0 {
		return
	}
	ox := (dst.Width() - w) / 2
	oy := (dst.Height() - h) / 2
	rows := 2 * h
	for y := range h {
		top := (2 * y) * sh / rows
		bottom := (2*y + 1) * sh / rows
		for x := range w {
			sx := x * sw / w
			dst.SetCell(ox+x, oy+y, core.Cell{
				Rune: HalfBlock,
				FG:   src.At(sx, top),
				BG:   src.At(sx, bottom),
			})
		}
	}
}

// DrawOverlay writes the pause banner over the frame.
func (p *Presenter) DrawOverlay(dst *core.Screen, st core.GameState) {
	if !st.Paused {
		return
	}
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "  PAUSED  ", core.ColorWhite, core.ColorBlack)
	dst.DrawTextCentered(y+1, " p resume ", core.ColorWhite, core.ColorBlack)
}

func (p *Presenter) style(fg, bg core.Color) lipgloss.Style {
	k := [2]core.Color{fg, bg}
	if s, ok := p.styles[k]; ok {
		return s
	}
	s := p.renderer.NewStyle()
	if fg.Opaque() {
		s = s.Foreground(lipgloss.Color(fg.Hex()))
	}
	if bg.Opaque() {
		s = s.Background(lipgloss.Color(bg.Hex()))
	}
	p.styles[k] = s
	return s
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (p *Presenter) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != start.FG || cell.BG != start.BG {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(p.style(start.FG, start.BG).Render(run.String()))
		}
	}
	return sb.String()
}
