package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const (
	cellWidth    = 2  // Terminal columns per board cell
	sidebarWidth = 16 // HUD column to the right of the board
	sidebarGap   = 2
	titleHeight  = 1
)

var (
	blockRunes = [cellWidth]rune{'█', '█'}
	ghostRunes = [cellWidth]rune{'░', '░'}
)

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot())
}

// MinScreenSize returns the smallest screen that fits a board of the given size.
func MinScreenSize(boardW, boardH int) (w, h int) {
	return boardW*cellWidth + 2 + sidebarGap + sidebarWidth, boardH + 2 + titleHeight
}

// RenderSnapshot draws a snapshot centered in dst: title, bordered board with
// ghost and active piece, and the score/next-piece sidebar.
func RenderSnapshot(dst *core.Screen, s Snapshot) {
	dst.Clear()

	minW, minH := MinScreenSize(s.Width, s.Height)
	if dst.Width() < minW || dst.Height() < minH {
		renderTooSmall(dst, minW, minH)
		return
	}

	frame := core.NewRect((dst.Width()-minW)/2, titleHeight, s.Width*cellWidth+2, s.Height+2)
	dst.DrawTextColor(frame.X, 0, "TETRIS", core.ColorCyan)
	dst.DrawBox(frame, core.ColorGray)

	originX, originY := frame.X+1, frame.Y+1
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			if c := s.CellAt(x, y); c.IsFilled() {
				drawCell(dst, originX, originY, core.Point{X: x, Y: y}, blockRunes, c.Piece().Color())
			}
		}
	}

	if !s.GameOver() {
		for _, p := range s.GhostCells() {
			if p.Y >= 0 && !s.CellAt(p.X, p.Y).IsFilled() {
				drawCell(dst, originX, originY, p, ghostRunes, core.ColorGray)
			}
		}
	}
	for _, p := range s.ActiveCells {
		if p.Y >= 0 {
			drawCell(dst, originX, originY, p, blockRunes, s.Active.Type.Color())
		}
	}

	renderSidebar(dst, frame.Right()+sidebarGap, frame.Y, s)

	switch s.Status {
	case StatusPaused:
		renderBanner(dst, frame, " PAUSED ", "p to resume", core.ColorYellow)
	case StatusGameOver:
		renderBanner(dst, frame, " GAME OVER ", "r restart  q quit", core.ColorBrightRed)
	}
}

func drawCell(dst *core.Screen, originX, originY int, p core.Point, runes [cellWidth]rune, c core.Color) {
	sx := originX + p.X*cellWidth
	sy := originY + p.Y
	for i, r := range runes {
		dst.SetWithColor(sx+i, sy, r, c)
	}
}

func renderSidebar(dst *core.Screen, x, y int, s Snapshot) {
	dst.DrawText(x, y, fmt.Sprintf("Score: %d", s.Score))
	dst.DrawText(x, y+1, fmt.Sprintf("Lines: %d", s.Lines))
	dst.DrawText(x, y+2, fmt.Sprintf("Level: %d", s.Level))

	dst.DrawText(x, y+4, "Next:")
	preview := s.Next.ShapeAt(0)
	for dy, row := range preview {
		for dx, filled := range row {
			if filled {
				drawCell(dst, x, y+5, core.Point{X: dx, Y: dy}, blockRunes, s.Next.Color())
			}
		}
	}
}

func renderBanner(dst *core.Screen, frame core.Rect, title, hint string, c core.Color) {
	midY := frame.Y + frame.H/2
	titleX := frame.X + (frame.W-len([]rune(title)))/2
	hintX := frame.X + (frame.W-len([]rune(hint)))/2
	dst.DrawTextColor(titleX, midY, title, c)
	dst.DrawTextColor(core.Clamp(hintX, 0, dst.Width()-1), midY+1, hint, core.ColorWhite)
}

func renderTooSmall(dst *core.Screen, minW, minH int) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minW, minH), core.ColorGray)
}
