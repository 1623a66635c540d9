package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

const (
	cellW   = 2 // Screen columns per grid cell, so cells look square
	hudRows = 1
)

type foodStyle struct {
	glyph rune
	color core.Color
	label string
}

var foodStyles = map[snake.FoodKind]foodStyle{
	snake.FoodNormal: {'●', core.ColorRed, "food"},
	snake.FoodDouble: {'2', core.ColorYellow, "x2"},
	snake.FoodTriple: {'3', core.ColorOrange, "x3"},
	snake.FoodSpeed:  {'»', core.ColorCyan, "speed"},
	snake.FoodSlow:   {'«', core.ColorBlue, "slow"},
	snake.FoodPhase:  {'◊', core.ColorMagenta, "phase"},
}

// BoardSize returns the screen size needed to draw a gridW x gridH board.
func BoardSize(gridW, gridH int) (w, h int) {
	return gridW*cellW + 2, gridH + 2 + hudRows
}

// DrawBoard draws a snapshot into dst: a HUD line, the bordered board and a
// state overlay. dst is cleared first.
func DrawBoard(dst *core.Screen, snap snake.Snapshot, title string) {
	dst.Clear()

	needW, needH := BoardSize(snap.GridW, snap.GridH)
	if dst.Width() < needW || dst.Height() < needH {
		y := dst.Height() / 2
		dst.DrawTextCentered(y, "Terminal too small")
		dst.DrawTextCentered(y+1, fmt.Sprintf("need %dx%d, have %dx%d", needW, needH, dst.Width(), dst.Height()))
		return
	}

	box := core.NewRect((dst.Width()-needW)/2, (dst.Height()-needH)/2+hudRows, needW, needH-hudRows)
	drawHUD(dst, snap, title, box)

	border := core.ColorGray
	if snap.WallPass {
		border = core.ColorMagenta
	}
	dst.DrawBox(box, border)

	toScreen := func(c core.Cell) (int, int) {
		return box.X + 1 + c.X*cellW, box.Y + 1 + c.Y
	}

	if snap.Food.Present {
		st := foodStyles[snap.Food.Kind]
		x, y := toScreen(snap.Food.Cell)
		dst.SetColor(x, y, st.glyph, st.color)
	}

	bodyColor := core.ColorGreen
	if snap.WallPass {
		bodyColor = core.ColorMagenta
	}
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		x, y := toScreen(snap.Snake[i])
		if i == 0 {
			dst.SetColor(x, y, '@', core.ColorBrightGreen)
			continue
		}
		dst.SetColor(x, y, 'o', bodyColor)
	}

	if snap.Crash != nil && snap.Reason != snake.ReasonFilled {
		c := *snap.Crash
		if c.X >= 0 && c.X < snap.GridW && c.Y >= 0 && c.Y < snap.GridH {
			x, y := toScreen(c)
			dst.SetColor(x, y, 'X', core.ColorRed)
		}
	}

	drawOverlay(dst, snap, box)
}

func drawHUD(dst *core.Screen, snap snake.Snapshot, title string, box core.Rect) {
	y := box.Y - 1
	dst.DrawTextColor(box.X, y, title, core.ColorBrightYellow)

	right := fmt.Sprintf("score %d  best %d", snap.Score, snap.Best)
	dst.DrawText(box.Right()-len(right), y, right)

	var tags []string
	if snap.Effect.Active {
		tags = append(tags, fmt.Sprintf("%s %s", foodStyles[snap.Effect.Kind].label, seconds(snap.Effect.Remaining)))
	}
	if snap.Food.Present && snap.Food.Remaining > 0 {
		tags = append(tags, fmt.Sprintf("%s %s", foodStyles[snap.Food.Kind].label, seconds(snap.Food.Remaining)))
	}
	if len(tags) > 0 {
		mid := strings.Join(tags, " | ")
		x := box.X + len([]rune(title)) + 2
		if x+len(mid) < box.Right()-len(right)-1 {
			dst.DrawTextColor(x, y, mid, core.ColorCyan)
		}
	}
}

func drawOverlay(dst *core.Screen, snap snake.Snapshot, box core.Rect) {
	var lines []string
	color := core.ColorWhite

	switch snap.State {
	case snake.StateIdle:
		lines = []string{"Enter or an arrow key to start"}
	case snake.StatePaused:
		lines = []string{"PAUSED", "space to resume"}
		color = core.ColorYellow
	case snake.StateOver:
		headline := "GAME OVER"
		switch snap.Reason {
		case snake.ReasonWall:
			headline = "GAME OVER - hit the wall"
		case snake.ReasonSelf:
			headline = "GAME OVER - bit yourself"
		case snake.ReasonFilled:
			headline = "BOARD FILLED - you win"
		}
		lines = []string{headline, fmt.Sprintf("score %d  length %d", snap.Score, snap.Length()), "r to restart"}
		color = core.ColorRed
		if snap.Reason == snake.ReasonFilled {
			color = core.ColorBrightGreen
		}
	default:
		return
	}

	top := box.Y + box.H/2 - len(lines)/2
	for i, line := range lines {
		n := len([]rune(line))
		if n > box.W-2 {
			continue
		}
		x := box.X + (box.W-n)/2
		dst.DrawTextColor(x, top+i, line, color)
	}
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}
