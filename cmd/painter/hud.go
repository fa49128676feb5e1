package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/taigrr/painter/pkg/world"
)

var (
	hudBase   = lipgloss.NewStyle().Background(lipgloss.Color("0"))
	hudFPS    = hudBase.Foreground(lipgloss.Color("82"))
	hudTitle  = hudBase.Foreground(lipgloss.Color("255")).Bold(true)
	hudFaces  = hudBase.Foreground(lipgloss.Color("86")).Bold(true)
	hudHint   = hudBase.Foreground(lipgloss.Color("220")).Faint(true)
	hudStatus = hudBase.Foreground(lipgloss.Color("255"))
)

// HUD renders an overlay with frame statistics and controls.
type HUD struct {
	title     string
	fps       float64
	fpsFrames int
	fpsTime   time.Time
	stats     world.FrameStats
	Visible   bool
}

// NewHUD creates a new HUD.
func NewHUD(title string, visible bool) *HUD {
	return &HUD{
		title:   title,
		fpsTime: time.Now(),
		Visible: visible,
	}
}

// Update records a rendered frame (call once per frame).
func (h *HUD) Update(stats world.FrameStats) {
	h.stats = stats
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

// Top returns the styled top line for a terminal width.
func (h *HUD) Top(width int) string {
	left := hudFPS.Render(fmt.Sprintf(" %.0f FPS ", h.fps))
	mid := hudTitle.Render(" " + h.title + " ")
	right := hudFaces.Render(fmt.Sprintf(" %d/%d faces ", h.stats.Drawn, h.stats.Faces))
	return spread(width, left, mid, right)
}

// Bottom returns the styled bottom line for a terminal width.
func (h *HUD) Bottom(width int) string {
	status := hudStatus.Render(fmt.Sprintf(" culled %d  skipped %d  %s ",
		h.stats.Culled, h.stats.Skipped, h.stats.Elapsed.Round(time.Microsecond)))

	var keys []string
	for _, b := range world.KeyBindings() {
		keys = append(keys, b.Key)
	}
	hint := hudHint.Render(" " + strings.Join(keys, " ") + " ? ")
	return spread(width, status, "", hint)
}

// spread lays out left, mid and right parts across width cells.
func spread(width int, left, mid, right string) string {
	lw, mw, rw := lipgloss.Width(left), lipgloss.Width(mid), lipgloss.Width(right)
	gap := width - lw - mw - rw
	if gap < 0 {
		return left
	}
	pad1 := gap / 2
	pad2 := gap - pad1
	return left + strings.Repeat(" ", pad1) + mid + strings.Repeat(" ", pad2) + right
}

// Render draws the HUD overlay directly to the terminal.
func (h *HUD) Render(width, height int) {
	const clearLine = "\x1b[2K"
	moveTo := func(row, col int) string {
		return fmt.Sprintf("\x1b[%d;%dH", row, col)
	}

	// Always clear the HUD rows so toggling off works
	fmt.Print(moveTo(1, 1) + clearLine)
	fmt.Print(moveTo(height, 1) + clearLine)
	if !h.Visible {
		return
	}
	fmt.Print(moveTo(1, 1) + h.Top(width))
	fmt.Print(moveTo(height, 1) + h.Bottom(width))
}
