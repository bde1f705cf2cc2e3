package demo

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/controlmap"
)

// row is one control's line in the state table.
type row struct {
	Control string
	State   controlmap.State
	Frames  int
	Inputs  []string
}

// buildRows flattens the handler into display rows sorted by control name.
// Controls that are still down after losing their last binding have no
// entry in the table but remain live in the store, so the union of bound
// and down controls is shown.
func buildRows(h controlmap.Handler[string, string]) []row {
	controls := h.Controls()
	for _, control := range h.DownControls() {
		if !slices.Contains(controls, control) {
			controls = append(controls, control)
		}
	}
	slices.Sort(controls)

	rows := make([]row, 0, len(controls))
	for _, control := range controls {
		inputs := h.InputsFor(control)
		slices.Sort(inputs)
		rows = append(rows, row{
			Control: control,
			State:   h.StateOf(control),
			Frames:  h.FramesHeld(control),
			Inputs:  inputs,
		})
	}
	return rows
}

const scriptLogLines = 8

var (
	styleTitle    = tcell.StyleDefault.Bold(true)
	styleHeader   = tcell.StyleDefault.Bold(true).Underline(true)
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleRecord   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	stylePlayback = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
)

func stateStyle(st controlmap.State) tcell.Style {
	switch st {
	case controlmap.StatePressed:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case controlmap.StateHeld:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case controlmap.StateReleased:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	default:
		return styleDim
	}
}

// drawText writes a string left to right, clipped at the screen edge.
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	w, _ := s.Size()
	for _, r := range text {
		if x >= w {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func (a *App) render() {
	s := a.screen
	s.Clear()
	_, h := s.Size()

	drawText(s, 1, 0, styleTitle, fmt.Sprintf("controlmap  adapter=%s  fps=%d  profile=%s",
		a.cfg.Adapter, a.cfg.FPS, a.profileName))
	a.renderPhase(1)

	y := a.renderTable(3)
	if a.engine != nil {
		a.renderScriptLog(y + 1)
	}

	if a.statusMsg != "" {
		drawText(s, 1, h-2, styleStatus, a.statusMsg)
	}
	drawText(s, 1, h-1, styleDim, a.footerHelp())

	s.Show()
}

func (a *App) renderPhase(y int) {
	switch a.phase {
	case phaseRecording:
		drawText(a.screen, 1, y, styleRecord, fmt.Sprintf("* recording  session=%s  frames=%d",
			a.recorder.SessionID(), a.recorder.FrameCount()))
	case phasePlayback:
		label := "> playback"
		if a.player.Done() {
			label = "> playback complete"
		}
		drawText(a.screen, 1, y, stylePlayback, fmt.Sprintf("%s  frame=%d/%d",
			label, a.player.Pos(), a.player.Len()))
	default:
		if a.watcher != nil {
			drawText(a.screen, 1, y, styleDim, "watching profile for changes")
		}
	}
}

// renderTable draws the control state table starting at y and returns the
// first free line below it.
func (a *App) renderTable(y int) int {
	rows := buildRows(a.handler)

	cw := len("control")
	for _, r := range rows {
		if len(r.Control) > cw {
			cw = len(r.Control)
		}
	}

	s := a.screen
	drawText(s, 1, y, styleHeader, fmt.Sprintf("%-*s  %-8s  %5s  %s",
		cw, "control", "state", "frame", "inputs"))
	y++

	if len(rows) == 0 {
		drawText(s, 1, y, styleDim, "(no bindings)")
		return y + 1
	}

	for _, r := range rows {
		drawText(s, 1, y, tcell.StyleDefault, fmt.Sprintf("%-*s", cw, r.Control))
		drawText(s, 1+cw+2, y, stateStyle(r.State), fmt.Sprintf("%-8s", r.State))
		drawText(s, 1+cw+12, y, tcell.StyleDefault, fmt.Sprintf("%5d", r.Frames))
		drawText(s, 1+cw+19, y, styleDim, strings.Join(r.Inputs, ", "))
		y++
	}
	return y
}

// renderScriptLog draws the tail of the script engine's log buffer.
func (a *App) renderScriptLog(y int) {
	lines := a.engine.Log()
	if len(lines) > scriptLogLines {
		lines = lines[len(lines)-scriptLogLines:]
	}

	drawText(a.screen, 1, y, styleHeader, "script log")
	y++
	if len(lines) == 0 {
		drawText(a.screen, 1, y, styleDim, "(empty)")
		return
	}
	for _, line := range lines {
		drawText(a.screen, 1, y, styleDim, line)
		y++
	}
}

func (a *App) footerHelp() string {
	switch a.phase {
	case phaseRecording:
		return "esc: stop recording and play back"
	default:
		return "esc: quit"
	}
}
