package demo

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/controlmap"
	"github.com/dshills/controlmap/internal/profile"
	"github.com/dshills/controlmap/internal/script"
	"github.com/dshills/controlmap/internal/watch"
	"github.com/dshills/controlmap/replay"
)

// eventBuffer sizes the channel between the terminal poll goroutine and
// the tick loop.
const eventBuffer = 100

type phase uint8

const (
	phaseLive phase = iota
	phaseRecording
	phasePlayback
)

// App is the demo host. It owns the terminal session, drives exactly one
// handler through the configured adapter, and renders the control state
// table every tick. All handler access happens on the tick loop goroutine.
type App struct {
	cfg         Config
	logger      *slog.Logger
	profileName string

	// handler is the interface view of whichever adapter is active;
	// exactly one of the three concrete fields is non-nil alongside it.
	handler controlmap.Handler[string, string]
	events  *controlmap.EventHandler[string, string]
	polling *controlmap.PollingHandler[string, string]
	query   *controlmap.QueryHandler[string, string]

	// table is the effective binding set, kept so a fresh handler can be
	// rebound for playback.
	table []controlmap.Binding[string, string]

	source   *KeySource
	engine   *script.Engine
	watcher  *watch.Watcher
	recorder *replay.Recorder[string]
	player   *replay.Player[string]

	screen    tcell.Screen
	phase     phase
	statusMsg string
	quit      bool
}

// New builds an App from the configuration. The terminal is not touched
// until Run.
func New(cfg Config, logger *slog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &App{
		cfg:    cfg,
		logger: logger,
		source: NewKeySource(cfg.Hold),
	}

	name, base, err := loadTable(cfg.Profile)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	a.profileName = name

	if cfg.Script != "" {
		engine := script.New()
		if err := engine.LoadFile(cfg.Script); err != nil {
			engine.Close()
			return nil, fmt.Errorf("loading script: %w", err)
		}
		a.engine = engine
	}

	a.buildHandler()
	a.applyTable(base)

	if cfg.Watch {
		w, err := watch.New(cfg.Profile)
		if err != nil {
			a.closeEngine()
			return nil, fmt.Errorf("watching profile: %w", err)
		}
		a.watcher = w
	}

	// Validate has already pinned recording to the event adapter, the only
	// shape whose edges a recorder can observe.
	if cfg.Record {
		a.recorder = replay.NewRecorder[string]()
	}

	return a, nil
}

// loadTable resolves the base binding table from a profile path, or the
// built-ins when the path is empty.
func loadTable(path string) (string, []controlmap.Binding[string, string], error) {
	if path == "" {
		return "built-in", DefaultBindings(), nil
	}
	prof, err := profile.LoadFile(path)
	if err != nil {
		return "", nil, err
	}
	name := prof.Name
	if name == "" {
		name = filepath.Base(path)
	}
	pairs := prof.Pairs()
	table := make([]controlmap.Binding[string, string], 0, len(pairs))
	for _, pair := range pairs {
		table = append(table, controlmap.Binding[string, string]{Input: pair.Input, Control: pair.Control})
	}
	return name, table, nil
}

// buildHandler constructs the adapter selected by the configuration. The
// query adapter probes the key source directly, so for it a tick's truth
// is whatever the source holds at Sample time.
func (a *App) buildHandler() {
	switch a.cfg.Adapter {
	case AdapterPolling:
		h := controlmap.NewPollingHandler[string, string]()
		a.polling = h
		a.handler = h
	case AdapterQuery:
		h := controlmap.NewQueryHandler[string, string](controlmap.QuerierFunc[string](
			func(name string) (bool, error) {
				return a.source.Down(name), nil
			}))
		a.query = h
		a.handler = h
	default:
		h := controlmap.NewEventHandler[string, string]()
		a.events = h
		a.handler = h
	}
}

// applyTable installs base plus any script-declared bindings as the
// handler's table. Script bindings win on conflict.
func (a *App) applyTable(base []controlmap.Binding[string, string]) {
	table := slices.Clone(base)
	if a.engine != nil {
		for _, b := range a.engine.Bindings() {
			table = append(table, controlmap.Binding[string, string]{Input: b.Input, Control: b.Control})
		}
	}
	a.table = table
	a.handler.Clear()
	a.handler.BindAll(table...)
}

func (a *App) closeEngine() {
	if a.engine != nil {
		_ = a.engine.Close()
	}
}

// Run enters the terminal session and blocks until the user quits. The
// terminal is restored on return, including on panic unwind.
func (a *App) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	a.screen = screen
	defer a.teardown()

	if a.recorder != nil {
		if err := a.recorder.Start(); err != nil {
			return err
		}
		a.phase = phaseRecording
	}

	// PollEvent returns nil once the screen is finalized, which ends the
	// pump and unblocks the loop below.
	events := make(chan tcell.Event, eventBuffer)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(a.cfg.TickInterval())
	defer ticker.Stop()

	a.render()
	for !a.quit {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			a.handleTerminalEvent(ev)
		case now := <-ticker.C:
			a.tick(now)
			a.render()
		case wev, ok := <-a.watchEvents():
			if ok {
				a.reloadProfile(wev.Path)
			}
		case werr, ok := <-a.watchErrors():
			if ok {
				a.statusMsg = fmt.Sprintf("watch error: %v", werr)
			}
		}
	}
	return nil
}

func (a *App) teardown() {
	a.screen.Fini()
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			a.logger.Warn("closing profile watcher", "error", err)
		}
	}
	a.closeEngine()
	if a.recorder != nil && a.recorder.IsRecording() {
		if _, err := a.recorder.Stop(); err == nil {
			a.logger.Info("discarded unfinished recording")
		}
	}
}

// watchEvents returns the watcher's event channel, or nil when no watcher
// is configured so the select case never fires.
func (a *App) watchEvents() <-chan watch.Event {
	if a.watcher == nil {
		return nil
	}
	return a.watcher.Events()
}

func (a *App) watchErrors() <-chan error {
	if a.watcher == nil {
		return nil
	}
	return a.watcher.Errors()
}

func (a *App) handleTerminalEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.handleKey(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
}

func (a *App) handleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		a.advancePhase()
		return
	}
	if a.phase == phasePlayback {
		return
	}
	name := KeyName(ev)
	if name == "" {
		return
	}
	fresh := a.source.Press(name, time.Now())
	if a.events != nil && fresh {
		a.events.HandleEvent(name, true)
		a.record(name, true)
	}
}

// advancePhase handles the escape key: recording hands off to playback,
// every other phase quits.
func (a *App) advancePhase() {
	if a.phase == phaseRecording {
		a.startPlayback()
		return
	}
	a.quit = true
}

// startPlayback seals the recording and replays it into a fresh event
// handler carrying the same binding table, so the reproduced states come
// from the captured edges alone.
func (a *App) startPlayback() {
	session, err := a.recorder.Stop()
	if err != nil {
		a.quit = true
		return
	}
	fresh := controlmap.NewEventHandler[string, string]()
	fresh.BindAll(a.table...)
	a.events = fresh
	a.handler = fresh
	a.player = replay.NewPlayer(session)
	a.source.Reset()
	a.phase = phasePlayback
	a.statusMsg = fmt.Sprintf("captured %d frames, %d events", session.Len(), session.EventCount())
}

// tick runs one reconciliation step for the active phase.
func (a *App) tick(now time.Time) {
	if a.phase == phasePlayback {
		if !a.player.Step(a.events) {
			// Exhausted. Keep reconciling so trailing transients age out;
			// controls the recording left down legitimately stay held.
			a.events.Advance()
		}
		a.fireHooks()
		return
	}

	expired := a.source.Expire(now)
	switch {
	case a.events != nil:
		for _, name := range expired {
			a.events.HandleEvent(name, false)
			a.record(name, false)
		}
	case a.polling != nil:
		a.polling.HandleSnapshot(a.source.Snapshot())
	case a.query != nil:
		if err := a.query.Sample(); err != nil {
			a.statusMsg = fmt.Sprintf("sample: %v", err)
		}
	}

	a.handler.Advance()
	if a.phase == phaseRecording {
		a.recorder.Tick()
	}
	a.fireHooks()
}

func (a *App) record(input string, down bool) {
	if a.recorder != nil {
		a.recorder.Record(input, down)
	}
}

// fireHooks dispatches script hooks from the reconciled states. Pressed
// and Released are one tick wide, so reading the state after Advance
// yields each edge exactly once; Held refires every tick.
func (a *App) fireHooks() {
	if a.engine == nil {
		return
	}
	controls := a.handler.Controls()
	slices.Sort(controls)
	for _, control := range controls {
		var hook script.Hook
		switch a.handler.StateOf(control) {
		case controlmap.StatePressed:
			hook = script.HookPressed
		case controlmap.StateHeld:
			hook = script.HookHeld
		case controlmap.StateReleased:
			hook = script.HookReleased
		default:
			continue
		}
		if err := a.engine.Fire(hook, control); err != nil {
			a.statusMsg = fmt.Sprintf("script: %v", err)
		}
	}
}

// reloadProfile swaps the binding table for the one on disk. State and
// emulated key tracking are cleared so held keys re-enter as fresh
// presses under the new table.
func (a *App) reloadProfile(path string) {
	name, base, err := loadTable(path)
	if err != nil {
		a.statusMsg = fmt.Sprintf("reload failed: %v", err)
		return
	}
	a.profileName = name
	a.applyTable(base)
	a.handler.Reset()
	a.source.Reset()
	a.statusMsg = fmt.Sprintf("reloaded profile %s (%d bindings)", name, a.handler.Len())
}
