package ui

import (
	"fmt"
	"log"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"carousel/internal/carousel"
	"carousel/internal/config"
	"carousel/internal/eventbus"
	"carousel/internal/ui/commands"
	"carousel/internal/ui/handlers"
	"carousel/internal/ui/input"
	"carousel/internal/ui/input/keys"
	inputtypes "carousel/internal/ui/input/types"
	"carousel/internal/ui/parts"
	"carousel/internal/ui/state"
	"carousel/internal/ui/strip"
	"carousel/internal/ui/views"
)

const (
	statusTimeout = 3 * time.Second
	// wheelCells is how far one wheel notch scrolls the strip
	wheelCells = 3
)

// Model represents the UI state
type Model struct {
	bus       eventbus.EventBus
	config    *config.Config
	configSvc DeckLoader
	state     *state.AppState // centralized state

	help help.Model
	keys keys.KeyMap
	zone *zone.Manager

	// Carousel and its terminal host
	sched    *strip.Scheduler
	strip    *strip.Strip
	carousel *carousel.Carousel
	items    *parts.ItemList
	unsub    func()

	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
	eventHandler *handlers.EventHandler

	statusSeq int

	// Program reference for terminal management
	program *tea.Program
	helpOps *HelpOps
}

// DeckLoader re-reads the deck file on request
type DeckLoader interface {
	Load() (*config.Config, error)
	Path() string
}

var _ DeckLoader = (*config.DeckStore)(nil)

// NewModel creates a new UI model presenting cfg. configSvc is used for
// reloading and may be nil.
func NewModel(bus eventbus.EventBus, cfg *config.Config, configSvc DeckLoader, opts ...strip.Option) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	mode, err := cfg.Mode()
	if err != nil {
		log.Printf("Invalid carousel mode, using loop: %v", err)
		mode = carousel.Loop{}
	}
	deck := cfg.Deck()

	appState := state.NewAppState()
	appState.Deck = deck
	applySettings(appState, cfg)
	if configSvc != nil {
		appState.ConfigPath = configSvc.Path()
	}

	km := keys.DefaultKeyMap()
	z := zone.New()

	sched := strip.NewScheduler()
	s := strip.New(sched, append([]strip.Option{strip.WithDuration(cfg.Animation())}, opts...)...)
	s.SetCount(deck.Len())

	c := carousel.New(carousel.Options{
		ItemCount: deck.Len(),
		Mode:      mode,
		Threshold: cfg.Carousel.Threshold,
	}, carousel.Host{
		Observer: strip.NewObserver(sched),
		Timer:    sched,
	})

	m := &Model{
		bus:          bus,
		config:       cfg.Clone(),
		configSvc:    configSvc,
		state:        appState,
		help:         help.New(),
		keys:         km,
		zone:         z,
		sched:        sched,
		strip:        s,
		carousel:     c,
		renderer:     views.NewRenderer(z),
		helpRenderer: NewHelpRenderer(km),
		inputHandler: input.New(km),
		eventHandler: handlers.NewEventHandler(appState),
	}

	m.items = parts.NewItemList(c, s)
	m.items.Sync(deck.Len())
	m.cmdExecutor = commands.NewExecutor(appState, bus, c, s)
	m.unsub = c.Subscribe(m.publishChanges)

	return m
}

func applySettings(st *state.AppState, cfg *config.Config) {
	st.PadStart = cfg.Carousel.PadStart
	st.ShowDots = cfg.UI.ShowDots
	st.ShowHelpFooter = cfg.UI.ShowHelpFooter
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// SetClipboard replaces the clipboard writer used by the copy command
func (m *Model) SetClipboard(write func(text string) error) {
	m.cmdExecutor.SetClipboard(write)
}

// Carousel returns the carousel driven by the model
func (m *Model) Carousel() *carousel.Carousel { return m.carousel }

// Strip returns the scroll container hosting the slides
func (m *Model) Strip() *strip.Strip { return m.strip }

// State returns the application state
func (m *Model) State() *state.AppState { return m.state }

// Close releases the carousel and its observations
func (m *Model) Close() {
	if m.unsub != nil {
		m.unsub()
		m.unsub = nil
	}
	m.items.Dispose()
	m.carousel.Dispose()
	m.zone.Close()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	status := m.state.StatusMessage

	cmd := m.update(msg)
	cmds := []tea.Cmd{cmd, m.sched.Drain()}

	if m.state.StatusMessage != "" && m.state.StatusMessage != status {
		m.statusSeq++
		id := m.statusSeq
		cmds = append(cmds, tea.Tick(statusTimeout, func(time.Time) tea.Msg {
			return clearStatusMsg{id: id}
		}))
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case strip.TickMsg:
		m.sched.Handle(msg)
		return nil

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width
		m.strip.Resize(views.PageWidth(msg.Width))
		if !m.carousel.Mounted() {
			m.carousel.Mount(m.strip)
		}
		return nil

	case tea.KeyMsg:
		if m.state.InPagerMode {
			return nil
		}
		ctx := &input.ModelContext{Carousel: m.carousel}
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{cmd}
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}
		return tea.Batch(cmds...)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	default:
		return tea.Batch(m.inputHandler.Update(msg), m.handleNonKeyboardMsg(msg))
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.state.Width == 0 {
		return "Loading..."
	}
	if m.state.InPagerMode {
		return ""
	}

	vs := views.ViewState{
		Width:          m.state.Width,
		Height:         m.state.Height,
		Title:          m.state.Deck.Name,
		ConfigPath:     m.state.ConfigPath,
		Slides:         m.state.Deck.Slides,
		Snapshot:       m.carousel.Snapshot(),
		PadStart:       m.state.PadStart,
		ShowDots:       m.state.ShowDots,
		ShowHelpFooter: m.state.ShowHelpFooter,
		StatusMessage:  m.state.StatusMessage,
		StatusIsError:  m.state.StatusIsError,
		HelpView:       m.help.View(m.keys),
		Window:         m.strip.Window,
	}
	if ti := m.inputHandler.TextInput(); ti != nil {
		vs.InputPrompt = m.inputHandler.Prompt()
		vs.TextInput = ti.View()
	}

	return m.zone.Scan(m.renderer.Render(vs))
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	log.Printf("processAction: %T", action)
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		return m.cmdExecutor.ExecuteNavigate(a.Direction)

	case inputtypes.JumpAction:
		return m.cmdExecutor.ExecuteJump(a.Index)

	case inputtypes.ScrollByAction:
		return m.cmdExecutor.ExecuteNudge(a.Delta)

	case inputtypes.ToggleAutoAction:
		cmd := m.cmdExecutor.ExecuteToggleAuto()
		m.syncModeSetting()
		return cmd

	case inputtypes.CopySlideAction:
		return m.cmdExecutor.ExecuteCopySlide()

	case inputtypes.ReloadConfigAction:
		return m.reloadConfig()

	case inputtypes.ShowHelpPagerAction:
		if m.program == nil {
			m.state.SetStatus("Help pager unavailable", true)
			return nil
		}
		return m.fetchHelpPager(m.helpRenderer.RenderHelpContent(m.state.ConfigPath))

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeJump {
			return m.submitJump(a.Text)
		}

	case inputtypes.QuitAction:
		return tea.Quit

	case inputtypes.UpdateTextAction, inputtypes.CancelTextAction:
		// The view reads the text input directly
	}

	return nil
}

func (m *Model) submitJump(text string) tea.Cmd {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	n, err := strconv.Atoi(text)
	if err != nil || n < 1 {
		m.state.SetStatus(fmt.Sprintf("Invalid slide number %q", text), true)
		return nil
	}
	return m.cmdExecutor.ExecuteJump(n - 1)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.state.InPagerMode {
		return nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		m.strip.ScrollBy(-wheelCells)
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		m.strip.ScrollBy(wheelCells)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return nil
		}
		for _, c := range m.controls() {
			if z := m.zone.Get(c.ZoneID()); z != nil && z.InBounds(msg) {
				m.ActivateZone(c.ZoneID())
				break
			}
		}
	}
	return nil
}

func (m *Model) controls() []parts.Control {
	s := m.carousel.Snapshot()
	out := []parts.Control{parts.Prev{}, parts.Next{}}
	for _, j := range parts.Jumps(s) {
		out = append(out, j)
	}
	return out
}

// ActivateZone runs the control behind a click zone and reports whether it did anything
func (m *Model) ActivateZone(id string) bool {
	for _, c := range m.controls() {
		if c.ZoneID() == id {
			return c.Activate(m.carousel.Snapshot())
		}
	}
	return false
}

// publishChanges turns snapshot changes into domain events
func (m *Model) publishChanges(s carousel.Snapshot) {
	if m.bus == nil {
		m.state.LastIndex, m.state.LastEdge = s.CurrentIndex, s.Edge
		return
	}
	if s.CurrentIndex != m.state.LastIndex {
		m.bus.Publish(eventbus.IndexChangedEvent{From: m.state.LastIndex, To: s.CurrentIndex, Count: s.ItemCount})
		m.state.LastIndex = s.CurrentIndex
	}
	if s.Edge != m.state.LastEdge {
		m.bus.Publish(eventbus.EdgeChangedEvent{Edge: s.Edge.String()})
		m.state.LastEdge = s.Edge
	}
}

// reloadConfig returns a command that re-reads the deck file
func (m *Model) reloadConfig() tea.Cmd {
	if m.configSvc == nil {
		m.state.SetStatus("No deck file to reload", true)
		return nil
	}
	svc := m.configSvc
	return func() tea.Msg {
		cfg, err := svc.Load()
		return ConfigReloadedMsg{Config: cfg, Err: err}
	}
}

// syncModeSetting mirrors a mode changed from the keyboard into the
// presented config, matching what gets written to the deck file
func (m *Model) syncModeSetting() {
	if loop, ok := m.carousel.Snapshot().Mode.(carousel.Loop); ok {
		m.config.Carousel.Mode = "loop"
		m.config.Carousel.Auto = loop.Auto
	}
}

// applyConfig re-supplies the deck and settings to the carousel
func (m *Model) applyConfig(cfg *config.Config) {
	mode, err := cfg.Mode()
	if err != nil {
		m.state.SetStatus(fmt.Sprintf("Reload failed: %v", err), true)
		return
	}
	if reflect.DeepEqual(cfg, m.config) {
		// Our own write coming back through the watcher
		return
	}
	if cfg.Carousel.Threshold != m.config.Carousel.Threshold {
		log.Printf("Threshold change to %v applies after restart", cfg.Carousel.Threshold)
	}

	deck := cfg.Deck()
	count := deck.Len()

	// Drop surplus items before the count shrinks and add new ones after it grows
	m.items.Sync(min(count, m.strip.Count()))
	m.carousel.Configure(carousel.Options{ItemCount: count, Mode: mode})
	m.strip.SetDuration(cfg.Animation())
	m.strip.SetCount(count)
	m.items.Sync(count)

	m.config = cfg.Clone()
	m.state.Deck = deck
	applySettings(m.state, cfg)
	m.state.SetStatus(fmt.Sprintf("Reloaded %d slides", count), false)
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case EventMsg:
		return m.eventHandler.HandleEvent(msg.Event)

	case ConfigReloadedMsg:
		if msg.Err != nil {
			log.Printf("Reload failed: %v", msg.Err)
			m.state.SetStatus(fmt.Sprintf("Reload failed: %v", msg.Err), true)
			return nil
		}
		m.applyConfig(msg.Config)
		return nil

	case commands.SlideCopiedMsg:
		if msg.Err != nil {
			log.Printf("Copy failed: %v", msg.Err)
			m.state.SetStatus("Copy failed", true)
			return nil
		}
		m.state.SetStatus(fmt.Sprintf("Copied slide %d", msg.Index+1), false)
		if m.bus != nil {
			m.bus.Publish(eventbus.SlideCopiedEvent{Index: msg.Index, Title: msg.Title})
		}
		return nil

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
			m.state.SetStatus("Help pager failed", true)
		}
		return nil

	case pauseRenderingMsg:
		m.state.InPagerMode = true
		return nil

	case resumeRenderingMsg:
		m.state.InPagerMode = false
		return nil

	case clearStatusMsg:
		if msg.id == m.statusSeq {
			m.state.ClearStatus()
		}
		return nil
	}
	return nil
}
