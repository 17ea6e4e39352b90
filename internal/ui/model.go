package ui

import (
	"net/url"
	"reflect"
	"time"

	"github.com/atomicstack/burrow/internal/data/dispatcher"
	"github.com/atomicstack/burrow/internal/dialog"
	"github.com/atomicstack/burrow/internal/gopher"
	"github.com/atomicstack/burrow/internal/menu"
	"github.com/atomicstack/burrow/internal/message"
	"github.com/atomicstack/burrow/internal/settings"
	"github.com/atomicstack/burrow/internal/state"
	"github.com/atomicstack/burrow/internal/theme"
	"github.com/atomicstack/burrow/internal/ui/command"
	uistate "github.com/atomicstack/burrow/internal/ui/state"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type level = uistate.Level

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

type inboundHandler func(message.Inbound) tea.Cmd

// Options configures a Model.
type Options struct {
	Width         int
	Height        int
	ShowFooter    bool
	Queue         *message.Queue
	Bus           *command.Bus
	DownloadDir   string
	BookmarksPath string
	Settings      settings.Settings
}

// Model implements the Bubble Tea model for the gopher browser. Every piece
// of UI state is owned here and only mutated from Update.
type Model struct {
	router     *uistate.Router
	registry   *menu.Registry
	history    state.HistoryStore
	bookmarks  state.BookmarkStore
	dispatcher *dispatcher.Dispatcher
	dialogs    dialog.Stack
	menubar    menubarState
	filtering  bool

	queue   *message.Queue
	pump    *Pump
	bus     *command.Bus
	pending []tea.Cmd

	status     string
	infoMsg    string
	infoExpire time.Time
	loading    bool
	spinning   bool
	spinner    spinner.Model
	help       help.Model
	keys       keyMap

	current     *url.URL
	currentKind gopher.Kind

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	downloadDir   string
	bookmarksPath string
	settings      settings.Settings

	steps    int
	quitting bool
	fatal    error

	handlers map[reflect.Type]msgHandler
	inbound  map[reflect.Type]inboundHandler
}

// NewModel initialises the UI with an empty listing and the static menus.
func NewModel(opts Options) *Model {
	registry := menu.BuildRegistry()
	history := state.NewHistoryStore()
	bookmarks := state.NewBookmarkStore()
	queue := opts.Queue
	if queue == nil {
		queue = message.NewQueue(message.DefaultQueueSize)
	}
	m := &Model{
		router:        uistate.NewRouter(opts.Width, bodyHeight(opts.Height, opts.ShowFooter)),
		registry:      registry,
		history:       history,
		bookmarks:     bookmarks,
		dispatcher:    dispatcher.New(registry, history, bookmarks),
		menubar:       menubarState{menu: -1},
		queue:         queue,
		bus:           opts.Bus,
		keys:          defaultKeyMap(),
		help:          help.New(),
		showFooter:    opts.ShowFooter,
		downloadDir:   opts.DownloadDir,
		bookmarksPath: opts.BookmarksPath,
		settings:      opts.Settings,
	}
	sp := spinner.New(spinner.WithSpinner(spinner.Line))
	if styles.Loading != nil {
		sp.Style = *styles.Loading
	}
	m.spinner = sp
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.pump = NewPump(queue, m.applyInbound, m)
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return waitForInbound(m.queue)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if handled, cmd := m.handleActiveDialog(msg); handled {
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(spinner.TickMsg{}):   m.handleSpinnerTickMsg,
		reflect.TypeOf(inboundMsg{}):        m.handleInboundMsg,
		reflect.TypeOf(queueClosedMsg{}):    m.handleQueueClosedMsg,
	}
	m.inbound = map[reflect.Type]inboundHandler{
		reflect.TypeOf(message.ContentReady{}):          m.handleContentReady,
		reflect.TypeOf(message.FetchFailed{}):           m.handleFetchFailed,
		reflect.TypeOf(message.BinaryWritten{}):         m.handleBinaryWritten,
		reflect.TypeOf(message.PageSaved{}):             m.handlePageSaved,
		reflect.TypeOf(message.BookmarkAdded{}):         m.handleRegistryMsg,
		reflect.TypeOf(message.BookmarksReloaded{}):     m.handleRegistryMsg,
		reflect.TypeOf(message.HistoryAdded{}):          m.handleRegistryMsg,
		reflect.TypeOf(message.HistoryCleared{}):        m.handleRegistryMsg,
		reflect.TypeOf(message.OpenURL{}):               m.handleOpenURL,
		reflect.TypeOf(message.OpenTyped{}):             m.handleOpenTyped,
		reflect.TypeOf(message.OpenQuery{}):             m.handleOpenQuery,
		reflect.TypeOf(message.ShowURLDialog{}):         m.handleShowURLDialog,
		reflect.TypeOf(message.ShowQueryDialog{}):       m.handleShowQueryDialog,
		reflect.TypeOf(message.ShowSaveAsDialog{}):      m.handleShowSaveAsDialog,
		reflect.TypeOf(message.ShowAddBookmarkDialog{}): m.handleShowAddBookmarkDialog,
		reflect.TypeOf(message.Status{}):                m.handleStatus,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	cmds = append(cmds, m.takePending()...)
	if m.loading && !m.spinning {
		m.spinning = true
		cmds = append(cmds, m.spinner.Tick)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// later queues a command produced while draining the inbound queue so the
// current Update can hand it to Bubble Tea.
func (m *Model) later(cmd tea.Cmd) {
	if cmd != nil {
		m.pending = append(m.pending, cmd)
	}
}

func (m *Model) takePending() []tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	cmds := m.pending
	m.pending = nil
	return cmds
}

// Running reports whether the UI loop is still active.
func (m *Model) Running() bool {
	return !m.quitting
}

// Step performs the per-frame housekeeping that follows a drained queue.
func (m *Model) Step() {
	m.steps++
	m.clearInfo()
	if m.router.Active() == uistate.PaneListing {
		m.syncViewport(m.router.Listing)
	}
}

// Fatal returns the error that forced the UI to stop, if any.
func (m *Model) Fatal() error {
	return m.fatal
}

// Status returns the text currently shown in the status bar.
func (m *Model) Status() string {
	return m.status
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	return tea.Quit
}
