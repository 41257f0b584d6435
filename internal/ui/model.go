package ui

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cardstack/internal/deck"
	"cardstack/internal/domain"
	"cardstack/internal/eventbus"
	"cardstack/internal/source"
	"cardstack/internal/ui/views"
)

// chrome is the number of rows around the deck viewport: title, indicator,
// status and input/help lines
const chrome = 5

// Model represents the UI state
type Model struct {
	bus     eventbus.EventBus
	machine *deck.Machine
	src     source.PageSource

	renderer *views.Renderer
	styles   *views.Styles
	keys     keyMap
	help     help.Model
	helpOps  *HelpOps

	jumpInput textinput.Model
	jumping   bool

	width  int
	height int

	// Active mouse gesture
	dragging   bool
	dragStartY int
	dragMoved  bool

	status string

	// OnTap is invoked when the front card is clicked without dragging
	OnTap func(domain.PageID)

	program *tea.Program
}

// NewModel creates a new UI model around an initialized deck machine
func NewModel(bus eventbus.EventBus, machine *deck.Machine, src source.PageSource, style deck.Style) *Model {
	ti := textinput.New()
	ti.Prompt = "jump to page: "
	ti.CharLimit = 4
	ti.Width = 8

	return &Model{
		bus:       bus,
		machine:   machine,
		src:       src,
		renderer:  views.NewRenderer(style),
		styles:    views.NewStyles(),
		keys:      defaultKeyMap(),
		help:      help.New(),
		helpOps:   NewHelpOps(nil),
		jumpInput: ti,
	}
}

// SetProgram wires the running Bubble Tea program in, needed for terminal
// handover to the help pager
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps.SetProgram(p)
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case FrameTickMsg:
		if m.machine.OnFrame(frameInterval.Seconds()) {
			return m, frameTick()
		}
		return m, nil

	case SettleTimerMsg:
		m.machine.OnSettleTimer(msg.Gen)
		return m, nil

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("help pager error: %v", msg.err)
			m.status = "help pager failed, see log"
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes key input
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.jumping {
		return m.handleJumpKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.publish(domain.ConfigChangedEvent{SelectedPage: m.machine.Selection()})
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		return m, m.transitionCmds(m.machine.GoToIndex(m.machine.Window().SelectedIndex + 1))

	case key.Matches(msg, m.keys.Prev):
		return m, m.transitionCmds(m.machine.GoToIndex(m.machine.Window().SelectedIndex - 1))

	case key.Matches(msg, m.keys.First):
		return m, m.selectCollectionPos(0)

	case key.Matches(msg, m.keys.Last):
		return m, m.selectCollectionPos(m.src.Len() - 1)

	case key.Matches(msg, m.keys.Jump):
		m.jumping = true
		m.jumpInput.SetValue("")
		return m, m.jumpInput.Focus()

	case key.Matches(msg, m.keys.Help):
		return m, m.showHelp()
	}

	return m, nil
}

// handleJumpKey processes key input while the jump prompt is open
func (m *Model) handleJumpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.jumping = false
		m.jumpInput.Blur()
		return m, nil
	case "enter":
		m.jumping = false
		m.jumpInput.Blur()
		n, err := strconv.Atoi(strings.TrimSpace(m.jumpInput.Value()))
		if err != nil {
			m.status = "not a page number"
			return m, nil
		}
		return m, m.selectCollectionPos(n - 1)
	}

	var cmd tea.Cmd
	m.jumpInput, cmd = m.jumpInput.Update(msg)
	return m, cmd
}

// handleMouse processes mouse input, including the drag gesture
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelDown:
			return m, m.transitionCmds(m.machine.GoToIndex(m.machine.Window().SelectedIndex + 1))
		case tea.MouseButtonWheelUp:
			return m, m.transitionCmds(m.machine.GoToIndex(m.machine.Window().SelectedIndex - 1))
		case tea.MouseButtonLeft:
			m.dragging = true
			m.dragMoved = false
			m.dragStartY = msg.Y
			m.machine.OnDragStart()
		}
		return m, nil

	case tea.MouseActionMotion:
		if !m.dragging {
			return m, nil
		}
		if msg.Y != m.dragStartY {
			m.dragMoved = true
		}
		m.machine.OnDragChanged(float64(msg.Y-m.dragStartY), float64(m.deckHeight()))
		return m, nil

	case tea.MouseActionRelease:
		if !m.dragging {
			return m, nil
		}
		m.dragging = false
		if !m.dragMoved {
			// A press and release in place is a tap on the front card
			m.machine.OnDragEnded()
			if page, ok := m.machine.Window().Selected(); ok {
				m.publish(domain.PageTappedEvent{Page: page.Value})
				if m.OnTap != nil {
					m.OnTap(page.Value)
				}
			}
			return m, nil
		}

		committed, _ := m.machine.OnDragEnded()
		cmds := []tea.Cmd{frameTick()}
		if committed {
			cmds = append(cmds, settleTimer(m.machine.SettleGen()))
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

// handleEvent reacts to domain events forwarded from the bus
func (m *Model) handleEvent(event interface{}) {
	switch e := event.(type) {
	case domain.SelectionChangedEvent:
		m.status = fmt.Sprintf("selected %s", e.Current)
	case domain.WindowRebuiltEvent:
		m.status = ""
	case domain.TransitionCancelledEvent:
		if e.Progress != 0 {
			m.status = "snapped back"
		}
	}
}

// selectCollectionPos changes the selection to a collection position,
// clamped into the collection's bounds
func (m *Model) selectCollectionPos(pos int) tea.Cmd {
	if m.src.Len() == 0 {
		return nil
	}
	if pos < 0 {
		pos = 0
	}
	if pos >= m.src.Len() {
		pos = m.src.Len() - 1
	}
	v, ok := m.src.At(pos)
	if !ok {
		return nil
	}
	return m.transitionCmds(m.machine.OnExternalSelectionChanged(v))
}

// transitionCmds schedules the animation frames and the deferred rebuild
// for an animated transition; a jump cut needs neither
func (m *Model) transitionCmds(animated bool) tea.Cmd {
	if !animated {
		return nil
	}
	return tea.Batch(frameTick(), settleTimer(m.machine.SettleGen()))
}

// showHelp hands the terminal to the ov pager
func (m *Model) showHelp() tea.Cmd {
	content := NewHelpRenderer().RenderHelpContent()
	return func() tea.Msg {
		return helpPagerMsg{err: m.helpOps.ShowHelpInPager(content)}
	}
}

func (m *Model) deckHeight() int {
	h := m.height - chrome
	if h < 3 {
		h = 3
	}
	return h
}

func (m *Model) publish(e domain.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}

// View implements tea.Model
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}

	win := m.machine.Window()

	title := m.styles.Title.Render("cardstack")
	deckView := m.renderer.RenderDeck(win, m.machine.EffectivePosition(), m.width, m.deckHeight())

	indicator := lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
		m.renderer.Indicator(win.Len(), win.SelectedIndex))

	status := m.statusLine()

	var bottom string
	if m.jumping {
		bottom = m.styles.JumpPrompt.Render(m.jumpInput.View())
	} else {
		bottom = m.help.View(m.keys)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, deckView, indicator, status, bottom)
}

func (m *Model) statusLine() string {
	pos := m.src.IndexOf(m.machine.Selection())
	line := fmt.Sprintf("page %d of %d", pos+1, m.src.Len())
	if m.status != "" {
		line += " · " + m.status
	}
	if m.machine.Phase() == deck.PhaseDragging {
		line += fmt.Sprintf(" · drag %.2f", m.machine.Progress())
	}
	return m.styles.Status.Render(line)
}
