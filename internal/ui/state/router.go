package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Pane identifies one of the two content panes.
type Pane int

const (
	PaneListing Pane = iota
	PaneText
)

func (p Pane) String() string {
	if p == PaneText {
		return "text"
	}
	return "listing"
}

// Router owns both content panes and tracks which one is on screen. Each pane
// keeps its content while the other is active.
type Router struct {
	active  Pane
	title   string
	Listing *Level
	Text    viewport.Model
}

// NewRouter returns a router showing an empty listing.
func NewRouter(width, height int) *Router {
	return &Router{
		Listing: NewLevel("", nil),
		Text:    viewport.New(width, height),
	}
}

// Active reports the pane currently on screen.
func (r *Router) Active() Pane {
	return r.active
}

// ActivateListing brings the listing pane forward.
func (r *Router) ActivateListing() {
	r.active = PaneListing
}

// ActivateText brings the text pane forward.
func (r *Router) ActivateText() {
	r.active = PaneText
}

// Toggle flips between the panes.
func (r *Router) Toggle() Pane {
	if r.active == PaneText {
		r.active = PaneListing
	} else {
		r.active = PaneText
	}
	return r.active
}

// SetTitle sets the header shown above the active pane.
func (r *Router) SetTitle(title string) {
	r.title = title
}

// Title returns the current header.
func (r *Router) Title() string {
	return r.title
}

// ShowListing replaces the listing pane's rows.
func (r *Router) ShowListing(title string, items []Item) {
	r.Listing.Replace(title, items)
}

// ShowText replaces the text pane's content and scrolls to the top.
func (r *Router) ShowText(lines []string) {
	r.Text.SetContent(strings.Join(lines, "\n"))
	r.Text.GotoTop()
}

// Resize updates the text viewport dimensions.
func (r *Router) Resize(width, height int) {
	if width > 0 {
		r.Text.Width = width
	}
	if height > 0 {
		r.Text.Height = height
	}
}

// UpdateText forwards a message to the text viewport.
func (r *Router) UpdateText(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	r.Text, cmd = r.Text.Update(msg)
	return cmd
}
