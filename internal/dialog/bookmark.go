package dialog

import (
	"net/url"
	"strings"

	"github.com/atomicstack/burrow/internal/logging/events"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// BookmarkForm collects a title and comma separated tags for an address.
type BookmarkForm struct {
	target *url.URL
	title  textinput.Model
	tags   textinput.Model
	focus  int
}

func NewBookmarkForm(target *url.URL) *BookmarkForm {
	f := &BookmarkForm{
		target: target,
		title:  newInput("title", ""),
		tags:   newInput("tag, tag", ""),
	}
	f.tags.Blur()
	return f
}

func (f *BookmarkForm) Kind() Kind       { return KindBookmark }
func (f *BookmarkForm) Title() string    { return "Add Bookmark" }
func (f *BookmarkForm) Help() string     { return "Tab to switch fields. Enter to save. Esc to cancel." }
func (f *BookmarkForm) Error() string    { return "" }
func (f *BookmarkForm) Target() *url.URL { return f.target }
func (f *BookmarkForm) Name() string     { return strings.TrimSpace(f.title.Value()) }
func (f *BookmarkForm) Tags() string     { return strings.TrimSpace(f.tags.Value()) }
func (f *BookmarkForm) Focus() int       { return f.focus }

func (f *BookmarkForm) Body() string {
	address := ""
	if f.target != nil {
		address = f.target.String()
	}
	lines := []string{
		"URL:",
		address,
		"",
		"Title:",
		f.title.View(),
		"Tags (comma separated):",
		f.tags.View(),
	}
	return strings.Join(lines, "\n")
}

func (f *BookmarkForm) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc:
			events.Dialog.Cancel(string(KindBookmark), events.DialogReasonEscape)
			return nil, false, true
		case tea.KeyEnter:
			events.Dialog.Submit(string(KindBookmark), f.Name())
			return nil, true, false
		case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
			return f.switchFocus(), false, false
		}
	}
	var cmd tea.Cmd
	if f.focus == 0 {
		f.title, cmd = f.title.Update(msg)
	} else {
		f.tags, cmd = f.tags.Update(msg)
	}
	return cmd, false, false
}

func (f *BookmarkForm) switchFocus() tea.Cmd {
	if f.focus == 0 {
		f.focus = 1
		f.title.Blur()
		return f.tags.Focus()
	}
	f.focus = 0
	f.tags.Blur()
	return f.title.Focus()
}
