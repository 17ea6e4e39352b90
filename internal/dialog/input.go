package dialog

import (
	"net/url"
	"strings"

	"github.com/atomicstack/burrow/internal/gopher"
	"github.com/atomicstack/burrow/internal/logging/events"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const inputWidth = 50

func newInput(placeholder, initial string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 1024
	ti.Width = inputWidth
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()
	if initial != "" {
		ti.SetValue(initial)
		ti.CursorEnd()
	}
	return ti
}

// URLForm asks for an address to open.
type URLForm struct {
	input textinput.Model
}

func NewURLForm(initial string) *URLForm {
	return &URLForm{input: newInput("gopher://", initial)}
}

func (f *URLForm) Kind() Kind    { return KindURL }
func (f *URLForm) Title() string { return "Enter gopher URL:" }
func (f *URLForm) Body() string  { return f.input.View() }
func (f *URLForm) Help() string  { return "Enter to open. Esc to cancel." }
func (f *URLForm) Error() string { return "" }
func (f *URLForm) Value() string { return strings.TrimSpace(f.input.Value()) }

func (f *URLForm) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc:
			events.Dialog.Cancel(string(KindURL), events.DialogReasonEscape)
			return nil, false, true
		case tea.KeyEnter:
			events.Dialog.Submit(string(KindURL), f.Value())
			return nil, true, false
		}
	}
	updated, cmd := f.input.Update(msg)
	f.input = updated
	return cmd, false, false
}

// QueryForm asks for a search term for an index server.
type QueryForm struct {
	input  textinput.Model
	title  string
	target *url.URL
	err    string
}

func NewQueryForm(title string, target *url.URL) *QueryForm {
	if title == "" {
		title = "Enter query:"
	}
	return &QueryForm{input: newInput("search term", ""), title: title, target: target}
}

func (f *QueryForm) Kind() Kind       { return KindQuery }
func (f *QueryForm) Title() string    { return f.title }
func (f *QueryForm) Body() string     { return f.input.View() }
func (f *QueryForm) Help() string     { return "Enter to search. Esc to cancel." }
func (f *QueryForm) Error() string    { return f.err }
func (f *QueryForm) Value() string    { return strings.TrimSpace(f.input.Value()) }
func (f *QueryForm) Target() *url.URL { return f.target }

func (f *QueryForm) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc:
			events.Dialog.Cancel(string(KindQuery), events.DialogReasonEscape)
			return nil, false, true
		case tea.KeyEnter:
			value := f.Value()
			if value == "" {
				f.err = "Search term required"
				return nil, false, false
			}
			f.err = ""
			events.Dialog.Submit(string(KindQuery), value)
			return nil, true, false
		}
	}
	updated, cmd := f.input.Update(msg)
	f.input = updated
	if f.Value() != "" {
		f.err = ""
	}
	return cmd, false, false
}

// SaveAsForm asks for the filename the current page is saved under.
type SaveAsForm struct {
	input  textinput.Model
	target *url.URL
}

func NewSaveAsForm(target *url.URL) *SaveAsForm {
	return &SaveAsForm{input: newInput("filename", gopher.SaveAsName(target)), target: target}
}

func (f *SaveAsForm) Kind() Kind       { return KindSaveAs }
func (f *SaveAsForm) Title() string    { return "Enter filename:" }
func (f *SaveAsForm) Body() string     { return f.input.View() }
func (f *SaveAsForm) Help() string     { return "Enter to save. Esc to cancel." }
func (f *SaveAsForm) Error() string    { return "" }
func (f *SaveAsForm) Value() string    { return strings.TrimSpace(f.input.Value()) }
func (f *SaveAsForm) Target() *url.URL { return f.target }

func (f *SaveAsForm) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+u":
			f.input.SetValue("")
			return nil, false, false
		}
		switch key.Type {
		case tea.KeyEsc:
			events.Dialog.Cancel(string(KindSaveAs), events.DialogReasonEscape)
			return nil, false, true
		case tea.KeyEnter:
			events.Dialog.Submit(string(KindSaveAs), f.Value())
			return nil, true, false
		}
	}
	updated, cmd := f.input.Update(msg)
	f.input = updated
	return cmd, false, false
}
