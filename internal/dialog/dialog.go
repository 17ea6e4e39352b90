// Package dialog implements the modal input forms layered over the main
// view. Each form consumes Bubble Tea messages and reports through Update
// whether it finished (done) or was dismissed (cancel); the caller reads the
// submitted values afterwards.
package dialog

import tea "github.com/charmbracelet/bubbletea"

// Kind identifies a dialog type. At most one dialog of each kind is open.
type Kind string

const (
	KindURL      Kind = "url"
	KindQuery    Kind = "query"
	KindSaveAs   Kind = "save-as"
	KindBookmark Kind = "bookmark"
	KindConfirm  Kind = "confirm"
	KindNotice   Kind = "notice"
)

// Form is a modal dialog.
type Form interface {
	Kind() Kind
	Title() string
	Body() string
	Help() string
	Error() string
	// Update returns a follow-up command, whether the form was submitted and
	// whether it was dismissed.
	Update(msg tea.Msg) (tea.Cmd, bool, bool)
}

// Stack holds the open dialogs, topmost last.
type Stack struct {
	forms []Form
}

// Open shows f. An open dialog of the same kind is replaced in place and
// keeps its position, so a replacement under another dialog only receives
// input once the dialogs above it close. Otherwise f is layered on top.
func (s *Stack) Open(f Form) (replaced bool) {
	for i, existing := range s.forms {
		if existing.Kind() == f.Kind() {
			s.forms[i] = f
			return true
		}
	}
	s.forms = append(s.forms, f)
	return false
}

// Top returns the dialog receiving input, or nil.
func (s *Stack) Top() Form {
	if len(s.forms) == 0 {
		return nil
	}
	return s.forms[len(s.forms)-1]
}

// Close removes f from the stack wherever it sits.
func (s *Stack) Close(f Form) {
	for i, existing := range s.forms {
		if existing == f {
			s.forms = append(s.forms[:i], s.forms[i+1:]...)
			return
		}
	}
}

// Find returns the open dialog of kind k.
func (s *Stack) Find(k Kind) Form {
	for _, f := range s.forms {
		if f.Kind() == k {
			return f
		}
	}
	return nil
}

// Len returns the number of open dialogs.
func (s *Stack) Len() int {
	return len(s.forms)
}

// Forms returns the open dialogs, bottom first.
func (s *Stack) Forms() []Form {
	return append([]Form(nil), s.forms...)
}
