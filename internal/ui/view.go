package ui

import (
	"strings"
	"time"

	"github.com/atomicstack/burrow/internal/dialog"
	"github.com/atomicstack/burrow/internal/menu"
	uistate "github.com/atomicstack/burrow/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	defaultHeight = 24
	chromeRows    = 3 // menubar, header, status
	itemIndicator = "▌"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// bodyHeight returns the rows left for the active pane.
func bodyHeight(height int, footer bool) int {
	if height <= 0 {
		height = defaultHeight
	}
	rows := height - chromeRows
	if footer {
		rows--
	}
	if rows < 1 {
		return 1
	}
	return rows
}

func (m *Model) listHeight() int {
	return bodyHeight(m.height, m.showFooter || m.filtering)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	rows := make([]string, 0, m.listHeight()+chromeRows+1)
	rows = append(rows, m.menubarLine())
	rows = append(rows, renderLines(applyWidth([]styledLine{{text: m.router.Title(), style: styles.Header}}, m.width)))
	rows = append(rows, m.bodyLines()...)
	rows = append(rows, m.statusLine())
	if bottom, ok := m.bottomLine(); ok {
		rows = append(rows, bottom)
	}
	return strings.Join(rows, "\n")
}

func (m *Model) bodyLines() []string {
	height := m.listHeight()
	var body []string
	if top := m.dialogs.Top(); top != nil {
		body = m.dialogLines(top, height)
	} else if m.router.Active() == uistate.PaneText {
		body = strings.Split(m.router.Text.View(), "\n")
	} else {
		body = m.listingLines(height)
	}
	if m.menubar.open() {
		body = overlay(body, m.dropdownLines(), m.dropdownOffset())
	}
	return padLines(body, height)
}

func (m *Model) listingLines(height int) []string {
	current := m.router.Listing
	lines := make([]styledLine, 0, height)
	if len(current.Items) == 0 {
		msg := "(no entries)"
		if current.Filter != "" {
			msg = "No matches for \"" + current.Filter + "\""
		}
		lines = append(lines, styledLine{text: msg, style: styles.Info})
		return strings.Split(renderLines(applyWidth(lines, m.width)), "\n")
	}
	m.syncViewport(current)
	start := current.ViewportOffset
	end := start + height
	if end > len(current.Items) {
		end = len(current.Items)
	}
	for idx := start; idx < end; idx++ {
		lines = append(lines, m.buildItemLine(current.Items[idx], idx, current))
	}
	return strings.Split(renderLines(applyWidth(lines, m.width)), "\n")
}

// buildItemLine renders one listing row. Inline entries and downloads get
// distinct styles so the user can tell what opens in place.
func (m *Model) buildItemLine(item uistate.Item, idx int, current *level) styledLine {
	lineStyle := styles.Plain
	switch {
	case item.Entry.Type.Download():
		lineStyle = styles.Download
	case item.Entry.Type.Inline():
		lineStyle = styles.Inline
	}
	indicatorStyle := styles.ItemIndicator
	if idx == current.Cursor {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	text := itemIndicator + " " + item.Label
	if m.width > 0 && idx == current.Cursor {
		if pad := m.width - lipgloss.Width(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          text,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

func (m *Model) dialogLines(f dialog.Form, height int) []string {
	parts := []string{render(styles.DialogTitle, f.Title()), "", f.Body()}
	if msg := f.Error(); msg != "" {
		parts = append(parts, render(styles.Error, msg))
	}
	parts = append(parts, "", render(styles.DialogHelp, f.Help()))
	box := strings.Join(parts, "\n")
	if styles.Dialog != nil {
		box = styles.Dialog.Render(box)
	}
	if m.width > 0 {
		box = lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, box)
	}
	return strings.Split(box, "\n")
}

func (m *Model) menubarLine() string {
	menus := m.registry.Menus()
	segments := make([]string, len(menus))
	for i, mnu := range menus {
		label := " " + mnu.Title + " "
		if m.menubar.menu == i {
			segments[i] = render(styles.MenubarActive, label)
		} else {
			segments[i] = render(styles.Menubar, label)
		}
	}
	line := strings.Join(segments, render(styles.Menubar, " "))
	if w := lipgloss.Width(line); m.width > w {
		line += render(styles.Menubar, strings.Repeat(" ", m.width-w))
	}
	return truncateRaw(line, m.width)
}

// dropdownOffset returns the column where the open menu's title starts.
func (m *Model) dropdownOffset() int {
	offset := 0
	for i, mnu := range m.registry.Menus() {
		if i == m.menubar.menu {
			return offset
		}
		offset += lipgloss.Width(" "+mnu.Title+" ") + 1
	}
	return offset
}

func (m *Model) dropdownLines() []string {
	current := m.activeMenu()
	if current == nil {
		return nil
	}
	items := current.Items()
	width := 0
	for _, item := range items {
		if w := lipgloss.Width(item.Label); w > width {
			width = w
		}
	}
	lines := make([]string, len(items))
	for i, item := range items {
		switch {
		case item.Kind == menu.KindSeparator:
			lines[i] = render(styles.MenuSeparator, strings.Repeat("─", width))
		case i == m.menubar.item:
			lines[i] = render(styles.MenuItemSelected, padRight(item.Label, width))
		default:
			lines[i] = render(styles.MenuItem, padRight(item.Label, width))
		}
	}
	box := strings.Join(lines, "\n")
	if styles.MenuBox != nil {
		box = styles.MenuBox.Render(box)
	}
	return strings.Split(box, "\n")
}

func (m *Model) statusLine() string {
	text := m.status
	if m.loading {
		text = m.spinner.View() + " " + text
	}
	line := truncateRaw(text, m.width)
	if w := lipgloss.Width(line); m.width > w {
		line += strings.Repeat(" ", m.width-w)
	}
	return render(styles.Status, line)
}

// bottomLine shows the filter prompt while filtering, a transient info
// message, or the key help.
func (m *Model) bottomLine() (string, bool) {
	if m.filtering {
		return truncateRaw(m.filterPrompt(), m.width), true
	}
	if !m.showFooter {
		return "", false
	}
	if info := m.currentInfo(); info != "" {
		return renderLines(applyWidth([]styledLine{{text: info, style: styles.Info}}, m.width)), true
	}
	m.help.Width = m.width
	return m.help.ShortHelpView(m.keys.ShortHelp()), true
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.router.Resize(m.width, m.listHeight())
	m.syncViewport(m.router.Listing)
	return nil
}

func (m *Model) handleSpinnerTickMsg(msg tea.Msg) tea.Cmd {
	if !m.loading {
		m.spinning = false
		return nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return cmd
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) clearInfo() {
	if m.infoMsg == "" {
		return
	}
	if !m.infoExpire.IsZero() && time.Now().Before(m.infoExpire) {
		return
	}
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

// overlay draws top over base starting at column offset. Covered base rows
// are replaced from the offset onwards.
func overlay(base, top []string, offset int) []string {
	out := append([]string(nil), base...)
	for len(out) < len(top) {
		out = append(out, "")
	}
	for i, line := range top {
		prefix := truncateRaw(out[i], offset)
		if w := lipgloss.Width(prefix); w < offset {
			prefix += strings.Repeat(" ", offset-w)
		}
		out[i] = prefix + line
	}
	return out
}

func padLines(lines []string, height int) []string {
	if len(lines) > height {
		return lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func padRight(text string, width int) string {
	if pad := width - lipgloss.Width(text); pad > 0 {
		return text + strings.Repeat(" ", pad)
	}
	return text
}

func render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

func truncateRaw(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}
	return truncate.String(text, uint(width))
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{
			text:          text,
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
			raw:           line.raw,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
