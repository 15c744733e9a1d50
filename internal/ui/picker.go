package ui

import (
	"math"
	"strings"
	"sync/atomic"
	"time"

	"emergencycard/internal/anim"
	"emergencycard/internal/option"
	"emergencycard/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	// RowHeight is the pixel height of one option row in the reveal region.
	RowHeight = 44
	// MaxVisibleRows caps the reveal region; longer lists scroll inside it.
	MaxVisibleRows = 3
	// TransitionDuration is how long the reveal region takes to open or close.
	TransitionDuration = 200 * time.Millisecond
	// Placeholder is shown in the header until an option is selected.
	Placeholder = "Selecionar"

	defaultPickerWidth = 32
	maxPickerWidth     = 48
)

// ForceCloser is the capability a host holds to dismiss a Picker from outside.
type ForceCloser interface {
	// ForceClose collapses the picker if it is open and is a no-op otherwise.
	ForceClose() tea.Cmd
}

// HitRegion identifies the part of the picker under a pointer.
type HitRegion int

const (
	HitNone HitRegion = iota
	HitHeader
	HitRow
)

// Hit is the result of a hit test. Row is an index into the picker's options
// and is only meaningful for HitRow.
type Hit struct {
	Region HitRegion
	Row    int
}

// pickerFrameMsg advances a picker animation. Frames from an older generation
// are dropped, which is how a retarget supersedes an in-flight transition.
type pickerFrameMsg struct {
	id  int64
	gen int
}

var lastPickerID atomic.Int64

// Picker is a collapsible single-select dropdown.
//
// Preconditions: option IDs are unique and Label is non-empty. Neither is
// checked.
type Picker struct {
	Label    string
	OnSelect func(option.Option)
	Keys     PickerKeyMap

	id       int64
	options  []option.Option // nil until supplied
	selected *option.Option
	open     bool
	extent   anim.Transition
	gen      int
	cursor   int
	offset   int
	width    int
	now      func() time.Time
}

// Ensure Picker implements View and ForceCloser.
var (
	_ View        = (*Picker)(nil)
	_ ForceCloser = (*Picker)(nil)
)

// NewPicker creates a closed picker with no selection and no options.
func NewPicker(label string, onSelect func(option.Option)) *Picker {
	return &Picker{
		Label:    label,
		OnSelect: onSelect,
		Keys:     DefaultPickerKeyMap(),
		id:       lastPickerID.Add(1),
		width:    defaultPickerWidth,
		now:      time.Now,
	}
}

// SetOptions replaces the option list. The current selection is kept even if
// it is not part of the new list. An open picker keeps its current extent
// target; the new length applies on the next open.
func (p *Picker) SetOptions(options []option.Option) {
	p.options = options
	p.clampCursor()
}

// Options returns the current option list (nil when absent).
func (p *Picker) Options() []option.Option {
	return p.options
}

// SetWidth sets the width of the header and rows, capped at maxPickerWidth.
// Widths too narrow to draw the header are ignored.
func (p *Picker) SetWidth(w int) {
	if w > 4 {
		p.width = min(w, maxPickerWidth)
	}
}

// IsOpen reports the logical open state.
func (p *Picker) IsOpen() bool {
	return p.open
}

// Selected returns the selected option, if any.
func (p *Picker) Selected() (option.Option, bool) {
	if p.selected == nil {
		return option.Option{}, false
	}
	return *p.selected, true
}

// Extent returns the current animated height of the reveal region in pixels.
func (p *Picker) Extent() float64 {
	return p.extent.Value(p.now())
}

// TargetExtent returns the height the reveal region is moving toward.
func (p *Picker) TargetExtent() float64 {
	return p.extent.To
}

// Animating reports whether the reveal region is still in transition.
func (p *Picker) Animating() bool {
	return !p.extent.Done(p.now())
}

// OpenExtent returns the reveal height for n options: one row per option,
// capped at MaxVisibleRows.
func OpenExtent(n int) float64 {
	return float64(RowHeight * min(n, MaxVisibleRows))
}

// Toggle flips the open state and animates the reveal region toward the new
// target. Calling it again before the transition ends redirects the animation
// from its current position.
func (p *Picker) Toggle() tea.Cmd {
	if p.open {
		return p.close()
	}
	p.open = true
	p.cursor = p.selectedIndex()
	p.offset = 0
	p.clampCursor()
	return p.animateTo(OpenExtent(len(p.options)))
}

// Select records o as the selection, notifies OnSelect once and closes.
func (p *Picker) Select(o option.Option) tea.Cmd {
	p.selected = &o
	if p.OnSelect != nil {
		p.OnSelect(o)
	}
	return p.close()
}

// ForceClose implements ForceCloser.
func (p *Picker) ForceClose() tea.Cmd {
	if !p.open {
		return nil
	}
	return p.close()
}

func (p *Picker) close() tea.Cmd {
	p.open = false
	return p.animateTo(0)
}

func (p *Picker) animateTo(target float64) tea.Cmd {
	p.extent = p.extent.Retarget(target, p.now(), TransitionDuration)
	p.gen++
	return p.nextFrame()
}

func (p *Picker) nextFrame() tea.Cmd {
	id, gen := p.id, p.gen
	return tea.Tick(anim.FrameInterval, func(time.Time) tea.Msg {
		return pickerFrameMsg{id: id, gen: gen}
	})
}

// Init implements View.
func (p *Picker) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (p *Picker) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case pickerFrameMsg:
		if msg.id != p.id || msg.gen != p.gen {
			return p, nil
		}
		if p.extent.Done(p.now()) {
			p.extent = anim.Settled(p.extent.To)
			return p, nil
		}
		return p, p.nextFrame()
	case tea.KeyMsg:
		return p, p.handleKey(msg)
	}
	return p, nil
}

func (p *Picker) handleKey(msg tea.KeyMsg) tea.Cmd {
	if !p.open {
		if key.Matches(msg, p.Keys.Toggle, p.Keys.Select) {
			return p.Toggle()
		}
		return nil
	}
	switch {
	case key.Matches(msg, p.Keys.Select):
		if p.cursor < len(p.options) {
			return p.Select(p.options[p.cursor])
		}
		return p.Toggle()
	case key.Matches(msg, p.Keys.Toggle):
		return p.Toggle()
	case key.Matches(msg, p.Keys.Up):
		p.moveCursor(-1)
	case key.Matches(msg, p.Keys.Down):
		p.moveCursor(1)
	}
	return nil
}

// Press acts on a hit: the header toggles, a row selects its option. Rows
// still visible while the list animates closed are inert.
func (p *Picker) Press(h Hit) tea.Cmd {
	switch h.Region {
	case HitHeader:
		return p.Toggle()
	case HitRow:
		if p.open && h.Row >= 0 && h.Row < len(p.options) {
			return p.Select(p.options[h.Row])
		}
	}
	return nil
}

// Scroll moves the visible window of an open list by delta rows.
func (p *Picker) Scroll(delta int) {
	if !p.open {
		return
	}
	p.offset = max(0, min(p.offset+delta, len(p.options)-MaxVisibleRows))
	p.cursor = max(p.offset, min(p.cursor, p.offset+MaxVisibleRows-1))
	p.clampCursor()
}

func (p *Picker) moveCursor(delta int) {
	if len(p.options) == 0 {
		return
	}
	p.cursor = max(0, min(p.cursor+delta, len(p.options)-1))
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+MaxVisibleRows {
		p.offset = p.cursor - MaxVisibleRows + 1
	}
}

func (p *Picker) clampCursor() {
	if len(p.options) == 0 {
		p.cursor, p.offset = 0, 0
		return
	}
	p.cursor = max(0, min(p.cursor, len(p.options)-1))
	p.offset = max(0, min(p.offset, len(p.options)-1))
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+MaxVisibleRows {
		p.offset = p.cursor - MaxVisibleRows + 1
	}
}

func (p *Picker) selectedIndex() int {
	if p.selected == nil {
		return 0
	}
	for i, o := range p.options {
		if o.ID == p.selected.ID {
			return i
		}
	}
	return 0
}

// visibleRows is the number of row lines the current extent reveals.
// A partially revealed row is drawn.
func (p *Picker) visibleRows() int {
	n := int(math.Ceil(p.Extent()/RowHeight - 1e-9))
	return max(0, min(n, MaxVisibleRows, len(p.options)-p.offset))
}

func (p *Picker) caption() string {
	return PickerStyles.Caption.Render(p.Label)
}

func (p *Picker) header() string {
	text, textStyle := Placeholder, PickerStyles.Placeholder
	if p.selected != nil {
		text, textStyle = p.selected.Name, PickerStyles.Value
	}
	arrow := "▸"
	if p.open {
		arrow = "▾"
	}
	inner := p.width - PickerStyles.Header.GetHorizontalPadding()
	content := textStyle.Render(textutil.Truncate(text, inner-lipgloss.Width(arrow)-1))
	gap := max(1, inner-lipgloss.Width(content)-lipgloss.Width(arrow))
	return PickerStyles.Header.Width(p.width).Render(content + strings.Repeat(" ", gap) + PickerStyles.Arrow.Render(arrow))
}

func (p *Picker) rows() []string {
	n := p.visibleRows()
	out := make([]string, 0, n)
	rowWidth := lipgloss.Width(p.header())
	for i := p.offset; i < p.offset+n; i++ {
		style := PickerStyles.Option
		if i == p.cursor {
			style = PickerStyles.OptionCursor
		}
		name := textutil.Truncate(p.options[i].Name, rowWidth-style.GetHorizontalPadding())
		out = append(out, style.Width(rowWidth).Render(name))
	}
	return out
}

// View implements View: caption, header and the revealed rows.
func (p *Picker) View() string {
	parts := []string{p.caption(), p.header()}
	parts = append(parts, p.rows()...)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// HitTest maps a position relative to the top-left of View() to a region.
// The caption is not interactive.
func (p *Picker) HitTest(x, y int) Hit {
	header := p.header()
	if x < 0 || x >= lipgloss.Width(header) || y < 0 {
		return Hit{Region: HitNone}
	}
	top := lipgloss.Height(p.caption())
	headerHeight := lipgloss.Height(header)
	switch {
	case y < top:
		return Hit{Region: HitNone}
	case y < top+headerHeight:
		return Hit{Region: HitHeader}
	}
	row := y - top - headerHeight
	if row < p.visibleRows() {
		return Hit{Region: HitRow, Row: p.offset + row}
	}
	return Hit{Region: HitNone}
}
