package ui

import (
	"context"
	"strings"

	"emergencycard/internal/logging"
	"emergencycard/internal/option"
	"emergencycard/internal/record"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PickerLabel is the caption of the emergency kind picker.
const PickerLabel = "Tipo de Urgencia"

// CardView is the host surface: the doctor/patient card with the emergency
// kind picker. It fetches the options once on mount, dismisses the picker on
// any press outside of it, and records the chosen kind.
type CardView struct {
	Doctor  record.Doctor
	Patient record.Patient
	Keys    AppKeyMap

	// SelectedKindID is the id of the last chosen option, nil until one is chosen.
	SelectedKindID *int

	picker  *Picker
	closer  ForceCloser
	source  option.Source
	spinner spinner.Model
	loading bool
	fetched bool
	mounted bool
	ctx     context.Context
	cancel  context.CancelFunc
}

// Ensure CardView implements View.
var _ View = (*CardView)(nil)

// NewCardView creates a mounted card. source may be nil, in which case the
// picker never receives options. Cancelling ctx or calling Unmount abandons
// an in-flight fetch.
func NewCardView(ctx context.Context, source option.Source, doctor record.Doctor, patient record.Patient) *CardView {
	ctx, cancel := context.WithCancel(logging.WithComponent(ctx, "card"))
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimary))

	c := &CardView{
		Doctor:  doctor,
		Patient: patient,
		Keys:    DefaultAppKeyMap(),
		source:  source,
		spinner: s,
		mounted: true,
		ctx:     ctx,
		cancel:  cancel,
	}
	c.picker = NewPicker(PickerLabel, c.recordSelection)
	c.picker.Keys = c.Keys.Picker
	c.closer = c.picker
	return c
}

// Picker returns the hosted picker.
func (c *CardView) Picker() *Picker {
	return c.picker
}

// Loading reports whether the option fetch is still pending.
func (c *CardView) Loading() bool {
	return c.loading
}

// Mounted reports whether the card still accepts fetch results.
func (c *CardView) Mounted() bool {
	return c.mounted
}

// Unmount tears the card down: a pending fetch is cancelled and its result,
// if it still arrives, is discarded.
func (c *CardView) Unmount() {
	c.mounted = false
	c.loading = false
	c.cancel()
}

func (c *CardView) recordSelection(o option.Option) {
	id := o.ID
	c.SelectedKindID = &id
	logging.FromContext(c.ctx).Info().Int("kind_id", o.ID).Str("kind", o.Name).Msg("emergency kind selected")
}

// Init implements View. The options are fetched only once per card.
func (c *CardView) Init() tea.Cmd {
	if c.fetched || c.source == nil || !c.mounted {
		return nil
	}
	c.fetched = true
	c.loading = true
	return tea.Batch(fetchOptionsCmd(c.ctx, c.source), c.spinner.Tick)
}

// fetchOptionsCmd runs the fetch off the event loop and delivers the single result.
func fetchOptionsCmd(ctx context.Context, src option.Source) tea.Cmd {
	return func() tea.Msg {
		return OptionsLoadedMsg{Result: src.Fetch(ctx)}
	}
}

// Update implements View.
func (c *CardView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case OptionsLoadedMsg:
		if !c.mounted {
			return c, nil
		}
		c.loading = false
		if msg.Result.OK {
			c.picker.SetOptions(msg.Result.Options)
		}
		return c, nil
	case spinner.TickMsg:
		if !c.loading {
			return c, nil
		}
		var cmd tea.Cmd
		c.spinner, cmd = c.spinner.Update(msg)
		return c, cmd
	case pickerFrameMsg:
		_, cmd := c.picker.Update(msg)
		return c, cmd
	case tea.KeyMsg:
		if key.Matches(msg, c.Keys.Dismiss) {
			return c, c.closer.ForceClose()
		}
		_, cmd := c.picker.Update(msg)
		return c, cmd
	case tea.MouseMsg:
		return c, c.handleMouse(msg)
	case tea.WindowSizeMsg:
		c.picker.SetWidth(msg.Width - Styles.Card.GetHorizontalFrameSize())
		return c, nil
	}
	return c, nil
}

func (c *CardView) handleMouse(msg tea.MouseMsg) tea.Cmd {
	x, y := c.pickerOrigin()
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		c.picker.Scroll(-1)
		return nil
	case tea.MouseButtonWheelDown:
		c.picker.Scroll(1)
		return nil
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return nil
		}
		hit := c.picker.HitTest(msg.X-x, msg.Y-y)
		if hit.Region == HitNone {
			return c.closer.ForceClose()
		}
		return c.picker.Press(hit)
	}
	return nil
}

// pickerOrigin is the screen position of the picker's top-left cell.
func (c *CardView) pickerOrigin() (x, y int) {
	frameTop := Styles.Card.GetMarginTop() + Styles.Card.GetBorderTopSize() + Styles.Card.GetPaddingTop()
	frameLeft := Styles.Card.GetMarginLeft() + Styles.Card.GetBorderLeftSize() + Styles.Card.GetPaddingLeft()
	above := lipgloss.JoinVertical(lipgloss.Left, c.sections()...)
	return frameLeft, frameTop + lipgloss.Height(above)
}

// sections renders everything above the picker.
func (c *CardView) sections() []string {
	band := Styles.Band.Render(lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left,
			Styles.Specialty.Render(c.Doctor.Specialty),
			Styles.Doctor.Render(c.Doctor.Name),
		),
		"   ",
		"🦴",
	))

	patient := lipgloss.JoinHorizontal(lipgloss.Top,
		"☺ ",
		Styles.Patient.Render(c.Patient.Name+"\n"+c.Patient.AgeLine()),
	)

	var infos strings.Builder
	for i, info := range c.Patient.Infos() {
		if i > 0 {
			infos.WriteString("\n")
		}
		infos.WriteString(Styles.InfoTitle.Render(info.Title) + " " + Styles.InfoValue.Render(info.Value))
	}

	icons := "♥ ✚"
	if c.loading {
		icons += "  " + c.spinner.View()
	}
	return []string{band, patient, infos.String(), Styles.Icons.Render(icons)}
}

// View implements View.
func (c *CardView) View() string {
	parts := append(c.sections(), c.picker.View())
	return Styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
