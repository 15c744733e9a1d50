package ui

import (
	"context"
	"strings"
	"testing"

	"emergencycard/internal/option"
	"emergencycard/internal/record"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ctxSource records the context it was fetched with.
type ctxSource struct {
	ctx    context.Context
	result option.Result
	calls  int
}

func (s *ctxSource) Fetch(ctx context.Context) option.Result {
	s.ctx = ctx
	s.calls++
	return s.result
}

func newTestCard(t *testing.T, src option.Source) (*CardView, *fakeClock) {
	t.Helper()
	c := NewCardView(context.Background(), src, record.DefaultDoctor(), record.DefaultPatient())
	clock := newFakeClock()
	c.picker.now = clock.Now
	t.Cleanup(c.Unmount)
	return c, clock
}

func loadOptions(c *CardView, options []option.Option) {
	c.Update(OptionsLoadedMsg{Result: option.Loaded(options)})
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

// headerPos and rowPos return screen coordinates inside the picker.
func headerPos(c *CardView) (int, int) {
	x, y := c.pickerOrigin()
	return x + 1, y + lipgloss.Height(c.picker.caption())
}

func rowPos(c *CardView, visibleRow int) (int, int) {
	x, y := headerPos(c)
	return x, y + lipgloss.Height(c.picker.header()) + visibleRow
}

func TestCardView_InitFetchesOnce(t *testing.T) {
	src := &ctxSource{result: option.Loaded(traumaBurn())}
	c, _ := newTestCard(t, src)

	require.NotNil(t, c.Init())
	assert.True(t, c.Loading())
	assert.Nil(t, c.Init(), "second Init does not refetch")

	msg := fetchOptionsCmd(c.ctx, src)()
	loaded, ok := msg.(OptionsLoadedMsg)
	require.True(t, ok)
	assert.Equal(t, traumaBurn(), loaded.Result.Options)

	c.Update(loaded)
	assert.False(t, c.Loading())
	assert.Equal(t, traumaBurn(), c.Picker().Options())
}

func TestCardView_InitWithoutSource(t *testing.T) {
	c, _ := newTestCard(t, nil)
	assert.Nil(t, c.Init())
	assert.False(t, c.Loading())
}

func TestCardView_FailedFetchLeavesOptionsAbsent(t *testing.T) {
	c, clock := newTestCard(t, option.StaticSource{Result: option.Empty()})
	c.Init()

	c.Update(OptionsLoadedMsg{Result: option.Empty()})
	assert.False(t, c.Loading())
	assert.Nil(t, c.Picker().Options())
	assert.NotContains(t, c.View(), "error")

	// Degrades to the empty-list behaviour.
	c.Update(keyMsg("space"))
	assert.True(t, c.Picker().IsOpen())
	settle(c.picker, clock)
	assert.Equal(t, 0.0, c.Picker().Extent())
}

func TestCardView_FailedFetchKeepsPriorOptions(t *testing.T) {
	c, _ := newTestCard(t, nil)
	loadOptions(c, traumaBurn())

	c.Update(OptionsLoadedMsg{Result: option.Empty()})
	assert.Equal(t, traumaBurn(), c.Picker().Options())
}

func TestCardView_ResultAfterUnmountDiscarded(t *testing.T) {
	src := &ctxSource{result: option.Loaded(traumaBurn())}
	c, _ := newTestCard(t, src)
	c.Init()

	c.Unmount()
	assert.False(t, c.Mounted())
	msg := fetchOptionsCmd(c.ctx, src)()
	require.Error(t, src.ctx.Err(), "unmount cancels the fetch context")

	_, cmd := c.Update(msg)
	assert.Nil(t, cmd)
	assert.Nil(t, c.Picker().Options())
}

func TestCardView_OutsidePressForceCloses(t *testing.T) {
	c, clock := newTestCard(t, nil)
	loadOptions(c, traumaBurn())

	c.Update(press(headerPos(c)))
	require.True(t, c.Picker().IsOpen())
	settle(c.picker, clock)

	_, cmd := c.Update(press(0, 0))
	assert.NotNil(t, cmd)
	assert.False(t, c.Picker().IsOpen())
	assert.Equal(t, 0.0, c.Picker().TargetExtent())
	assert.Nil(t, c.SelectedKindID)

	// Already closed: outside press is a no-op.
	_, cmd = c.Update(press(0, 0))
	assert.Nil(t, cmd)
	assert.False(t, c.Picker().IsOpen())
}

func TestCardView_CaptionPressDismisses(t *testing.T) {
	c, _ := newTestCard(t, nil)
	loadOptions(c, traumaBurn())
	c.Update(keyMsg("space"))
	require.True(t, c.Picker().IsOpen())

	x, y := c.pickerOrigin()
	c.Update(press(x+1, y))
	assert.False(t, c.Picker().IsOpen())
}

func TestCardView_HeaderPressToggles(t *testing.T) {
	c, _ := newTestCard(t, nil)
	loadOptions(c, traumaBurn())

	c.Update(press(headerPos(c)))
	assert.True(t, c.Picker().IsOpen())
	assert.Equal(t, 88.0, c.Picker().TargetExtent())

	c.Update(press(headerPos(c)))
	assert.False(t, c.Picker().IsOpen())
}

func TestCardView_RowPressSelectsAndRecords(t *testing.T) {
	c, clock := newTestCard(t, nil)
	loadOptions(c, traumaBurn())

	c.Update(press(headerPos(c)))
	settle(c.picker, clock)

	c.Update(press(rowPos(c, 1)))
	require.NotNil(t, c.SelectedKindID)
	assert.Equal(t, 2, *c.SelectedKindID)
	sel, ok := c.Picker().Selected()
	require.True(t, ok)
	assert.Equal(t, "Burn", sel.Name)
	assert.False(t, c.Picker().IsOpen())
}

func TestCardView_IgnoresReleaseAndMotion(t *testing.T) {
	c, _ := newTestCard(t, nil)
	loadOptions(c, traumaBurn())
	c.Update(keyMsg("space"))

	x, y := 0, 0
	c.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	c.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	assert.True(t, c.Picker().IsOpen())
}

func TestCardView_WheelScrollsOpenList(t *testing.T) {
	c, clock := newTestCard(t, nil)
	loadOptions(c, optionsOf(5))
	c.Update(keyMsg("space"))
	settle(c.picker, clock)

	c.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.Equal(t, 1, c.picker.offset)
	c.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	assert.Equal(t, 0, c.picker.offset)
}

func TestCardView_EscDismisses(t *testing.T) {
	c, _ := newTestCard(t, nil)
	loadOptions(c, traumaBurn())

	_, cmd := c.Update(keyMsg("esc"))
	assert.Nil(t, cmd, "esc on a closed picker does nothing")

	c.Update(keyMsg("enter"))
	require.True(t, c.Picker().IsOpen())
	c.Update(keyMsg("esc"))
	assert.False(t, c.Picker().IsOpen())
	assert.Nil(t, c.SelectedKindID)
}

func TestCardView_KeyboardSelection(t *testing.T) {
	c, _ := newTestCard(t, nil)
	loadOptions(c, traumaBurn())

	c.Update(keyMsg("enter"))
	c.Update(keyMsg("down"))
	c.Update(keyMsg("enter"))

	require.NotNil(t, c.SelectedKindID)
	assert.Equal(t, 2, *c.SelectedKindID)
}

func TestCardView_PickerOriginMatchesView(t *testing.T) {
	c, _ := newTestCard(t, nil)
	x, y := c.pickerOrigin()

	lines := strings.Split(c.View(), "\n")
	require.Greater(t, len(lines), y)
	line := lines[y]
	idx := strings.Index(line, PickerLabel)
	require.GreaterOrEqual(t, idx, 0, "caption on line %d: %q", y, line)
	// Caption is indented by one cell.
	assert.Equal(t, x+1, lipgloss.Width(line[:idx]))
}

func TestCardView_ViewRendersSummary(t *testing.T) {
	c, _ := newTestCard(t, nil)
	out := c.View()

	for _, want := range []string{
		"Traumatología",
		"Dr. José Pedro Sans",
		"Jorge Avendaño Pérez",
		"35 años",
		"Ficha médica: 77884",
		"Diagnóstico: Calcificación Talón",
		"Suspensiones: 2",
		PickerLabel,
		Placeholder,
	} {
		assert.Contains(t, out, want)
	}
}

func TestCardView_WindowSizeSetsPickerWidth(t *testing.T) {
	c, _ := newTestCard(t, nil)

	c.Update(tea.WindowSizeMsg{Width: 30, Height: 20})
	assert.Equal(t, 30-Styles.Card.GetHorizontalFrameSize(), c.picker.width)

	c.Update(tea.WindowSizeMsg{Width: 300, Height: 20})
	assert.Equal(t, maxPickerWidth, c.picker.width)
}

func TestCardView_SpinnerOnlyWhileLoading(t *testing.T) {
	c, _ := newTestCard(t, option.StaticSource{Result: option.Empty()})
	c.Init()
	assert.Contains(t, c.View(), c.spinner.View())

	c.Update(OptionsLoadedMsg{Result: option.Empty()})
	_, cmd := c.Update(c.spinner.Tick())
	assert.Nil(t, cmd, "spinner stops after loading")
}
