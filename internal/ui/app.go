package ui

import (
	"context"

	"emergencycard/internal/option"
	"emergencycard/internal/record"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel is the root model. It hosts the card and owns the global keys.
type AppModel struct {
	Card *CardView
	Keys AppKeyMap
	Help help.Model
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Card.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.Help.Width = msg.Width
	case tea.KeyMsg:
		if key.Matches(msg, a.Keys.Quit) {
			a.Card.Unmount()
			return a, tea.Quit
		}
	}

	v, cmd := a.Card.Update(msg)
	if c, ok := v.(*CardView); ok {
		a.Card = c
	}
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	return a.Card.View() + "\n" + Styles.Hint.PaddingLeft(2).Render(a.Help.View(a.Keys))
}

// NewAppModel creates the root application model.
func NewAppModel(ctx context.Context, source option.Source, doctor record.Doctor, patient record.Patient) *AppModel {
	card := NewCardView(ctx, source, doctor, patient)
	return &AppModel{
		Card: card,
		Keys: card.Keys,
		Help: help.New(),
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
