package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hashicorp/go-hclog"

	"freshmarket/internal/disclosure"
	"freshmarket/internal/market"
	"freshmarket/internal/telemetry"
)

// Deps are the services the UI is built from.
type Deps struct {
	Localizer Localizer
	Catalog   *market.Catalog
	Mode      disclosure.Mode
	Recorder  *telemetry.Recorder // nil disables tracing
	Logger    hclog.Logger        // nil discards
}

// AppModel is the root model. It owns global keys and help, forwards
// everything else to the market screen, and records interactions.
type AppModel struct {
	Market *MarketView
	Keys   *KeybindRegistry

	help     help.Model
	loc      Localizer
	recorder *telemetry.Recorder
	logger   hclog.Logger
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model.
func NewAppModel(deps Deps) *AppModel {
	logger := deps.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "help.quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "help.quit")
	reg.BindWithDesc("?", func() tea.Msg { return ToggleHelpMsg{} }, "help.help")

	h := help.New()
	h.Styles.ShortKey = Styles.Focused
	h.Styles.FullKey = Styles.Focused

	return &AppModel{
		Market:   NewMarketView(deps.Localizer, deps.Catalog, deps.Mode),
		Keys:     reg,
		help:     h,
		loc:      deps.Localizer,
		recorder: deps.Recorder,
		logger:   logger.Named("ui"),
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Market.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case InteractionMsg:
		a.recordInteraction(msg)
		return a, nil
	case ToggleHelpMsg:
		a.help.ShowAll = !a.help.ShowAll
		return a, nil
	case tea.WindowSizeMsg:
		a.help.Width = msg.Width
		return a, nil
	case tea.KeyMsg:
		if cmd := a.Keys.Lookup(msg.String()); cmd != nil {
			return a, cmd
		}
	}

	_, cmd := a.Market.Update(msg)
	return a, cmd
}

func (a *appModelAdapter) recordInteraction(msg InteractionMsg) {
	args := make([]any, 0, 2+2*len(msg.Attrs))
	args = append(args, "language", a.loc.Language())
	for k, v := range msg.Attrs {
		args = append(args, k, v)
	}
	a.logger.Debug(msg.Name, args...)
	a.recorder.Interaction(context.Background(), msg.Name, msg.Attrs)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	return a.Market.View() + "\n\n" + a.help.View(NewKeyMap(a.Keys, a.loc))
}
