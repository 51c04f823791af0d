package ui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"freshmarket/internal/disclosure"
	"freshmarket/internal/i18n"
	"freshmarket/internal/market"
	"freshmarket/internal/selection"
	"freshmarket/internal/ui/textutil"
)

// Focus targets on the market screen, in tab order.
const (
	FocusLanguage = "language"
	FocusSort     = "sort"
	FocusSections = "sections"
)

// Product row column widths.
const (
	productNameWidth = 20
	priceWidth       = 8
)

// Localizer is the translation service the market screen needs.
// *i18n.Resolver implements it.
type Localizer interface {
	Translator
	SetLanguage(code string) bool
	Language() string
	Tag() language.Tag
	Languages() []i18n.LanguageOption
}

// MarketView is the marketplace screen: a language select, a sort select and
// an accordion of product categories.
type MarketView struct {
	Language *SelectView[string]
	Sort     *SelectView[market.SortOrder]
	Sections *AccordionView
	Focus    *FocusManager

	loc     Localizer
	catalog *market.Catalog
	order   market.SortOrder
	pending []tea.Cmd
}

// Ensure MarketView implements View.
var _ View = (*MarketView)(nil)

// NewMarketView builds the screen. The first category starts open and the
// sections have focus.
func NewMarketView(loc Localizer, catalog *market.Catalog, mode disclosure.Mode) *MarketView {
	m := &MarketView{
		loc:     loc,
		catalog: catalog,
		order:   market.SortName,
	}

	langOpts := make([]selection.Option[string], 0)
	for _, l := range loc.Languages() {
		langOpts = append(langOpts, selection.Option[string]{Value: l.Code, Label: l.Label})
	}
	m.Language = NewSelectView(FocusLanguage, selection.NewMenu(langOpts,
		selection.WithValue(loc.Language()),
		selection.WithOnChange(m.setLanguage),
	))
	m.Sort = NewSelectView(FocusSort, selection.NewMenu(m.sortOptions(),
		selection.WithValue(m.order),
		selection.WithOnChange(m.setSort),
	))

	var initial []string
	if cats := catalog.Categories(); len(cats) > 0 {
		initial = append(initial, cats[0].ID)
	}
	m.Sections = NewAccordionView(disclosure.NewGroup(mode, initial...))

	m.Focus = &FocusManager{
		Order:    []string{FocusLanguage, FocusSort, FocusSections},
		OnChange: m.focusChanged,
	}
	m.Focus.SetFocus(FocusSections)
	m.pending = nil

	m.retranslate()
	return m
}

func (m *MarketView) sortOptions() []selection.Option[market.SortOrder] {
	orders := market.SortOrders()
	out := make([]selection.Option[market.SortOrder], len(orders))
	for i, o := range orders {
		out[i] = selection.Option[market.SortOrder]{Value: o, Label: m.loc.Translate(o.Key())}
	}
	return out
}

func (m *MarketView) setLanguage(code string) {
	// Unsupported codes leave the resolver unchanged; the screen is
	// retranslated either way so it always matches the active language.
	accepted := m.loc.SetLanguage(code)
	m.retranslate()
	m.pending = append(m.pending, interaction("language.set", map[string]string{
		"requested": code,
		"active":    m.loc.Language(),
		"accepted":  strconv.FormatBool(accepted),
	}))
}

func (m *MarketView) setSort(o market.SortOrder) {
	m.order = o
	m.rebuildPanels()
}

// retranslate refreshes every translated string on the screen.
func (m *MarketView) retranslate() {
	m.Language.Title = m.loc.Translate("select.language")
	m.Language.Placeholder = m.loc.Translate("select.placeholder")
	m.Sort.Title = m.loc.Translate("select.sort")
	m.Sort.Placeholder = m.loc.Translate("select.placeholder")
	m.Sort.Menu.SetOptions(m.sortOptions())
	m.rebuildPanels()
}

func (m *MarketView) rebuildPanels() {
	cats := m.catalog.Categories()
	panels := make([]Panel, 0, len(cats))
	for _, c := range cats {
		products := m.catalog.Products(market.Filter{CategoryID: c.ID, Sort: m.order})
		panels = append(panels, Panel{
			ID:    c.ID,
			Title: m.loc.Translate(c.Key),
			Meta:  m.loc.TranslateData("panel.count", map[string]any{"Count": len(products)}),
			Body:  m.renderProducts(products),
		})
	}
	m.Sections.SetPanels(panels)
}

func (m *MarketView) renderProducts(products []market.Product) string {
	if len(products) == 0 {
		return Styles.Empty.Render(m.loc.Translate("panel.empty"))
	}
	rows := make([]string, len(products))
	for i, p := range products {
		vendor := p.VendorID
		if v, ok := m.catalog.Vendor(p.VendorID); ok {
			vendor = v.Name
		}
		rows[i] = renderProductRow(
			p.Name,
			formatPrice(m.loc.Tag(), p.PriceCents),
			m.loc.TranslateData("product.per_unit", map[string]any{"Unit": m.loc.Translate("unit." + p.Unit)}),
			m.loc.TranslateData("product.vendor", map[string]any{"Vendor": vendor}),
			ProductBadges(p, m.loc),
		)
	}
	return strings.Join(rows, "\n")
}

// renderProductRow draws one product line from already-localized parts.
func renderProductRow(name, price, perUnit, vendor string, badges []Badge) string {
	return Styles.Normal.Render(textutil.Column(name, productNameWidth)) + " " +
		Styles.Price.Render(textutil.RightColumn(price, priceWidth)) + " " +
		Styles.Muted.Render(perUnit+" · "+vendor) + "  " +
		RenderBadges(badges)
}

// formatPrice renders cents as a localized dollar amount.
func formatPrice(tag language.Tag, cents int64) string {
	p := message.NewPrinter(tag)
	return p.Sprint(currency.Symbol(currency.USD.Amount(float64(cents) / 100)))
}

// focusChanged blurs the widget losing focus and focuses the new one.
func (m *MarketView) focusChanged(from, to string) {
	switch from {
	case FocusLanguage:
		m.pending = append(m.pending, m.Language.Blur())
	case FocusSort:
		m.pending = append(m.pending, m.Sort.Blur())
	case FocusSections:
		m.pending = append(m.pending, m.Sections.Blur())
	}
	switch to {
	case FocusLanguage:
		m.Language.Focus()
	case FocusSort:
		m.Sort.Focus()
	case FocusSections:
		m.Sections.Focus()
	}
	m.pending = append(m.pending, interaction("focus", map[string]string{"from": from, "to": to}))
}

func (m *MarketView) flush(cmds ...tea.Cmd) tea.Cmd {
	cmds = append(m.pending, cmds...)
	m.pending = nil
	return tea.Batch(cmds...)
}

// Init implements View.
func (m *MarketView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *MarketView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			m.Focus.Next()
			return m, m.flush()
		case "shift+tab":
			m.Focus.Prev()
			return m, m.flush()
		}
		var cmd tea.Cmd
		switch m.Focus.Current {
		case FocusLanguage:
			_, cmd = m.Language.Update(msg)
		case FocusSort:
			_, cmd = m.Sort.Update(msg)
		case FocusSections:
			_, cmd = m.Sections.Update(msg)
		}
		return m, m.flush(cmd)
	case tea.MouseMsg:
		if !isPress(msg) {
			return m, nil
		}
		// Hit-test against what the user currently sees.
		m.layout()
		switch {
		case m.Language.Region().Contains(msg.X, msg.Y):
			m.Focus.SetFocus(FocusLanguage)
		case m.Sort.Region().Contains(msg.X, msg.Y):
			m.Focus.SetFocus(FocusSort)
		case m.Sections.region.Contains(msg.X, msg.Y):
			m.Focus.SetFocus(FocusSections)
		}
		_, c1 := m.Language.Update(msg)
		_, c2 := m.Sort.Update(msg)
		_, c3 := m.Sections.Update(msg)
		return m, m.flush(c1, c2, c3)
	}
	return m, nil
}

// View implements View.
func (m *MarketView) View() string {
	return m.layout()
}

// layout renders the screen top to bottom and records each widget's region.
func (m *MarketView) layout() string {
	mode := m.Sections.Group.Mode()
	modeLine := m.loc.TranslateData("accordion.mode", map[string]any{
		"Mode": m.loc.Translate("accordion.mode." + mode.String()),
	})

	type block struct {
		text   string
		region func(Region)
	}
	blocks := []block{
		{text: Styles.Title.Render(m.loc.Translate("app.title"))},
		{text: Styles.Subtitle.Render(m.loc.Translate("app.subtitle"))},
		{text: ""},
		{text: m.Language.View(), region: m.Language.SetRegion},
		{text: m.Sort.View(), region: m.Sort.SetRegion},
		{text: ""},
		{text: Styles.Hint.Render(modeLine)},
		{text: m.Sections.View(), region: m.Sections.SetRegion},
		{text: ""},
		{text: Styles.Hint.Render(m.loc.Translate("app.footer"))},
	}

	parts := make([]string, len(blocks))
	y := 0
	for i, b := range blocks {
		h := lipgloss.Height(b.text)
		if b.region != nil {
			b.region(Region{X: 0, Y: y, Width: lipgloss.Width(b.text), Height: h})
		}
		parts[i] = b.text
		y += h
	}
	return strings.Join(parts, "\n")
}
