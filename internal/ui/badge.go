package ui

import (
	"strings"

	"freshmarket/internal/market"
)

// BadgeVariant picks a badge's color.
type BadgeVariant int

const (
	BadgeNeutral BadgeVariant = iota
	BadgeOrganic
	BadgeLocal
	BadgeSeasonal
	BadgeSoldOut
)

// Badge is a short colored label next to a product.
type Badge struct {
	Label   string
	Variant BadgeVariant
}

// Render draws the badge as a one-line pill.
func (b Badge) Render() string {
	return badgeStyle(b.Variant).Render(b.Label)
}

// RenderBadges joins badges with single spaces.
func RenderBadges(badges []Badge) string {
	parts := make([]string, len(badges))
	for i, b := range badges {
		parts[i] = b.Render()
	}
	return strings.Join(parts, " ")
}

// ProductBadges lists the badges for p with translated labels.
func ProductBadges(p market.Product, tr Translator) []Badge {
	var out []Badge
	if p.Organic {
		out = append(out, Badge{Label: tr.Translate("badge.organic"), Variant: BadgeOrganic})
	}
	if p.Local {
		out = append(out, Badge{Label: tr.Translate("badge.local"), Variant: BadgeLocal})
	}
	if p.Seasonal {
		out = append(out, Badge{Label: tr.Translate("badge.seasonal"), Variant: BadgeSeasonal})
	}
	if p.InStock() {
		out = append(out, Badge{
			Label:   tr.TranslateData("badge.in_stock", map[string]any{"Count": p.Stock}),
			Variant: BadgeNeutral,
		})
	} else {
		out = append(out, Badge{Label: tr.Translate("badge.sold_out"), Variant: BadgeSoldOut})
	}
	return out
}
