package textutil

import "testing"

func TestColumn(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"pads short", "Kale", 6, "Kale  "},
		{"exact", "Kale", 4, "Kale"},
		{"truncates", "Strawberries", 6, "Straw…"},
		{"accented", "Épinards", 9, "Épinards "},
		{"wide runes", "日本語", 5, "日本…"},
		{"zero width", "Kale", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Column(tt.in, tt.width)
			if got != tt.want {
				t.Errorf("Column(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
			if Width(got) != tt.width {
				t.Errorf("Column(%q, %d) is %d columns wide", tt.in, tt.width, Width(got))
			}
		})
	}
}

func TestRightColumn(t *testing.T) {
	if got := RightColumn("$3.49", 8); got != "   $3.49" {
		t.Errorf("RightColumn = %q", got)
	}
}

func TestWidthIgnoresANSI(t *testing.T) {
	if got := Width("\x1b[1mbold\x1b[0m"); got != 4 {
		t.Errorf("Width = %d, want 4", got)
	}
}
