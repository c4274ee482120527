package components

import (
	"strings"
	"testing"

	"paysplit/internal/tui/theme"
)

func TestLayoutRow(t *testing.T) {
	tests := []struct {
		total int
		n     int
		want  []int
	}{
		{100, 2, []int{50, 50}},
		{101, 2, []int{51, 50}},
		{10, 3, []int{4, 3, 3}},
		{5, 1, []int{5}},
		{7, 0, nil},
	}

	for _, tt := range tests {
		got := LayoutRow(tt.total, tt.n)
		if len(got) != len(tt.want) {
			t.Fatalf("LayoutRow(%d, %d) = %v, want %v", tt.total, tt.n, got, tt.want)
		}
		sum := 0
		for i, w := range got {
			if w != tt.want[i] {
				t.Errorf("LayoutRow(%d, %d)[%d] = %d, want %d", tt.total, tt.n, i, w, tt.want[i])
			}
			sum += w
		}
		if tt.n > 0 && sum != tt.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tt.total, tt.n, sum)
		}
	}
}

func TestCardRowHeightMatchesTallest(t *testing.T) {
	theme.SetActive("flexoki-dark")

	short := ContentCard("Short", "one line", 24)
	tall := ContentCard("Tall", "a\nb\nc\nd", 24)
	tallLines := len(strings.Split(tall, "\n"))

	joined := CardRow([]string{tall, short})
	if got := len(strings.Split(joined, "\n")); got != tallLines {
		t.Errorf("joined height = %d, want %d (tallest card)", got, tallLines)
	}
}

func TestTabIdxByKey(t *testing.T) {
	for i, tab := range Tabs {
		if got := TabIdxByKey(tab.Key); got != i {
			t.Errorf("TabIdxByKey(%q) = %d, want %d", tab.Key, got, i)
		}
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", got)
	}
}
