package quotes_test

import (
	"slices"
	"testing"

	"github.com/edgard/nodeseek-signbot/internal/quotes"
)

func TestPick_AlwaysFromList(t *testing.T) {
	t.Parallel()

	list := quotes.All()
	p := quotes.NewPicker(nil)

	for i := 0; i < 500; i++ {
		q := p.Pick()
		if !slices.Contains(list, q) {
			t.Fatalf("Pick() = %+v, not in the quote list", q)
		}
	}
}

func TestPick_InjectedIndex(t *testing.T) {
	t.Parallel()

	list := quotes.All()
	for i := range list {
		p := quotes.NewPicker(func(n int) int {
			if n != len(list) {
				t.Errorf("intN called with n = %d, want %d", n, len(list))
			}
			return i
		})

		if got := p.Pick(); got != list[i] {
			t.Errorf("Pick() with index %d = %+v, want %+v", i, got, list[i])
		}
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	t.Parallel()

	first := quotes.All()
	if len(first) == 0 {
		t.Fatal("All() returned an empty list")
	}
	first[0].Text = "changed"

	if quotes.All()[0].Text == "changed" {
		t.Error("All() exposes the underlying list")
	}
	for _, q := range quotes.All() {
		if q.Text == "" || q.Author == "" {
			t.Errorf("quote %+v has an empty field", q)
		}
	}
}
