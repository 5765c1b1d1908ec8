package tui

import "testing"

func TestHexColor(t *testing.T) {
	if got := hexColor([3]int{169, 189, 184}); got != "#A9BDB8" {
		t.Fatalf("expected #A9BDB8, got %s", got)
	}
}

func TestHighlightSweep(t *testing.T) {
	h := &Highlight{Width: 0.25, Steps: 6, Pause: 2, enabled: true}

	if h.paused() {
		t.Fatal("expected sweep to start immediately")
	}
	start := h.center(8)
	for i := 0; i < 3; i++ {
		h.Advance()
	}
	end := h.center(8)
	if start >= 0 || end <= 8 {
		t.Fatalf("expected band to travel from before to after the text, got %v to %v", start, end)
	}

	h.Advance()
	if !h.paused() {
		t.Fatal("expected pause after the sweep")
	}

	h.Advance()
	h.Advance()
	if h.paused() || h.step != 0 {
		t.Fatalf("expected a new sweep, got step %d", h.step)
	}
}

func TestHighlightDisabled(t *testing.T) {
	h := &Highlight{Steps: 6, Pause: 2}
	h.Advance()
	if h.step != 0 {
		t.Fatal("expected disabled highlight to stay still")
	}
	if h.Tick() != nil {
		t.Fatal("expected no tick when disabled")
	}
	if h.Render("") != "" {
		t.Fatal("expected empty render for empty text")
	}
}
