package tui

import (
	"testing"
	"time"
)

func TestTypewriter_TypesHoldsDeletesAndAdvances(t *testing.T) {
	tw := NewTypewriter([]string{"ab", "c"}, "static", false)

	if tw.Text() != "" {
		t.Fatalf("expected empty start, got %q", tw.Text())
	}

	var d time.Duration
	tw, d = tw.Step()
	if tw.Text() != "a" || d != TypeSpeed {
		t.Fatalf("step 1: %q %v", tw.Text(), d)
	}

	tw, d = tw.Step()
	if tw.Text() != "ab" || d != HoldDelay {
		t.Fatalf("step 2: %q %v", tw.Text(), d)
	}

	tw, d = tw.Step()
	if tw.Text() != "a" || d != DeleteSpeed {
		t.Fatalf("step 3: %q %v", tw.Text(), d)
	}

	tw, d = tw.Step()
	if tw.Text() != "" || d != TypeSpeed {
		t.Fatalf("step 4: %q %v", tw.Text(), d)
	}

	tw, _ = tw.Step()
	if tw.Text() != "c" {
		t.Fatalf("expected next phrase, got %q", tw.Text())
	}
}

func TestTypewriter_WrapsAround(t *testing.T) {
	tw := NewTypewriter([]string{"x"}, "", false)
	for i := 0; i < 10; i++ {
		tw, _ = tw.Step()
	}
	if tw.phrase != 0 {
		t.Errorf("single phrase should wrap to itself, got index %d", tw.phrase)
	}
}

func TestTypewriter_ReducedMotion(t *testing.T) {
	tw := NewTypewriter([]string{"a", "b"}, "For Generations", true)
	if tw.Animated() {
		t.Fatal("reduced motion should not animate")
	}

	tw, d := tw.Step()
	if tw.Text() != "For Generations" || d != 0 {
		t.Errorf("expected static text, got %q %v", tw.Text(), d)
	}
}

func TestTypewriter_MultibytePhrase(t *testing.T) {
	tw := NewTypewriter([]string{"é€"}, "", false)
	tw, _ = tw.Step()
	if tw.Text() != "é" {
		t.Errorf("expected one rune, got %q", tw.Text())
	}
}
