package tui

import "time"

const (
	TypeSpeed   = 70 * time.Millisecond
	DeleteSpeed = 35 * time.Millisecond
	HoldDelay   = 2000 * time.Millisecond
)

// Typewriter types a phrase one character at a time, holds it, deletes it and
// moves on to the next phrase. With static set it always shows fallback.
type Typewriter struct {
	phrases  [][]rune
	phrase   int
	chars    int
	deleting bool
	static   bool
	fallback string
}

func NewTypewriter(phrases []string, fallback string, reducedMotion bool) Typewriter {
	runes := make([][]rune, 0, len(phrases))
	for _, p := range phrases {
		if p != "" {
			runes = append(runes, []rune(p))
		}
	}
	return Typewriter{
		phrases:  runes,
		static:   reducedMotion || len(runes) == 0,
		fallback: fallback,
	}
}

func (t Typewriter) Animated() bool {
	return !t.static
}

func (t Typewriter) Text() string {
	if t.static {
		return t.fallback
	}
	return string(t.phrases[t.phrase][:t.chars])
}

// Step advances one tick and returns the delay before the next one.
func (t Typewriter) Step() (Typewriter, time.Duration) {
	if t.static {
		return t, 0
	}

	phrase := t.phrases[t.phrase]

	if !t.deleting {
		t.chars++
		if t.chars >= len(phrase) {
			t.chars = len(phrase)
			t.deleting = true
			return t, HoldDelay
		}
		return t, TypeSpeed
	}

	t.chars--
	if t.chars <= 0 {
		t.chars = 0
		t.deleting = false
		t.phrase = (t.phrase + 1) % len(t.phrases)
		return t, TypeSpeed
	}
	return t, DeleteSpeed
}
