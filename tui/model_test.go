package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"wealth-site/domain"
	"wealth-site/service"
)

func seeded() Model {
	return NewModel("Trupath Wealth", domain.ProjectionInput{
		StartingBalance:     180000,
		MonthlyContribution: 550,
		HorizonYears:        20,
	}, true)
}

func typeKeys(m Model, s string) Model {
	for _, r := range s {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

func press(m Model, k tea.KeyType) Model {
	next, _ := m.Update(tea.KeyMsg{Type: k})
	return next.(Model)
}

func TestNewModel_ComputesInitialProjection(t *testing.T) {
	m := seeded()
	want := service.Project(domain.ProjectionInput{StartingBalance: 180000, MonthlyContribution: 550, HorizonYears: 20})

	if m.Result() != want {
		t.Errorf("expected %+v, got %+v", want, m.Result())
	}
}

func TestUpdate_RecomputesOnEveryKeystroke(t *testing.T) {
	m := seeded()

	// append a zero to the balance: 180000 -> 1800000
	m = typeKeys(m, "0")
	want := service.Project(domain.ProjectionInput{StartingBalance: 1800000, MonthlyContribution: 550, HorizonYears: 20})
	if m.Result() != want {
		t.Errorf("expected %+v, got %+v", want, m.Result())
	}

	m = press(m, tea.KeyBackspace)
	m = press(m, tea.KeyBackspace)
	want = service.Project(domain.ProjectionInput{StartingBalance: 18000, MonthlyContribution: 550, HorizonYears: 20})
	if m.Result() != want {
		t.Errorf("after backspace expected %+v, got %+v", want, m.Result())
	}
}

func TestUpdate_TabMovesFocusAndYearsClamp(t *testing.T) {
	m := seeded()
	m = press(m, tea.KeyTab)
	m = press(m, tea.KeyTab)
	if m.focus != fieldYears {
		t.Fatalf("expected focus on years, got %d", m.focus)
	}

	m = typeKeys(m, "0") // 200 years
	if m.Result().HorizonYears != service.MaxHorizonYears {
		t.Errorf("expected clamp to %d, got %d", service.MaxHorizonYears, m.Result().HorizonYears)
	}

	m = press(m, tea.KeyTab)
	if m.focus != fieldBalance {
		t.Errorf("focus should wrap to the first field, got %d", m.focus)
	}

	m = press(m, tea.KeyShiftTab)
	if m.focus != fieldYears {
		t.Errorf("shift+tab should wrap backwards, got %d", m.focus)
	}
}

func TestUpdate_GarbageInputClampsToLowerBound(t *testing.T) {
	m := seeded()
	m = typeKeys(m, "x")

	if m.Result().TotalContributions != 550*20*12 {
		t.Errorf("unparsable balance should count as zero, got %+v", m.Result())
	}
}

func TestUpdate_EscQuits(t *testing.T) {
	_, cmd := seeded().Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg")
	}
}

func TestUpdate_TickAdvancesHeadline(t *testing.T) {
	m := NewModel("Firm", domain.ProjectionInput{HorizonYears: 1}, false)

	next, cmd := m.Update(tickMsg{})
	m = next.(Model)
	if m.headline.Text() != "F" {
		t.Errorf("expected first character typed, got %q", m.headline.Text())
	}
	if cmd == nil {
		t.Errorf("expected next tick to be scheduled")
	}
}

func TestView_ShowsFormattedResult(t *testing.T) {
	view := seeded().View()

	for _, want := range []string{"$826,676", "$312,000", "20 years", "For Generations"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
