package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/medialens/medialens/pkg/outlet"
)

func testDashStore() *outlet.Store {
	return outlet.NewStore([]outlet.Record{
		{Outlet: "Daily Courier", Owner: "Acme Media", FoundingYear: 1924, Audience: 420000},
		{Outlet: "Channel Nine", Owner: "Acme Media", FoundingYear: 1982, Audience: 860000},
		{Outlet: "Radio Beacon", Owner: "Beacon Group", FoundingYear: 1947, Audience: 125000},
	})
}

func key(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	if s == "down" {
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m DashModel, msgs ...tea.Msg) DashModel {
	t.Helper()
	var model tea.Model = m
	for _, msg := range msgs {
		model, _ = model.Update(msg)
	}
	return model.(DashModel)
}

func TestDashCursorHoversOwner(t *testing.T) {
	m := NewDashModel(testDashStore())

	// Acme has more outlets, so it leads the leaderboard and starts hovered.
	if m.Selection.HoveredOwner == nil || *m.Selection.HoveredOwner != "Acme Media" {
		t.Fatalf("initial hover = %v, want Acme Media", m.Selection.HoveredOwner)
	}

	m = update(t, m, key("down"))
	if m.Selection.HoveredOwner == nil || *m.Selection.HoveredOwner != "Beacon Group" {
		t.Errorf("hover after down = %v, want Beacon Group", m.Selection.HoveredOwner)
	}
	if m.Selection.SelectedOwner != nil {
		t.Error("hover must not set the persistent selection")
	}
}

func TestDashEnterSelectsOwnerAndDrillsIn(t *testing.T) {
	m := NewDashModel(testDashStore())

	m = update(t, m, key("enter"))
	if m.Selection.SelectedOwner == nil || *m.Selection.SelectedOwner != "Acme Media" {
		t.Fatalf("selected owner = %v, want Acme Media", m.Selection.SelectedOwner)
	}
	if m.level != levelOutlets {
		t.Error("enter should drill into the outlet list")
	}
	if got := m.model.Stats.TotalOutlets; got != 2 {
		t.Errorf("filtered outlet count = %d, want 2", got)
	}
}

func TestDashOutletSelectionSyncsOwner(t *testing.T) {
	m := NewDashModel(testDashStore())

	m = update(t, m, key("enter"), key("down"), key("enter"))
	if m.Selection.SelectedOutlet == nil || *m.Selection.SelectedOutlet != "Channel Nine" {
		t.Fatalf("selected outlet = %v, want Channel Nine", m.Selection.SelectedOutlet)
	}
	if m.Selection.SelectedOwner == nil || *m.Selection.SelectedOwner != "Acme Media" {
		t.Errorf("owner selection out of sync: %v", m.Selection.SelectedOwner)
	}
	if got := m.model.Stats.TotalOutlets; got != 1 {
		t.Errorf("filtered outlet count = %d, want 1", got)
	}
}

func TestDashEscStepsBackOut(t *testing.T) {
	m := NewDashModel(testDashStore())

	m = update(t, m, key("enter"), key("enter"))
	if m.Selection.SelectedOutlet == nil {
		t.Fatal("expected an outlet selection")
	}

	// First esc clears the outlet but keeps the owner.
	m = update(t, m, key("esc"))
	if m.Selection.SelectedOutlet != nil {
		t.Error("esc should clear the outlet selection")
	}
	if m.Selection.SelectedOwner == nil {
		t.Error("esc should keep the owner selection")
	}

	// Second esc drops back to the leaderboard with no filters.
	m = update(t, m, key("esc"))
	if m.Selection.SelectedOwner != nil {
		t.Error("second esc should clear the owner selection")
	}
	if m.level != levelOwners {
		t.Error("second esc should return to the owner list")
	}
}

func TestDashClearResetsEverything(t *testing.T) {
	m := NewDashModel(testDashStore())

	m = update(t, m, key("enter"), key("enter"), key("c"))
	if m.Selection.SelectedOwner != nil || m.Selection.SelectedOutlet != nil {
		t.Error("c should clear all filters")
	}
	if got := m.model.Stats.TotalOutlets; got != 3 {
		t.Errorf("outlet count after clear = %d, want 3", got)
	}
}

func TestDashViewRenders(t *testing.T) {
	m := NewDashModel(testDashStore())

	out := m.View()
	if out == "" {
		t.Fatal("View() returned empty output")
	}

	m = update(t, m, key("enter"))
	if out := m.View(); out == "" {
		t.Fatal("outlet view returned empty output")
	}
}
