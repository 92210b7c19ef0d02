package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/briancoyner/interactive-grid/pkg/grid"
)

func key(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, m PlayModel, keys ...string) (PlayModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		m = next.(PlayModel)
	}
	return m, cmd
}

func playModel(t *testing.T, layout string) PlayModel {
	t.Helper()
	s, err := grid.ParseSequence(layout)
	if err != nil {
		t.Fatal(err)
	}
	return NewPlayModel(s)
}

func TestPlayDragAndDrop(t *testing.T) {
	m := playModel(t, "R0 C1 C2")

	m, _ = press(t, m, "enter")
	if !m.Session.Active() {
		t.Fatal("enter should lift the item under the cursor")
	}

	m, _ = press(t, m, "right")
	if got := m.Session.Proposed().Sequence.String(); got != "C1 C2 R0" {
		t.Errorf("proposal = %q, want %q", got, "C1 C2 R0")
	}
	if m.Cursor != 2 {
		t.Errorf("cursor should follow the lifted item to 2, got %d", m.Cursor)
	}

	m, _ = press(t, m, "enter")
	if m.Session.Active() {
		t.Error("second enter should drop the item")
	}
	if got := m.Session.Committed().String(); got != "C1 C2 R0" {
		t.Errorf("committed = %q, want %q", got, "C1 C2 R0")
	}
	if m.Drops != 1 {
		t.Errorf("drops = %d, want 1", m.Drops)
	}
}

func TestPlayUpOntoTrailing(t *testing.T) {
	m := playModel(t, "C0 C1 R2 C3 C4")
	m.Cursor = 2

	m, _ = press(t, m, "enter", "left", "enter")
	if got := m.Session.Committed().String(); got != "R2 C0 C1 C3 C4" {
		t.Errorf("committed = %q, want %q", got, "R2 C0 C1 C3 C4")
	}
	if m.Cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.Cursor)
	}
}

func TestPlayCancel(t *testing.T) {
	m := playModel(t, "R0 C1 C2")

	m, cmd := press(t, m, "enter", "right", "esc")
	if cmd != nil {
		t.Error("esc during a drag should not quit")
	}
	if m.Session.Active() {
		t.Error("esc should cancel the drag")
	}
	if got := m.Session.Committed().String(); got != "R0 C1 C2" {
		t.Errorf("committed = %q, want unchanged", got)
	}
	if m.Cursor != 0 {
		t.Errorf("cursor = %d, want back on the item at 0", m.Cursor)
	}
}

func TestPlayNavigation(t *testing.T) {
	// rows: [C0 C1] [R2] [C3]
	m := playModel(t, "C0 C1 R2 C3")

	steps := []struct {
		key  string
		want int
	}{
		{"left", 0},
		{"right", 1},
		{"down", 2},
		{"down", 3},
		{"down", 3},
		{"up", 2},
		{"up", 0},
		{"up", 0},
		{"l", 1},
		{"h", 0},
		{"j", 2},
		{"k", 0},
	}
	for i, st := range steps {
		m, _ = press(t, m, st.key)
		if m.Cursor != st.want {
			t.Fatalf("step %d (%s): cursor = %d, want %d", i, st.key, m.Cursor, st.want)
		}
	}
	if m.Session.Active() {
		t.Error("moving the cursor must not start a drag")
	}
}

func TestPlayQuit(t *testing.T) {
	m := playModel(t, "R0 C1")

	_, cmd := press(t, m, "q")
	if cmd == nil {
		t.Error("q should quit")
	}

	_, cmd = press(t, m, "esc")
	if cmd == nil {
		t.Error("esc without a drag should quit")
	}

	m, cmd = press(t, m, "enter", "q")
	if cmd == nil {
		t.Error("q during a drag should quit")
	}
	if m.Session.Active() {
		t.Error("quitting should cancel the drag")
	}
}

func TestPlayReset(t *testing.T) {
	m := playModel(t, "R0 C1 C2")

	m, _ = press(t, m, "enter", "right", "enter", "r")
	if got := m.Session.Committed().String(); got != "R0 C1 C2" {
		t.Errorf("reset committed = %q, want the initial layout", got)
	}
	if m.Drops != 0 || m.Cursor != 0 {
		t.Errorf("reset should clear drops and cursor, got %d and %d", m.Drops, m.Cursor)
	}
}

func TestPlayView(t *testing.T) {
	m := playModel(t, "R0 C1 C2")

	view := m.View()
	for _, want := range []string{"Interactive Grid", "R0", "C1", "C2"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	m, _ = press(t, m, "enter", "right")
	view = m.View()
	if !strings.Contains(view, "down-compact-neighbor") {
		t.Errorf("view should show the last branch:\n%s", view)
	}
	if !strings.Contains(view, "R0^-") {
		t.Errorf("view should mark the lifted item at its drop slot:\n%s", view)
	}
}
