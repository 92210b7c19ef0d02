package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/briancoyner/interactive-grid/pkg/grid"
	"github.com/briancoyner/interactive-grid/pkg/layout"
	"github.com/briancoyner/interactive-grid/pkg/session"
)

var (
	playHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
	playStatusStyle = lipgloss.NewStyle().Foreground(colorGray)
	playErrorStyle  = lipgloss.NewStyle().Foreground(colorRed)
)

// playCommand creates the play command.
func (c *CLI) playCommand() *cobra.Command {
	var (
		src     sourceFlags
		logFile string
	)

	cmd := &cobra.Command{
		Use:   "play [layout...]",
		Short: "Drag items around an interactive grid",
		Long: `Play opens the grid in the terminal. Move the cursor with the arrow
keys, press space to lift an item, move it around, and press space again to
drop it. Esc cancels a drag.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.readSequence(cmd, args, &src)
			if err != nil {
				return err
			}
			if s.IsEmpty() {
				return fmt.Errorf("nothing to play with: the layout is empty")
			}

			restore, err := c.redirectLog(logFile)
			if err != nil {
				return err
			}
			defer restore()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			model := NewPlayModel(s, session.WithContext(ctx), session.WithLogger(c.Logger))
			final, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			if err != nil {
				return err
			}

			pm := final.(PlayModel)
			fmt.Fprintln(cmd.OutOrStdout(), gridView(pm.Session.Committed(), noMarks()))
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", pm.Session.Committed(), StyleDim.Render(fmt.Sprintf("%d drops", pm.Drops)))
			return nil
		},
	}

	addSourceFlags(cmd, &src)
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file while the grid is open")
	return cmd
}

// redirectLog sends log output to path, or discards it, while the
// alternate screen is active. The returned func restores the original writer.
func (c *CLI) redirectLog(path string) (func(), error) {
	orig := c.logWriter
	if orig == nil {
		orig = os.Stderr
	}
	if path == "" {
		c.Logger.SetOutput(io.Discard)
		return func() { c.Logger.SetOutput(orig) }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	c.Logger.SetOutput(f)
	return func() {
		c.Logger.SetOutput(orig)
		f.Close()
	}, nil
}

// =============================================================================
// PlayModel - Interactive drag and drop
// =============================================================================

// PlayModel is the bubbletea model for the interactive grid.
type PlayModel struct {
	Session *session.Session
	Cursor  int
	Drops   int

	initial  grid.Sequence
	opts     []session.Option
	shownAt  int // on-screen index of the lifted item
	liftedID int
	status   string
	err      error
}

// NewPlayModel creates a play model over s.
func NewPlayModel(s grid.Sequence, opts ...session.Option) PlayModel {
	return PlayModel{
		Session: session.New(s, opts...),
		initial: s,
		opts:    opts,
	}
}

func (m PlayModel) Init() tea.Cmd {
	return nil
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		m.Session.Cancel()
		return m, tea.Quit
	case "esc":
		if !m.Session.Active() {
			return m, tea.Quit
		}
		m.Session.Cancel()
		m.Cursor = m.Session.Committed().IndexOf(m.liftedID)
		m.status, m.err = "drag cancelled", nil
	case " ", "enter":
		m = m.toggle()
	case "left", "h":
		m = m.moveTo(m.Cursor - 1)
	case "right", "l":
		m = m.moveTo(m.Cursor + 1)
	case "up", "k":
		m = m.moveTo(m.rowNeighbor(-1))
	case "down", "j":
		m = m.moveTo(m.rowNeighbor(1))
	case "r":
		m.Session.Cancel()
		m.Session = session.New(m.initial, m.opts...)
		m.Cursor, m.Drops = 0, 0
		m.status, m.err = "reset", nil
	}
	return m, nil
}

// toggle lifts the item under the cursor, or drops the lifted item.
func (m PlayModel) toggle() PlayModel {
	if m.Session.Active() {
		committed := m.Session.Commit()
		m.Drops++
		m.Cursor = committed.IndexOf(m.liftedID)
		m.status, m.err = "dropped: "+committed.String(), nil
		return m
	}
	if err := m.Session.Begin(m.Cursor); err != nil {
		m.err = err
		return m
	}
	m.shownAt = m.Cursor
	m.liftedID = m.Session.Committed().At(m.Cursor).Value
	m.status, m.err = "lifted "+m.Session.Committed().At(m.Cursor).String(), nil
	return m
}

// moveTo moves the cursor to target, resolving a drag update when an item
// is lifted. Targets outside the grid are ignored.
func (m PlayModel) moveTo(target int) PlayModel {
	shown := m.Session.Proposed().Sequence
	if target < 0 || target >= shown.Len() || target == m.Cursor {
		return m
	}
	if !m.Session.Active() {
		m.Cursor = target
		return m
	}

	p, err := m.Session.Update(m.shownAt, target)
	if err != nil {
		m.err = err
		return m
	}
	if !p.Skipped {
		m.shownAt = p.Sequence.IndexOf(m.liftedID)
		m.Cursor = m.shownAt
	}
	m.status, m.err = fmt.Sprintf("%s drop %d", p.Branch, p.DropIndex), nil
	return m
}

// rowNeighbor returns the index in the row above (dir -1) or below (dir 1)
// the cursor, keeping the column where the row has one.
func (m PlayModel) rowNeighbor(dir int) int {
	rows := layout.Rows(m.Session.Proposed().Sequence)
	for r, row := range rows {
		for col, idx := range row.Indices {
			if idx != m.Cursor {
				continue
			}
			next := r + dir
			if next < 0 || next >= len(rows) {
				return -1
			}
			target := rows[next].Indices
			return target[min(col, len(target)-1)]
		}
	}
	return -1
}

func (m PlayModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Interactive Grid"))
	b.WriteString("\n")
	b.WriteString(playHelpStyle.Render("arrows/hjkl move  space lift/drop  esc cancel  r reset  q quit"))
	b.WriteString("\n\n")

	mk := noMarks()
	if m.Session.Active() {
		mk.Lift = m.shownAt
		mk.Drop = m.Session.Proposed().DropIndex
	} else {
		mk.Cursor = m.Cursor
	}
	b.WriteString(gridView(m.Session.Proposed().Sequence, mk))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(playErrorStyle.Render(iconError + " " + m.err.Error()))
	} else if m.status != "" {
		b.WriteString(playStatusStyle.Render(m.status))
	}
	b.WriteString("\n")
	if id := m.Session.ID(); id != "" {
		b.WriteString(playHelpStyle.Render(fmt.Sprintf("  [drag %s · %d drops]", shortID(id), m.Drops)))
	}

	return b.String()
}
