package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/seamusw/cubie"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube in the terminal",
	Long: `Start an interactive TUI cube.

Keyboard shortcuts:
  u d r l f b  - turn a face clockwise
  U D R L F B  - turn a face counter-clockwise (shift = prime)
  2            - make the next face turn a half turn
  s            - scramble
  z            - reset to solved
  q/Esc        - quit`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	stickerStyles = map[cubie.Color]lipgloss.Style{
		cubie.White:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		cubie.Yellow: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		cubie.Green:  lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
		cubie.Blue:   lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		cubie.Red:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		cubie.Orange: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	}
)

// Model
type playModel struct {
	tracker    *cubie.Tracker
	scrambler  *cubie.Scrambler
	lastMove   string
	pending2   bool
	scrambled  bool
	solveCount int
	quitting   bool
}

func newPlayModel() *playModel {
	return &playModel{
		tracker:   cubie.NewTracker(),
		scrambler: cubie.NewScrambler(),
	}
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := keyMsg.String()
	switch key {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "2":
		m.pending2 = true
		return m, nil

	case "s":
		m.scramble()
		return m, nil

	case "z":
		m.tracker.Reset()
		m.lastMove = ""
		m.pending2 = false
		m.scrambled = false
		return m, nil
	}

	if move, ok := m.moveForKey(key); ok {
		wasSolved := m.tracker.IsSolved()
		m.tracker.ApplyMove(move)
		m.lastMove = move.Notation()
		if m.scrambled && !wasSolved && m.tracker.IsSolved() {
			m.solveCount++
			m.scrambled = false
		}
	}
	m.pending2 = false

	return m, nil
}

// moveForKey maps a face key to a move: lowercase clockwise, uppercase
// counter-clockwise, with a pending "2" upgrading either to a half turn.
func (m *playModel) moveForKey(key string) (cubie.Move, bool) {
	if len(key) != 1 {
		return cubie.Move{}, false
	}

	var face cubie.Face
	switch key[0] {
	case 'u', 'U':
		face = cubie.FaceU
	case 'd', 'D':
		face = cubie.FaceD
	case 'r', 'R':
		face = cubie.FaceR
	case 'l', 'L':
		face = cubie.FaceL
	case 'f', 'F':
		face = cubie.FaceF
	case 'b', 'B':
		face = cubie.FaceB
	default:
		return cubie.Move{}, false
	}

	turn := cubie.CW
	if key[0] >= 'A' && key[0] <= 'Z' {
		turn = cubie.CCW
	}
	if m.pending2 {
		turn = cubie.Double
	}

	return cubie.Move{Face: face, Turn: turn}, true
}

func (m *playModel) scramble() {
	scratch := cubie.New()
	sequence := m.scrambler.Scramble(scratch, cubie.DefaultScrambleLength)
	moves, err := cubie.ParseMoves(sequence)
	if err != nil {
		return // scrambler output always parses
	}

	m.tracker.Reset()
	m.tracker.ApplyMoves(moves)
	m.lastMove = "scramble: " + sequence
	m.pending2 = false
	m.scrambled = true
}

func (m *playModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("cubie"))
	b.WriteString("\n\n")
	b.WriteString(renderNet(m.tracker.Cube().Facelets()))
	b.WriteString("\n")

	if m.tracker.IsSolved() {
		b.WriteString(solvedStyle.Render("SOLVED"))
	} else {
		b.WriteString(statusStyle.Render(fmt.Sprintf("%d moves", len(m.tracker.Moves()))))
	}
	if m.solveCount > 0 {
		b.WriteString(statusStyle.Render(fmt.Sprintf("  |  solves: %d", m.solveCount)))
	}
	if m.pending2 {
		b.WriteString(moveStyle.Render("  [2]"))
	}
	b.WriteString("\n")

	if m.lastMove != "" {
		b.WriteString(moveStyle.Render("last: " + m.lastMove))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("u/d/r/l/f/b turn  shift=prime  2=half  s scramble  z reset  q quit"))
	b.WriteString("\n")

	return b.String()
}

// renderNet renders the facelet net with one colored letter per sticker.
func renderNet(f cubie.Facelets) string {
	var b strings.Builder

	writeRow := func(face cubie.CubeFace, row int) {
		for col := 0; col < 3; col++ {
			c := f[face][row*3+col]
			b.WriteString(stickerStyles[c].Render(c.String()))
			b.WriteString(" ")
		}
	}

	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(cubie.CubeFaceU, row)
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		for _, face := range []cubie.CubeFace{cubie.CubeFaceL, cubie.CubeFaceF, cubie.CubeFaceR, cubie.CubeFaceB} {
			writeRow(face, row)
		}
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(cubie.CubeFaceD, row)
		b.WriteString("\n")
	}

	return b.String()
}

func runPlay(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(newPlayModel())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
