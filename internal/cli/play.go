package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/revenge"
	"github.com/SeamusWaldron/revenge/internal/storage"
)

const noticeDuration = 2 * time.Second

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive play mode",
	Long: `Start an interactive TUI on the active game (or a new scrambled one).

Type moves in standard notation and press Enter to apply them. Several moves
can be entered at once, separated by spaces.

Keyboard shortcuts:
  Enter   - Apply the typed moves
  ctrl+z  - Undo the last move
  ctrl+r  - Start a new scrambled game (the old one stays saved)
  Esc     - Quit (the game is saved)`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

// Messages
type clearNoticeMsg struct{ id int }

// Model
type playModel struct {
	session *revenge.Session
	state   revenge.State

	// newGame replaces the session with a new game. Without it ctrl+r
	// rescrambles the current session.
	newGame func() (*revenge.Session, error)

	input     string
	notice    string
	noticeErr bool
	noticeID  int

	width    int
	height   int
	quitting bool
}

func newPlayModel(session *revenge.Session) *playModel {
	return &playModel{
		session: session,
		state:   session.State(),
	}
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

// setNotice shows a transient message and schedules its removal.
func (m *playModel) setNotice(text string, isErr bool) tea.Cmd {
	m.noticeID++
	m.notice = text
	m.noticeErr = isErr
	id := m.noticeID
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return clearNoticeMsg{id: id}
	})
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			return m, m.applyInput()

		case tea.KeyBackspace:
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}

		case tea.KeyCtrlZ:
			state, err := m.session.Undo()
			m.state = state
			if errors.Is(err, revenge.ErrEmptyHistory) {
				return m, m.setNotice("Nothing to undo", true)
			}
			return m, m.setNotice("Undone", false)

		case tea.KeyCtrlR:
			m.input = ""
			if m.newGame == nil {
				m.state = m.session.Reset()
				return m, m.setNotice("New scramble", false)
			}
			session, err := m.newGame()
			if err != nil {
				return m, m.setNotice(fmt.Sprintf("Could not start a new game: %v", err), true)
			}
			m.session = session
			m.state = session.State()
			return m, m.setNotice("New game", false)

		case tea.KeySpace:
			m.input += " "

		case tea.KeyRunes:
			m.input += string(msg.Runes)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case clearNoticeMsg:
		if msg.id == m.noticeID {
			m.notice = ""
		}
	}

	return m, nil
}

// applyInput applies the typed tokens one by one, stopping at the first invalid one.
// The rejected token and everything after it stay in the input line.
func (m *playModel) applyInput() tea.Cmd {
	tokens := strings.Fields(m.input)
	m.input = ""
	if len(tokens) == 0 {
		return nil
	}

	for i, tok := range tokens {
		state, err := m.session.Move(tok)
		m.state = state
		if err != nil {
			m.input = strings.Join(tokens[i:], " ")
			return m.setNotice(fmt.Sprintf("Invalid move %q", tok), true)
		}
	}

	if revenge.IsSolved(m.state) {
		return m.setNotice("Solved!", false)
	}
	return nil
}

func (m *playModel) View() string {
	if m.quitting {
		return "Game saved. Goodbye!\n"
	}

	var b strings.Builder

	// Title
	b.WriteString(titleStyle.Render("revenge - 4x4 cube"))
	b.WriteString("\n\n")

	b.WriteString(renderNet(m.state))
	b.WriteString("\n")

	// Status
	if revenge.IsSolved(m.state) {
		b.WriteString(solvedStyle.Render("SOLVED!"))
	} else {
		b.WriteString(statusStyle.Render(fmt.Sprintf("Solved faces: %d/6", revenge.Progress(m.state))))
	}
	b.WriteString("\n")

	moves := m.session.PlayerMoves()
	b.WriteString(statusStyle.Render(fmt.Sprintf("Moves: %d", len(moves))))
	b.WriteString("  ")
	b.WriteString(moveStyle.Render(formatTokens(moves, 12)))
	b.WriteString("\n\n")

	b.WriteString("> " + m.input + "_\n")
	if m.notice != "" {
		if m.noticeErr {
			b.WriteString(errorStyle.Render(m.notice))
		} else {
			b.WriteString(solvedStyle.Render(m.notice))
		}
	}
	b.WriteString("\n\n")

	b.WriteString(helpStyle.Render("Enter: apply  ctrl+z: undo  ctrl+r: new game  Esc: quit"))
	b.WriteString("\n")

	return b.String()
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so verbose logs go to a file.
	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := newLogger(logFile)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	g, err := openGame(ctx, cfg, logger, false)
	if err != nil {
		return err
	}

	onSolved := func(s revenge.State) {
		logger.Printf("game %s solved after %d moves", g.store.GameID(), s.MoveCount())
	}
	g.session.OnSolved(onSolved)

	m := newPlayModel(g.session)
	m.newGame = func() (*revenge.Session, error) {
		if err := g.restart(ctx); err != nil {
			return nil, err
		}
		g.session.OnSolved(onSolved)
		return g.session, nil
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, runErr := p.Run()

	if err := g.Close(ctx); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render(fmt.Sprintf("Warning: could not save game: %v", err)))
	}
	if runErr != nil {
		return fmt.Errorf("TUI error: %w", runErr)
	}
	return nil
}

// openLogFile opens the append-only log in the application directory.
func openLogFile() (*os.File, error) {
	dir, err := storage.DefaultDir()
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(filepath.Join(dir, "revenge.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}
