package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/SeamusWaldron/revenge"
)

var applyPlain bool

var applyCmd = &cobra.Command{
	Use:   "apply <moves>",
	Short: "Apply moves to a solved cube and print the result",
	Long: `Apply a move sequence to a solved cube and print the resulting net.

Example:
  revenge apply "R U R' U'"
  revenge apply Rw2 F Uw'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().BoolVar(&applyPlain, "plain", false, "Print letters instead of colors (default when not a terminal)")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s, err := revenge.ApplyNotation(revenge.NewSolvedStateN(cfg.Size), strings.Join(args, " "))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if applyPlain || !isTerminal(out) {
		fmt.Fprint(out, s.String())
	} else {
		fmt.Fprint(out, renderNet(s))
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Moves: %d\n", s.MoveCount())
	fmt.Fprintf(out, "Solved faces: %d/6\n", revenge.Progress(s))
	fmt.Fprintf(out, "Solved: %v\n", revenge.IsSolved(s))
	return nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
