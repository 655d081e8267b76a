package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/revenge"
	"github.com/SeamusWaldron/revenge/internal/storage"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active game",
	Long:  `Display the database in use, the active game, its scramble seed and the moves played so far.`,
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sf, err := openStateFile(cfg)
	if err != nil {
		return err
	}
	db, err := openDB(cfg, sf)
	if err != nil {
		return err
	}
	defer db.Close()

	out := cmd.OutOrStdout()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Fprintln(out, "revenge status")
	fmt.Fprintln(out, "==============")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Database: %s\n", db.Path())

	games := storage.NewGameRepository(db)
	all, err := games.List(ctx, 10000)
	if err != nil {
		return err
	}
	solved := 0
	for _, g := range all {
		if g.Solved {
			solved++
		}
	}
	fmt.Fprintf(out, "Games: %d (%d solved)\n", len(all), solved)
	fmt.Fprintln(out)

	var g *storage.Game
	label := "Active game"
	if sf.HasActiveGame() {
		g, err = games.Get(ctx, sf.ActiveGameID())
		if err != nil {
			return err
		}
		if g == nil {
			fmt.Fprintf(out, "Active game %s not found\n", sf.ActiveGameID())
			if err := sf.ClearActiveGame(); err != nil {
				return fmt.Errorf("failed to save state: %w", err)
			}
		}
	}

	if g == nil {
		g, err = games.GetLast(ctx)
		if err != nil {
			return err
		}
		if g == nil {
			fmt.Fprintln(out, "No active game")
			fmt.Fprintln(out, "  (Use 'revenge play' to start one)")
			return nil
		}
		label = "Last game"
	}

	fmt.Fprintf(out, "%s: %s (%s)\n", label, g.Name, g.GameID)
	fmt.Fprintf(out, "Started: %s\n", g.CreatedAt.Local().Format(time.RFC3339))
	fmt.Fprintf(out, "Last saved: %s\n", g.UpdatedAt.Local().Format(time.RFC3339))
	if g.ScrambleSeed != nil {
		fmt.Fprintf(out, "Scramble seed: %s\n", *g.ScrambleSeed)
	}
	if g.ScrambleLen != nil {
		fmt.Fprintf(out, "Scramble length: %d\n", *g.ScrambleLen)
	}

	state, err := g.State()
	if err != nil {
		return err
	}
	if state == nil {
		fmt.Fprintln(out, "Not saved yet")
		return nil
	}

	logged, err := storage.NewMoveLogRepository(db).Count(ctx, g.GameID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Moves in history: %d (logged: %d)\n", state.MoveCount(), logged)
	fmt.Fprintf(out, "Solved faces: %d/6\n", revenge.Progress(*state))
	if g.SolvedAt != nil {
		fmt.Fprintf(out, "Solved at: %s\n", g.SolvedAt.Local().Format(time.RFC3339))
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, renderNet(*state))

	return nil
}
