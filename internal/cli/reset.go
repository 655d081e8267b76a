package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/revenge/internal/storage"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Start a new scrambled game",
	Long: `Start a new game from a fresh scramble and make it the active game.
The old game stays in the database unless --discard is given.`,
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

var resetDiscard bool

func init() {
	resetCmd.Flags().BoolVar(&resetDiscard, "discard", false, "Delete the previous game and its move log")
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	g, err := openGame(ctx, cfg, newLogger(os.Stderr), true)
	if err != nil {
		return err
	}

	games := storage.NewGameRepository(g.db)
	out := cmd.OutOrStdout()

	if resetDiscard && g.replaced != "" {
		if err := games.Delete(ctx, g.replaced); err != nil {
			g.Close(ctx)
			return err
		}
		fmt.Fprintf(out, "Deleted game: %s\n", g.replaced)
	}

	id := g.store.GameID()
	name := id
	if saved, err := games.Get(ctx, id); err == nil && saved != nil && saved.Name != "" {
		name = saved.Name + " (" + id + ")"
	}

	fmt.Fprintf(out, "New game: %s\n", name)
	fmt.Fprintf(out, "Scramble: %s\n", strings.Join(g.session.Scramble(), " "))
	if verbose {
		fmt.Fprintf(out, "Seed: %s\n", g.session.Seed())
	}

	return g.Close(ctx)
}
