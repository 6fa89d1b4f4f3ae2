package cmd

import (
	"errors"
	"fmt"

	"demo-server/core/database"
	"demo-server/feature/hits"

	"github.com/spf13/cobra"
)

var statsLimit int

// statsCmd prints the most requested paths from the page-hit store.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the most requested paths",
	Long:  `Reads the page-hit store (database.enabled must be set) and prints the most requested paths.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv()
		if err != nil {
			return err
		}
		defer env.logger.Sync()

		if !env.cfg.Database.Enabled {
			return errors.New("page-hit store is disabled; set DATABASE_ENABLED=true")
		}

		db, err := database.Connect(env.cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}

		counts, err := hits.NewStore(db).Top(cmd.Context(), statsLimit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "=== Top Paths ===")
		if len(counts) == 0 {
			fmt.Fprintln(out, "No hits recorded yet.")
			return nil
		}
		for i, c := range counts {
			fmt.Fprintf(out, "%3d. %-50s %d\n", i+1, c.Path, c.Hits)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(statsCmd)
	statsCmd.Flags().IntVar(&statsLimit, "limit", hits.DefaultLimit, fmt.Sprintf("Number of paths to show (1-%d)", hits.MaxLimit))
}
