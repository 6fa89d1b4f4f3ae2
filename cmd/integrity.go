package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"demo-server/feature/integrity"

	"github.com/spf13/cobra"
)

var integrityJSON bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Run deployment checks against the served directory",
	Long: `Checks that the served directory is ready to ship: required files exist, the
PWA manifest declares its required fields, the service worker handles install
and fetch, and every JavaScript module under js/ is non-empty.

Exits with a non-zero status when any check fails.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv()
		if err != nil {
			return err
		}
		defer env.logger.Sync()

		svc := integrity.NewService(env.baseDir, env.cfg.Server.RequiredFiles, env.logger)
		report, err := svc.Run(cmd.Context())
		if err != nil {
			return fmt.Errorf("integrity check failed: %w", err)
		}

		out := cmd.OutOrStdout()
		if integrityJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(report); err != nil {
				return fmt.Errorf("failed to encode report: %w", err)
			}
		} else {
			printIntegrityReport(out, report)
		}

		if !report.OK() {
			return fmt.Errorf("%d of %d integrity checks failed", report.Summary.Failed, report.Summary.Total)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.Flags().BoolVar(&integrityJSON, "json", false, "Print the report as JSON")
}

func printIntegrityReport(w io.Writer, report *integrity.Report) {
	fmt.Fprintf(w, "=== Deployment Checks: %s ===\n", report.BaseDir)
	for _, c := range report.Checks {
		fmt.Fprintf(w, "[%s] %s: %s\n", c.Status, c.Check, c.Message)
	}

	s := report.Summary
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total Checks: %d\n", s.Total)
	fmt.Fprintf(w, "Passed: %d\n", s.Passed)
	fmt.Fprintf(w, "Failed: %d\n", s.Failed)
	fmt.Fprintf(w, "Warnings: %d\n", s.Warnings)
	fmt.Fprintf(w, "Success Rate: %s\n", s.SuccessRate)
}
