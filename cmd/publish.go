package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"demo-server/core/storage"
	"demo-server/feature/publish"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the publish command
	publishPrune  bool
	publishDryRun bool
	publishYes    bool
	publishPrefix string
)

// publishCmd mirrors the served directory into the configured bucket.
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Mirror the served directory into the storage bucket",
	Long: `Compares the served directory with the objects under the storage prefix and
uploads every file that is missing or differs in size.

Examples:
  # Show what would change
  publish --dry-run

  # Upload with interactive confirmation
  publish

  # Upload and delete orphaned objects without prompting
  publish --prune --yes`,
	Args: cobra.NoArgs,
	RunE: runPublish,
}

func init() {
	publishCmd.Flags().BoolVar(&publishPrune, "prune", false, "Delete objects that have no local file")
	publishCmd.Flags().BoolVar(&publishDryRun, "dry-run", false, "Plan only; make no changes")
	publishCmd.Flags().BoolVar(&publishYes, "yes", false, "Auto-confirm changes (non-interactive)")
	publishCmd.Flags().StringVar(&publishPrefix, "prefix", "", "Object key prefix (defaults to storage.prefix)")

	RootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	env, err := loadEnv()
	if err != nil {
		return err
	}
	l := env.logger
	defer l.Sync()

	client, err := storage.NewClient(env.cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	bucket := env.cfg.Storage.Bucket
	prefix := env.cfg.Storage.Prefix
	if cmd.Flags().Changed("prefix") {
		prefix = publishPrefix
	}

	opts := publish.Options{
		Prune:     publishPrune,
		DryRun:    publishDryRun,
		Confirmed: false, // Will be set after confirmation prompt
	}

	// Step 1: Plan (always runs)
	l.Info("Planning publish...", zap.String("bucket", bucket), zap.String("prefix", prefix), zap.String("dir", env.baseDir))
	plan, err := publish.BuildPlan(ctx, client, bucket, prefix, env.baseDir, opts)
	if err != nil {
		return fmt.Errorf("failed to plan publish: %w", err)
	}

	// Step 2: Print report
	printPublishReport(l, plan)

	if len(plan.Actions) == 0 {
		l.Info("Bucket is up to date.")
		return nil
	}

	if publishDryRun {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}

	// Step 3: Confirm
	if !confirmAction(cmd.InOrStdin(), cmd.OutOrStdout(), publishYes) {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}
	opts.Confirmed = true

	// Step 4: Apply
	created, err := publish.EnsureBucket(ctx, client, bucket, env.cfg.Storage.Region)
	if err != nil {
		return err
	}
	if created {
		l.Info("Created bucket", zap.String("bucket", bucket))
	}

	l.Info("Applying actions...")
	executed, err := publish.Apply(ctx, client, bucket, env.baseDir, plan, opts, l)
	if err != nil {
		return fmt.Errorf("failed to apply plan after %d actions: %w", executed, err)
	}

	l.Info("Successfully executed actions", zap.Int("count", executed))
	return nil
}

// printPublishReport prints a formatted publish plan using logger.
func printPublishReport(l *zap.Logger, plan *publish.Plan) {
	s := plan.Summary

	l.Info("Publish report",
		zap.Int("local_files", s.LocalFiles),
		zap.Int("remote_objects", s.RemoteObjects),
		zap.Int("unchanged", s.Unchanged),
		zap.Int("uploads", s.Uploads),
		zap.Int("deletes", s.Deletes),
	)

	if s.Orphans > s.Deletes {
		l.Info("Orphaned objects kept; use --prune to delete them", zap.Int("count", s.Orphans-s.Deletes))
	}

	// Show sample of actions (max 5 for logger)
	maxShow := min(len(plan.Actions), 5)
	for _, action := range plan.Actions[:maxShow] {
		l.Info("Sample action",
			zap.String("type", string(action.Type)),
			zap.String("key", action.Key),
			zap.String("reason", action.Reason),
		)
	}
	if len(plan.Actions) > maxShow {
		l.Info("Additional actions not shown", zap.Int("count", len(plan.Actions)-maxShow))
	}
}

// confirmAction prompts the user for confirmation unless autoConfirm is set.
func confirmAction(in io.Reader, out io.Writer, autoConfirm bool) bool {
	if autoConfirm {
		fmt.Fprintln(out, "\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Fprint(out, "\n⚠️  Type 'yes' to confirm changes to the bucket: ")
	reader := bufio.NewReader(in)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
