package cmd

import (
	"context"
	"log"
	"time"

	"inventory-manager/core/config"
	"inventory-manager/core/database"
	"inventory-manager/core/logger"
	"inventory-manager/feature/inventory"
	"inventory-manager/feature/reconciliation"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cleanupOlderThan time.Duration
	cleanupApply     bool
)

// cleanupCmd cancels reconciliations that were started and then
// abandoned. Cancellation never touches stock, so this is safe to run
// on a schedule.
var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Cancel abandoned reconciliations",
	Long: `Finds in-progress reconciliations older than the given age and
cancels them. Without --yes the command only reports what it would do.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}

		repo := reconciliation.NewRepository(db)
		service := reconciliation.NewService(repo, inventory.NewAdapters(db), nil, logg)

		ctx := context.Background()
		cutoff := time.Now().Add(-cleanupOlderThan)

		stale, err := repo.ListStaleInProgress(ctx, cutoff)
		if err != nil {
			logg.Fatal("Failed to list stale reconciliations", zap.Error(err))
		}
		if len(stale) == 0 {
			logg.Info("Nothing to clean up", zap.Time("cutoff", cutoff))
			return
		}

		cancelled := 0
		for _, rec := range stale {
			l := logg.With(
				zap.String("reconciliation_id", rec.ID),
				zap.String("tenant_id", rec.TenantID),
				zap.Time("created_at", rec.CreatedAt),
			)
			if !cleanupApply {
				l.Info("Would cancel (dry run)")
				continue
			}
			if _, err := service.Cancel(ctx, rec.TenantID, rec.ID); err != nil {
				// Likely completed or cancelled by the tenant in the
				// meantime; log and keep going.
				l.Warn("Skipped", zap.Error(err))
				continue
			}
			cancelled++
			l.Info("Cancelled")
		}

		logg.Info("Cleanup finished",
			zap.Int("stale", len(stale)),
			zap.Int("cancelled", cancelled),
			zap.Bool("dry_run", !cleanupApply),
		)
	},
}

func init() {
	cleanupCmd.Flags().DurationVar(&cleanupOlderThan, "older-than", 7*24*time.Hour, "Age beyond which an in-progress reconciliation is considered abandoned")
	cleanupCmd.Flags().BoolVar(&cleanupApply, "yes", false, "Actually cancel instead of reporting")
	RootCmd.AddCommand(cleanupCmd)
}
