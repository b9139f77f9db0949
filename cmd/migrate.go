package cmd

import (
	"log"

	"inventory-manager/core/config"
	"inventory-manager/core/database"
	"inventory-manager/core/logger"
	invmodels "inventory-manager/feature/inventory/models"
	"inventory-manager/feature/reconciliation/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var migrateCheck bool

// migrateCmd creates or updates the database schema.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Creates or updates the tables backing inventory and reconciliation.
With --check, prints the live column layout of each table instead of
changing anything.`,
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

		entities := []any{
			&invmodels.Material{},
			&invmodels.FinishedPiece{},
			&models.Reconciliation{},
			&models.ReconciliationItem{},
		}

		if migrateCheck {
			for _, entity := range entities {
				stmt := &gorm.Statement{DB: db}
				if err := stmt.Parse(entity); err != nil {
					logg.Fatal("Failed to parse model", zap.Error(err))
				}
				table := stmt.Schema.Table

				if !db.Migrator().HasTable(entity) {
					logg.Warn("Table missing", zap.String("table", table))
					continue
				}
				columns, err := database.GetTableColumns(db, table)
				if err != nil {
					logg.Fatal("Failed to inspect table", zap.String("table", table), zap.Error(err))
				}
				for _, col := range columns {
					logg.Info("Column",
						zap.String("table", table),
						zap.String("field", col.Field),
						zap.String("type", col.Type),
					)
				}
			}
			return
		}

		if err := db.AutoMigrate(entities...); err != nil {
			logg.Fatal("Migration failed", zap.Error(err))
		}
		logg.Info("Migration complete", zap.Int("tables", len(entities)))
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateCheck, "check", false, "Inspect the live schema instead of migrating")
	RootCmd.AddCommand(migrateCmd)
}
