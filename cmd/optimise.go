package cmd

import (
	"context"
	"log"

	"id-reserve/core/config"
	"id-reserve/core/database"
	"id-reserve/core/logger"
	"id-reserve/core/queue"
	"id-reserve/feature/catalog"
	"id-reserve/feature/reservation"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var optimiseType int32

// optimiseCmd compacts reservations from the command line, for cron use
// or manual maintenance.
var optimiseCmd = &cobra.Command{
	Use:   "optimise",
	Short: "Compact reservation rows",
	Long: `Drops reserved IDs that have since been published and merges the
remaining IDs into minimal contiguous rows. Runs over every reservation
type unless --type is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
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

		resolver := catalog.NewResolver(catalog.NewSQLIndex(db), catalog.NewSQLRegistry(db))
		// Compaction is the job here, never queue it back to the broker.
		svc := reservation.NewService(reservation.NewStore(db), resolver, logg, queue.Config{Enabled: false})

		ctx := context.Background()
		if cmd.Flags().Changed("type") {
			rt, err := reservation.TypeFromCode(optimiseType)
			if err != nil {
				return err
			}
			logg.Info("Compacting one type", zap.String("type", rt.String()))
			return svc.CompactType(ctx, rt)
		}

		logg.Info("Compacting all types")
		return svc.CompactAll(ctx)
	},
}

func init() {
	optimiseCmd.Flags().Int32Var(&optimiseType, "type", 0, "reservation type code to compact (default: all)")
	RootCmd.AddCommand(optimiseCmd)
}
