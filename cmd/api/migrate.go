package main

import (
	"calendar-events/internal/config"
	"calendar-events/migrations"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create SQL schemas and apply migration plans",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	c, log, err := loadRuntime()
	if err != nil {
		return err
	}
	if c.StoreDriver == config.DriverMemory {
		return errors.New("the memory store has no schema to migrate")
	}

	log.Info("Applying SQL migration...")

	db, err := openDB(c)
	if err != nil {
		return err
	}
	defer db.Close()

	n, err := migrations.Apply(db.DB, c.StoreDriver)
	if err != nil {
		return errors.Wrap(err, "migration failed")
	}

	log.Infof("Migration successful! Applied a total of %d migrations.", n)
	return nil
}
