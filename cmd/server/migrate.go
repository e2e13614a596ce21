package main

import (
	"github.com/fadilmartias/bizsim/internal/logger"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := ConnectDB()
		if err != nil {
			return err
		}
		if err := Migrate(db); err != nil {
			return err
		}
		logger.Log.Info("migration complete")
		return nil
	},
}
