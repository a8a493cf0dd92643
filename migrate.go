package main

import (
	"notes-api/config/setup"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the notes table if it does not exist, then exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := setup.InitDatabase(cmd.Context(), cfg, logger)
		if err != nil {
			logger.Error("migration failed", "error", err)
			return err
		}
		defer db.Close()

		logger.Info("schema is up to date")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
