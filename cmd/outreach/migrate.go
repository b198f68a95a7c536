package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sunglassai/outreach/internal/auth"
	"github.com/sunglassai/outreach/internal/config"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run accounts database migrations",
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().StringVarP(&configFile, "config", "c", "config.yaml", "Path to configuration file")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	db, err := auth.OpenDB(cfg.Accounts.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return err
	}

	fmt.Println("Migrations completed successfully")
	return nil
}
