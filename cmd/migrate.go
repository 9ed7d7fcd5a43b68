package cmd

import (
	"fmt"

	"pharmacy/internal/adapters/out/postgres"
	"pharmacy/internal/pkg/auth"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(*cobra.Command, []string) error {
		logger := setupLogging(cfg.Logging)

		db, err := openDatabase(cfg.Database)
		if err != nil {
			return err
		}
		if err := postgres.Migrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}

		logger.Info().Msg("schema is up to date")
		return nil
	},
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password <password>",
	Short: "Print the bcrypt hash to use as auth.admin_password_hash",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := auth.NewBcryptHasher(cfg.Auth.BcryptCost).Hash(args[0])
		if err != nil {
			return err
		}
		cmd.Println(hash)
		return nil
	},
}
