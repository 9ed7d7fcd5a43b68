package cmd

import (
	"fmt"
	"os"

	"pharmacy/internal/adapters/out/postgres"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	cfgFile string
	cfg     Config
)

var rootCmd = &cobra.Command{
	Use:   "pharmacy",
	Short: "Pharmacy order and inventory backend",
	Long: `Pharmacy order and inventory backend: catalog, orders with stock
reservation, courier delivery, an admin API and a WhatsApp bot.`,
	SilenceUsage: true,
	PersistentPreRunE: func(*cobra.Command, []string) error {
		loaded, err := LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, hashPasswordCmd)
}

func openDatabase(c DatabaseConfig) (*gorm.DB, error) {
	return postgres.Open(c.DSN, postgres.PoolConfig{
		MaxOpenConns:    c.MaxOpenConns,
		MaxIdleConns:    c.MaxIdleConns,
		ConnMaxLifetime: c.ConnMaxLifetime,
	})
}
