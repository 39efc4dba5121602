package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/brewlog-app/brewlog/internal/config"
	"github.com/brewlog-app/brewlog/internal/database"
)

var migrateFile string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply a SQL migration file",
	Long: `Apply a SQL migration file against the configured database.

If execution fails (for example because the connected role lacks DDL
privileges) the raw SQL is printed so it can be run manually through the
database console.`,
	Example: `  brewlog migrate
  brewlog migrate -f migrations/20240601_bean_comments.sql`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runMigrate(); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	migrateCmd.Flags().StringVarP(&migrateFile, "file", "f", "migrations/20240601_bean_comments.sql", "SQL file to apply")
}

func runMigrate() error {
	sqlBytes, err := os.ReadFile(migrateFile)
	if err != nil {
		return fmt.Errorf("failed to read migration file: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Printf("Applying %s", migrateFile)
	if err := db.Exec(string(sqlBytes)).Error; err != nil {
		log.Printf("Migration failed: %v", err)
		log.Println("Run the following SQL manually against the database:")
		fmt.Println(string(sqlBytes))
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Println("Migration applied")
	return nil
}
