package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/brewlog-app/brewlog/internal/config"
	"github.com/brewlog-app/brewlog/internal/database"
	"github.com/brewlog-app/brewlog/internal/localstore"
	"github.com/brewlog-app/brewlog/internal/repository"
)

var (
	extractionsFile string
	extractionsUser string
	skipUnrated     bool
)

var importExtractionsCmd = &cobra.Command{
	Use:   "import-extractions",
	Short: "Import a brew log from a JSON file",
	Long: `Import extraction entries from a local JSON store file into the
database, attributing them to the given user.

By default entries without a rating are skipped.`,
	Example: `  brewlog import-extractions -f brewlog.json -u <user-id>
  brewlog import-extractions -f brewlog.json -u <user-id> --skip-unrated=false`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runImportExtractions(); err != nil {
			log.Fatal(err)
		}
	},
}

var exportExtractionsCmd = &cobra.Command{
	Use:   "export-extractions",
	Short: "Export a user's brew log to a JSON file",
	Example: `  brewlog export-extractions -f brewlog.json -u <user-id>`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runExportExtractions(); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	for _, cmd := range []*cobra.Command{importExtractionsCmd, exportExtractionsCmd} {
		cmd.Flags().StringVarP(&extractionsFile, "file", "f", "", "JSON store file (required)")
		cmd.Flags().StringVarP(&extractionsUser, "user", "u", "", "User ID to attribute entries to (required)")
		cmd.MarkFlagRequired("file")
		cmd.MarkFlagRequired("user")
	}
	importExtractionsCmd.Flags().BoolVar(&skipUnrated, "skip-unrated", true, "Skip entries without a rating")

	rootCmd.AddCommand(importExtractionsCmd)
	rootCmd.AddCommand(exportExtractionsCmd)
}

func runImportExtractions() error {
	store, err := localstore.Open(extractionsFile)
	if err != nil {
		return err
	}

	extractionRepo, err := openExtractionRepo()
	if err != nil {
		return err
	}

	entries := store.List()
	log.Printf("Starting import of %d extractions from %s", len(entries), extractionsFile)

	imported := 0
	skipped := 0
	for _, entry := range entries {
		if skipUnrated && entry.Rating == 0 {
			log.Printf("Skipped %s (%s): unrated", entry.BeanName, entry.Date)
			skipped++
			continue
		}

		entry.UserID = extractionsUser
		if err := extractionRepo.Create(&entry); err != nil {
			return fmt.Errorf("import failed for %s: %w", entry.ID, err)
		}
		imported++
	}

	log.Printf("Import complete: %d imported, %d skipped", imported, skipped)
	return nil
}

func runExportExtractions() error {
	extractionRepo, err := openExtractionRepo()
	if err != nil {
		return err
	}

	store, err := localstore.Open(extractionsFile)
	if err != nil {
		return err
	}

	entries, err := extractionRepo.FindAllByUser(extractionsUser)
	if err != nil {
		return fmt.Errorf("failed to fetch extractions: %w", err)
	}

	for _, entry := range entries {
		if _, err := store.Add(entry); err != nil {
			return fmt.Errorf("export failed for %s: %w", entry.ID, err)
		}
	}

	log.Printf("Exported %d extractions to %s", len(entries), extractionsFile)
	return nil
}

func openExtractionRepo() (*repository.ExtractionRepository, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return repository.NewExtractionRepository(db), nil
}
