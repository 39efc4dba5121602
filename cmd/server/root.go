package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "brewlog",
	Short: "Brewlog - personal coffee tracking service",
	Long: `Brewlog is a personal coffee tracking service.

It provides a REST API for suppliers, beans, brew methods, extractions,
bean ratings with comments, and a public tasting feed.

Run 'brewlog serve' to start the server, or 'brewlog migrate' to apply
the SQL migrations.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}
