package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/paletteplay/paletteplay/internal/backup"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Backup operations",
	Long:  "Export the row-store tables to local JSON snapshots",
}

var backupCreateCmd = &cobra.Command{
	Use:   "create <directory>",
	Short: "Write a snapshot of all tables",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		rows, err := openRowStore()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		exporter := backup.NewExporter(rows, args[0])
		path, err := exporter.Export(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating backup: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Backup written: %s\n", path)
	},
}

func init() {
	backupCmd.AddCommand(backupCreateCmd)
	rootCmd.AddCommand(backupCmd)
}
