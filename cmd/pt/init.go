package main

import (
	"fmt"
	"path/filepath"

	"github.com/jacksmith/pt/internal/storage"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty data file",
	Long: `Create an empty data file in the current directory.

The file holds the three section headers and nothing else. pt also works
without init: a missing data file is treated as an empty shop.

Fails if the data file already exists.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	s, err := storage.Init(".")
	if err != nil {
		return err
	}

	fmt.Printf("Initialized pt in %s\n", filepath.Base(s.DataPath()))
	return nil
}
