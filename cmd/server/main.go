// Package main is the entry point for the CodeQuest API server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "codequest-api",
	Short: "CodeQuest progression API server",
	Long:  `CodeQuest API serves player progression, the quest map, characters, combat, and inventory over a JSON HTTP interface.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
