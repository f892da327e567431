package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-scribble/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List reference image providers",
	Long:  `Display all registered reference image providers. Select one with reference.provider in the config or SCRIBBLE_REFERENCE_PROVIDER.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	providers := registry.List()

	if len(providers) == 0 {
		fmt.Println("No providers registered.")
		return
	}

	fmt.Println("Reference providers:")
	fmt.Println()

	for _, p := range providers {
		fmt.Printf("  %-12s  %s\n", p.ID, p.Title)
	}

	fmt.Println()
	fmt.Println("Play offline with: scribble play --offline")
}
