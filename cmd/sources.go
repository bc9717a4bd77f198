package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/molbridge/molbridge/pugrest"
)

var sourcesAssay bool

// sourcesCmd represents the sources command
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List substance or assay depositors",
	RunE:  runSources,
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connectivity to the PubChem API",
	RunE:  runTest,
}

func init() {
	sourcesCmd.Flags().BoolVar(&sourcesAssay, "assay", false, "list assay depositors instead of substance depositors")
}

func runSources(cmd *cobra.Command, args []string) error {
	domain := pugrest.DomainSourcesSubstance
	if sourcesAssay {
		domain = pugrest.DomainSourcesAssay
	}

	names, err := client.SourceNames(context.Background(), domain)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Printf("Testing connection to PubChem at %s...\n", cfg.PubChem.BaseURL)

	// Water (CID 962) is as stable a record as it gets.
	rows, err := client.Properties(context.Background(), []uint32{962}, pugrest.MolecularFormula)
	if err != nil {
		return fmt.Errorf("connection test failed: %w", err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("connection test returned no data")
	}

	fmt.Println("✓ Connection successful!")
	fmt.Printf("- CID 962 molecular formula: %v\n", rows[0]["MolecularFormula"])
	return nil
}
