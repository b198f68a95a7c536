package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sunglassai/outreach/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Brand catalog commands",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog brands",
	RunE:  runCatalogList,
}

var catalogExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the catalog as CSV (stdout when no file is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCatalogExport,
}

var (
	catalogQuery    string
	catalogCategory string
)

func init() {
	catalogCmd.PersistentFlags().StringVar(&catalogQuery, "query", "", "Filter by name, category, style or specialty")
	catalogCmd.PersistentFlags().StringVar(&catalogCategory, "category", "", "Filter by exact category")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogExportCmd)
}

func filteredCatalog() []catalog.Brand {
	return catalog.FilterByCategory(catalog.Search(catalog.All(), catalogQuery), catalogCategory)
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	brands := filteredCatalog()

	fmt.Printf("%-4s  %-28s  %-14s  %-30s  %s\n", "ID", "Name", "Category", "Email", "Headquarters")
	for _, b := range brands {
		fmt.Printf("%-4s  %-28s  %-14s  %-30s  %s\n", b.ID, b.Name, b.Category, b.Email, b.Headquarters)
	}
	fmt.Printf("\n%d brands\n", len(brands))
	return nil
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	out := os.Stdout
	if len(args) == 1 {
		f, err := os.Create(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	return catalog.WriteCSV(out, filteredCatalog())
}
