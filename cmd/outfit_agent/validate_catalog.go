package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/elara/elara-outfits/internal/catalog"
	"github.com/spf13/cobra"
)

var validateCatalogCmd = &cobra.Command{
	Use:   "validate-catalog",
	Short: "Validate a product catalog file",
	Long:  "Validates a catalog JSON file against the product schema and reports every violation.",
	RunE:  runValidateCatalog,
}

var validateCatalogInput string

func init() {
	validateCatalogCmd.Flags().StringVarP(&validateCatalogInput, "in", "i", "", "Path to catalog JSON file (required)")
	if err := validateCatalogCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	rootCmd.AddCommand(validateCatalogCmd)
}

func runValidateCatalog(_ *cobra.Command, _ []string) error {
	if _, err := os.Stat(validateCatalogInput); os.IsNotExist(err) {
		return fmt.Errorf("catalog file not found: %s", validateCatalogInput)
	}

	products, err := catalog.ValidateFile(validateCatalogInput)
	if err != nil {
		var verr *catalog.ValidationError
		if errors.As(err, &verr) {
			fmt.Printf("Catalog is invalid: %d violation(s)\n", len(verr.Errors))
			for _, fe := range verr.Errors {
				fmt.Printf("  - %s: %s\n", fe.Field, fe.Message)
			}
			return fmt.Errorf("catalog validation failed")
		}
		return err
	}

	fmt.Printf("Catalog is valid: %d product(s)\n", len(products))
	return nil
}
