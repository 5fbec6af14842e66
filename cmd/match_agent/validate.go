package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-matcher/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a ScoringResult JSON file",
	Long:  "Validates a ScoringResult JSON file, such as the output of score --out, against the embedded ScoringResult schema.",
	RunE:  runValidate,
}

var validateInput string

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to ScoringResult JSON file (required)")

	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	if err := schemas.ValidateFile(validateInput); err != nil {
		return fmt.Errorf("%s: %w", validateInput, err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Validation passed: %s\n", validateInput)
	return nil
}
