package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/candidate-matcher/internal/db"
	"github.com/jonathan/candidate-matcher/internal/observability"
	"github.com/jonathan/candidate-matcher/internal/schemas"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one candidate against one requirement",
	Long:  "Scores a candidate record against a requirement record and writes the ScoringResult JSON. Records are JSON objects or plain text files.",
	RunE:  runScore,
}

var (
	scoreCandidate     string
	scoreRequirement   string
	scoreOutput        string
	scoreVerbose       bool
	scoreCandidateID   string
	scoreRequirementID string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreCandidate, "candidate", "c", "", "Path to candidate record (JSON or text) (required)")
	scoreCmd.Flags().StringVarP(&scoreRequirement, "requirement", "r", "", "Path to requirement record (JSON or text) (required)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output ScoringResult JSON file (default stdout)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a human-readable summary")
	scoreCmd.Flags().StringVar(&scoreCandidateID, "candidate-id", "", "Candidate id; with --requirement-id, saves the score to the configured store")
	scoreCmd.Flags().StringVar(&scoreRequirementID, "requirement-id", "", "Requirement id; with --candidate-id, saves the score to the configured store")

	if err := scoreCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}
	if err := scoreCmd.MarkFlagRequired("requirement"); err != nil {
		panic(fmt.Sprintf("failed to mark requirement flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// 1. Load records
	candidate, err := loadRecord(scoreCandidate)
	if err != nil {
		return err
	}
	requirement, err := loadRecord(scoreRequirement)
	if err != nil {
		return err
	}

	// 2. Score
	result, err := newEngine().ScoreCandidate(ctx, candidate, requirement)
	if err != nil {
		return fmt.Errorf("failed to score candidate: %w", err)
	}

	// 3. Validate output against schema
	if err := schemas.ValidateResult(result); err != nil {
		return fmt.Errorf("scoring result failed schema validation: %w", err)
	}

	// 4. Write output
	if err := writeJSON(scoreOutput, result); err != nil {
		return err
	}

	// 5. Persist when both ids are given
	if scoreCandidateID != "" && scoreRequirementID != "" {
		if _, err := saveScores(ctx, appConfig.Store, db.NewMatchScore(scoreCandidateID, scoreRequirementID, result)); err != nil {
			return fmt.Errorf("failed to save score: %w", err)
		}
		logger.Info("score saved",
			zap.String("candidate_id", scoreCandidateID),
			zap.String("requirement_id", scoreRequirementID),
		)
	}

	if scoreVerbose {
		observability.NewPrinter(summaryWriter(scoreOutput)).PrintScoringResult(&result)
	}

	if scoreOutput != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Scored candidate: %d (%s), written to %s\n", result.OverallScore, result.MatchLevel, scoreOutput)
	}
	return nil
}

// summaryWriter keeps human-readable output off stdout when stdout carries JSON.
func summaryWriter(outPath string) *os.File {
	if outPath == "" {
		return os.Stderr
	}
	return os.Stdout
}
