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

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank candidates against one requirement",
	Long:  "Scores every candidate against a requirement and writes the candidates ordered by overall score, best first.",
	RunE:  runRank,
}

var (
	rankRequirement   string
	rankCandidates    string
	rankOutput        string
	rankVerbose       bool
	rankConcurrency   int
	rankRequirementID string
)

func init() {
	rankCmd.Flags().StringVarP(&rankRequirement, "requirement", "r", "", "Path to requirement record (JSON or text) (required)")
	rankCmd.Flags().StringVarP(&rankCandidates, "candidates", "c", "", "Directory of candidate records or a JSON file of candidates (required)")
	rankCmd.Flags().StringVarP(&rankOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	rankCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print a human-readable summary")
	rankCmd.Flags().IntVar(&rankConcurrency, "concurrency", -1, "Candidates scored in parallel (default from config engine.concurrency, 0 = unbounded)")
	rankCmd.Flags().StringVar(&rankRequirementID, "requirement-id", "", "Requirement id; saves every score to the configured store")

	if err := rankCmd.MarkFlagRequired("requirement"); err != nil {
		panic(fmt.Sprintf("failed to mark requirement flag as required: %v", err))
	}
	if err := rankCmd.MarkFlagRequired("candidates"); err != nil {
		panic(fmt.Sprintf("failed to mark candidates flag as required: %v", err))
	}

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	requirement, err := loadRecord(rankRequirement)
	if err != nil {
		return err
	}
	candidates, err := loadCandidates(rankCandidates)
	if err != nil {
		return err
	}

	concurrency := rankConcurrency
	if concurrency < 0 {
		concurrency = appConfig.Engine.Concurrency
	}

	ranked, err := newEngine().RankCandidates(ctx, requirement, candidates, concurrency)
	if err != nil {
		return fmt.Errorf("failed to rank candidates: %w", err)
	}

	for _, rc := range ranked {
		if err := schemas.ValidateResult(rc.Result); err != nil {
			return fmt.Errorf("scoring result for %s failed schema validation: %w", rc.ID, err)
		}
	}

	if err := writeJSON(rankOutput, ranked); err != nil {
		return err
	}

	if rankRequirementID != "" {
		scores := make([]db.MatchScore, len(ranked))
		for i, rc := range ranked {
			scores[i] = db.NewMatchScore(rc.ID, rankRequirementID, rc.Result)
		}
		n, err := saveScores(ctx, appConfig.Store, scores...)
		if err != nil {
			return fmt.Errorf("failed to save scores: %w", err)
		}
		logger.Info("scores saved", zap.String("requirement_id", rankRequirementID), zap.Int("count", n))
	}

	if rankVerbose {
		observability.NewPrinter(summaryWriter(rankOutput)).PrintRanking(ranked)
	}

	if rankOutput != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Successfully ranked %d candidates to %s\n", len(ranked), rankOutput)
	}
	return nil
}
