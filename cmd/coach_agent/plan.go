package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-coach/internal/pipelines"
)

var planCommand = &cobra.Command{
	Use:   "plan",
	Short: "Generate a career development plan",
	Long: `Builds a structured career plan from the profile: short, medium, and
long term goals with concrete milestones. Unlike insights, plan generation
fails loudly when the model cannot produce a usable plan.`,
	RunE: runPlanCmd,
}

var (
	planConfigPath string
	planProfile    string
	planTargetRole string
	planLearning   bool
)

func init() {
	planCommand.Flags().StringVar(&planConfigPath, "config", "", "Path to config.json file")
	planCommand.Flags().StringVarP(&planProfile, "profile", "p", "", "Path to career profile JSON file (required)")
	planCommand.Flags().StringVar(&planTargetRole, "target-role", "", "Target role for the learning path")
	planCommand.Flags().BoolVar(&planLearning, "learning-path", false, "Also generate a learning path toward the target role")

	_ = planCommand.MarkFlagRequired("profile")
	rootCmd.AddCommand(planCommand)
}

func runPlanCmd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx, planConfigPath)
	if err != nil {
		return err
	}
	defer a.close()

	profile, err := loadCareerProfile(planProfile)
	if err != nil {
		return err
	}

	pipeline := pipelines.NewPlanPipeline(a.llm, a.log)
	plan, err := pipeline.Generate(ctx, profile)
	if err != nil {
		var genErr *pipelines.PlanGenerationFailedError
		if errors.As(err, &genErr) {
			return fmt.Errorf("could not generate a plan, try again: %w", err)
		}
		return err
	}

	if err := printJSON(plan); err != nil {
		return err
	}

	if planLearning {
		learning := pipelines.NewLearningPathPipeline(a.llm, a.log)
		path := learning.Generate(ctx, profile, planTargetRole)
		return printJSON(path)
	}
	return nil
}
