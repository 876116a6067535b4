package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/career-coach/internal/pipelines"
)

var insightsCommand = &cobra.Command{
	Use:   "insights",
	Short: "Generate career insights from a profile",
	Long: `Analyzes the career profile and produces a prioritized list of insights:
trends, skill gaps, opportunities, and recommended next steps. Always
produces at least one insight, even when the model is unavailable.`,
	RunE: runInsightsCmd,
}

var (
	insightsConfigPath string
	insightsProfile    string
)

func init() {
	insightsCommand.Flags().StringVar(&insightsConfigPath, "config", "", "Path to config.json file")
	insightsCommand.Flags().StringVarP(&insightsProfile, "profile", "p", "", "Path to career profile JSON file (required)")

	_ = insightsCommand.MarkFlagRequired("profile")
	rootCmd.AddCommand(insightsCommand)
}

func runInsightsCmd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx, insightsConfigPath)
	if err != nil {
		return err
	}
	defer a.close()

	profile, err := loadCareerProfile(insightsProfile)
	if err != nil {
		return err
	}

	pipeline := pipelines.NewInsightPipeline(a.llm, a.log)
	insights := pipeline.Generate(ctx, profile)
	return printJSON(insights)
}
