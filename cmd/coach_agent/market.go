package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-coach/internal/pipelines"
)

var marketCommand = &cobra.Command{
	Use:   "market",
	Short: "Analyze the job market for a role",
	Long: `Reports market conditions for a role: demand, salary ranges, top skills,
and growth outlook. Optionally includes an industry analysis and, when a
profile is provided, a competitive analysis against the target role.`,
	RunE: runMarketCmd,
}

var (
	marketConfigPath string
	marketRole       string
	marketLocation   string
	marketIndustry   string
	marketProfile    string
)

func init() {
	marketCommand.Flags().StringVar(&marketConfigPath, "config", "", "Path to config.json file")
	marketCommand.Flags().StringVarP(&marketRole, "role", "r", "", "Role to analyze (required)")
	marketCommand.Flags().StringVarP(&marketLocation, "location", "l", "", "Location to scope the analysis to")
	marketCommand.Flags().StringVar(&marketIndustry, "industry", "", "Also analyze this industry")
	marketCommand.Flags().StringVarP(&marketProfile, "profile", "p", "", "Career profile JSON file for a competitive analysis")

	_ = marketCommand.MarkFlagRequired("role")
	rootCmd.AddCommand(marketCommand)
}

func runMarketCmd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx, marketConfigPath)
	if err != nil {
		return err
	}
	defer a.close()

	pipeline := pipelines.NewMarketTrendPipeline(a.llm, a.log)

	data := pipeline.MarketData(ctx, marketRole, marketLocation)
	if err := printJSON(data); err != nil {
		return err
	}

	if marketIndustry != "" {
		analysis := pipeline.IndustryAnalysis(ctx, marketIndustry)
		if err := printJSON(analysis); err != nil {
			return err
		}
	}

	if marketProfile != "" {
		profile, err := loadCareerProfile(marketProfile)
		if err != nil {
			return fmt.Errorf("failed to load profile for competitive analysis: %w", err)
		}
		comp := pipeline.CompetitiveAnalysis(ctx, profile, marketRole)
		if err := printJSON(comp); err != nil {
			return err
		}
	}
	return nil
}
