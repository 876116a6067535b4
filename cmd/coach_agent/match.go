package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-coach/internal/ingestion"
	"github.com/jonathan/career-coach/internal/matching"
	"github.com/jonathan/career-coach/internal/types"
)

var matchCommand = &cobra.Command{
	Use:   "match",
	Short: "Score a candidate profile against a job posting",
	Long: `Embeds the candidate profile and the job posting, scores their similarity,
and asks the model for a qualitative analysis. Falls back to keyword matching
when the embedding service is unavailable; the command always produces a result.`,
	RunE: runMatchCmd,
}

var (
	matchConfigPath string
	matchProfile    string
	matchJob        string
	matchJobURL     string
	matchJobTitle   string
)

func init() {
	matchCommand.Flags().StringVar(&matchConfigPath, "config", "", "Path to config.json file")
	matchCommand.Flags().StringVarP(&matchProfile, "profile", "p", "", "Path to candidate profile JSON file (required)")
	matchCommand.Flags().StringVarP(&matchJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	matchCommand.Flags().StringVar(&matchJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	matchCommand.Flags().StringVar(&matchJobTitle, "job-title", "", "Job title")

	_ = matchCommand.MarkFlagRequired("profile")
	rootCmd.AddCommand(matchCommand)
}

func runMatchCmd(cmd *cobra.Command, _ []string) error {
	if (matchJob == "") == (matchJobURL == "") {
		return fmt.Errorf("exactly one of --job or --job-url is required")
	}

	ctx := cmd.Context()
	a, err := newApp(ctx, matchConfigPath)
	if err != nil {
		return err
	}
	defer a.close()

	profile, err := loadCandidateProfile(matchProfile)
	if err != nil {
		return err
	}

	var jobDescription string
	if matchJobURL != "" {
		jobDescription, err = ingestion.FetchJobPosting(ctx, matchJobURL)
		if err != nil {
			return err
		}
	} else {
		data, err := os.ReadFile(matchJob)
		if err != nil {
			return fmt.Errorf("failed to read job file: %w", err)
		}
		jobDescription = ingestion.CleanText(string(data))
	}

	engine := matching.NewEngine(a.embedder, a.llm, a.log)
	result, err := engine.MatchJob(ctx, profile, matchJobTitle, jobDescription)
	if err != nil {
		return err
	}

	return printJSON(result)
}

func loadCandidateProfile(path string) (*types.CandidateProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	profile.Normalize()
	return &profile, nil
}
