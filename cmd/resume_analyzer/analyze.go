package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/extract"
	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/recommend"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var (
	analyzeResume   string
	analyzeJobType  string
	analyzeLocation string
	analyzeConfig   string
	analyzeVerbose  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume file offline",
	Long: `Analyze a resume text file against the job requirement catalog without
starting the server. Salary figures are unadjusted unless the server's
regional database is used instead.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeResume, "resume", "", "Path to resume text file")
	analyzeCmd.Flags().StringVar(&analyzeJobType, "job-type", "", "Target job field (e.g. \"Software Developer\")")
	analyzeCmd.Flags().StringVar(&analyzeLocation, "location", "", "Candidate location for salary context")
	analyzeCmd.Flags().StringVar(&analyzeConfig, "config", "", "Path to JSON config file")
	analyzeCmd.Flags().BoolVar(&analyzeVerbose, "verbose", false, "Print a formatted breakdown instead of JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	if analyzeConfig != "" {
		cfg, err := config.LoadConfig(analyzeConfig)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		merged := (&config.Config{
			Resume:  analyzeResume,
			JobType: analyzeJobType,
		}).MergeWithDefaults(*cfg)
		analyzeResume = merged.Resume
		analyzeJobType = merged.JobType
		if cfg.Verbose {
			analyzeVerbose = true
		}
	}

	if analyzeResume == "" {
		return fmt.Errorf("--resume is required")
	}
	if analyzeJobType == "" {
		return fmt.Errorf("--job-type is required")
	}

	text, err := os.ReadFile(analyzeResume)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	ctx := context.Background()

	var opts []extract.Option
	var generator recommend.CourseGenerator
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		service := llm.NewService(llm.DefaultConfig(), apiKey)
		if err := service.Initialize(ctx); err != nil {
			log.Printf("generative backend unavailable, continuing without it: %v", err)
		} else {
			defer func() { _ = service.Close() }()
			opts = append(opts, extract.WithAugmenter(llm.NewSkillClassifier(service)))
			generator = recommend.NewBackendCourseGenerator(service)
		}
	}

	a := analyzer.New(recommend.NewEngine(nil, generator), opts...)

	result, err := a.Analyze(ctx, &types.AnalysisRequest{
		Text:     string(text),
		JobType:  analyzeJobType,
		Location: analyzeLocation,
	})
	if err != nil {
		return err
	}

	if analyzeVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintScores(result)
		printer.PrintSkills(&result.SkillsAnalysis)
		printer.PrintJobs(result.JobRecommendations)
		printer.PrintRecommendations("COURSE RECOMMENDATIONS", result.CourseRecommendations)
		printer.PrintRecommendations("CERTIFICATION RECOMMENDATIONS", result.CertificationRecommendations)
		return nil
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
