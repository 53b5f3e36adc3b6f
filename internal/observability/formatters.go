// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScores outputs the score breakdown for an analysis.
func (p *Printer) PrintScores(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:     %d/100\n", result.OverallScore))
	sb.WriteString(fmt.Sprintf("Skills:      %d/100 (confidence %d%%)\n",
		result.SkillsAnalysis.SkillScores.Total, result.SkillsAnalysis.SkillScores.Confidence))
	sb.WriteString(fmt.Sprintf("Education:   %d/100\n", result.EducationAnalysis.Score))
	sb.WriteString(fmt.Sprintf("Experience:  %d/100\n", result.ExperienceScore))
	sb.WriteString(fmt.Sprintf("Readability: %d/100 (%d words, %d sentences)",
		result.TextQuality.ReadabilityScore, result.TextQuality.WordCount, result.TextQuality.SentenceCount))

	p.printBox("ANALYSIS SCORES", sb.String())
}

// PrintSkills outputs matched and missing skills.
func (p *Printer) PrintSkills(analysis *types.SkillsAnalysis) {
	if analysis == nil || (len(analysis.MatchedSkills) == 0 && len(analysis.MissingSkills) == 0) {
		return
	}

	var sb strings.Builder

	if len(analysis.MatchedSkills) > 0 {
		sb.WriteString("Matched:\n")
		count := min(len(analysis.MatchedSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			s := analysis.MatchedSkills[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", s.Name, s.Proficiency))
		}
		if len(analysis.MatchedSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.MatchedSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(analysis.MissingSkills) > 0 {
		sb.WriteString("Missing:\n")
		count := min(len(analysis.MissingSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			ws := analysis.MissingSkills[i]
			sb.WriteString(fmt.Sprintf("  • %s (importance %d)\n", ws.Name, ws.Importance))
		}
		if len(analysis.MissingSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.MissingSkills)-maxItemsToShow))
		}
	}

	p.printBox("SKILL MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobs outputs the ranked job recommendations.
func (p *Printer) PrintJobs(jobs []types.JobRecommendation) {
	if len(jobs) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(jobs), maxItemsToShow)
	for i := 0; i < count; i++ {
		job := jobs[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, job.JobTitle))
		sb.WriteString(fmt.Sprintf("    Match: %d%%  Salary: %s\n", job.MatchPercentage, job.SalaryRange))
		if len(job.MissingSkills) > 0 {
			skills := strings.Join(job.MissingSkills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Gaps: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("JOB RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs a course or certification list.
func (p *Printer) PrintRecommendations(title string, recs []types.Recommendation) {
	if len(recs) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(recs), maxItemsToShow)
	for i := 0; i < count; i++ {
		rec := recs[i]
		sb.WriteString(fmt.Sprintf("• %s\n", rec.Title))
		line := "  " + rec.Provider
		if rec.Level != "" {
			line += " · " + rec.Level
		}
		sb.WriteString(line + "\n")
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}
