package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eykd/skillcheck/internal/analysis"
	"github.com/eykd/skillcheck/internal/policy"
	"github.com/eykd/skillcheck/internal/skill"
)

// Analyzer runs the analysis pipeline for the analyze command.
type Analyzer interface {
	Analyze(dir string, pol policy.Policy) (*analysis.Report, error)
}

// scoreThreshold is the overall score below which analyze exits 2.
const scoreThreshold = 50

// NewAnalyzeCmd creates the analyze subcommand.
func NewAnalyzeCmd(analyzer Analyzer) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "analyze <skill-path>",
		Short:        "Score a skill package's description, structure, and resources",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]

			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			verbose, _ := cmd.Flags().GetBool("verbose")
			watch, _ := cmd.Flags().GetBool("watch")
			policyPath, _ := cmd.Flags().GetString("policy")

			pol, err := policy.Load(policyPath)
			if err != nil {
				return err
			}

			run := func() (*analysis.Report, error) {
				report, err := analyzer.Analyze(dir, pol)
				if err != nil {
					return nil, err
				}
				if format != formatText {
					return report, writeStructured(cmd, format, report)
				}
				printAnalysisReport(cmd, report, verbose)
				return report, nil
			}

			report, err := run()
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("analyzing %s: %w", dir, err)
				}
				return err
			}

			if watch {
				return watchPackage(cmd, dir, func() {
					if _, err := run(); err != nil {
						fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
					}
				})
			}

			if report.OverallScore < scoreThreshold {
				return &ExitError{
					Code:    2,
					Message: fmt.Sprintf("quality score %d/100 is below %d", report.OverallScore, scoreThreshold),
				}
			}
			return nil
		},
	}

	addOutputFlags(cmd)
	cmd.Flags().Bool("verbose", false, "List resource filenames per category")
	cmd.Flags().Bool("watch", false, "Re-run the analysis when the package changes")
	cmd.Flags().String("policy", "", "TOML file overriding the scoring policy")

	return cmd
}

// printAnalysisReport renders the human-readable analysis report.
func printAnalysisReport(cmd *cobra.Command, report *analysis.Report, verbose bool) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "\n%s\n", banner)
	fmt.Fprintf(out, "SKILL ANALYSIS: %s\n", report.Name)
	fmt.Fprintf(out, "%s\n", banner)
	fmt.Fprintf(out, "Path: %s\n", report.Path)
	fmt.Fprintf(out, "Overall Score: %d/100\n", report.OverallScore)

	desc := report.Description
	fmt.Fprintf(out, "\n--- Description (%d/100) ---\n", desc.Score)
	fmt.Fprintf(out, "  Word count: %d\n", desc.WordCount)
	fmt.Fprintf(out, "  Has trigger guidance: %s\n", yesNo(desc.HasTriggerGuidance))

	structure := report.Structure
	fmt.Fprintf(out, "\n--- Structure (%d/100) ---\n", structure.Score)
	fmt.Fprintf(out, "  Lines: %d\n", structure.LineCount)
	fmt.Fprintf(out, "  Sections (H2): %d\n", structure.H2Count)
	fmt.Fprintf(out, "  Code blocks: %d\n", structure.CodeBlocks)
	if structure.Todos > 0 {
		fmt.Fprintf(out, "  TODOs remaining: %d\n", structure.Todos)
	}

	res := report.Resources
	fmt.Fprintf(out, "\n--- Resources ---\n")
	fmt.Fprintf(out, "  Scripts: %d%s\n", res.ScriptsCount, fileList(res.Scripts, verbose))
	fmt.Fprintf(out, "  References: %d%s\n", res.ReferencesCount, fileList(res.References, verbose))
	fmt.Fprintf(out, "  Assets: %d%s\n", res.AssetsCount, fileList(res.Assets, verbose))

	if len(report.AllIssues) > 0 {
		fmt.Fprintf(out, "\n--- Issues (%d) ---\n", len(report.AllIssues))
		for _, issue := range report.AllIssues {
			fmt.Fprintf(out, "  - %s\n", issue)
		}
	}

	if len(report.AllSuggestions) > 0 {
		fmt.Fprintf(out, "\n--- Suggestions (%d) ---\n", len(report.AllSuggestions))
		for _, suggestion := range report.AllSuggestions {
			fmt.Fprintf(out, "  - %s\n", suggestion)
		}
	}

	fmt.Fprintf(out, "\n%s\n\n", banner)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func fileList(names []string, verbose bool) string {
	if !verbose || len(names) == 0 {
		return ""
	}
	return " [" + strings.Join(names, ", ") + "]"
}

// fsAnalyzer implements Analyzer using OS file I/O.
type fsAnalyzer struct{}

func newDefaultAnalyzer() fsAnalyzer { return fsAnalyzer{} }

// Analyze loads the package at dir and scores it.
func (fsAnalyzer) Analyze(dir string, pol policy.Policy) (*analysis.Report, error) {
	pkg, err := skill.LoadPackage(dir)
	if err != nil {
		return nil, err
	}
	report := analysis.Analyze(pkg, pol)
	return &report, nil
}
