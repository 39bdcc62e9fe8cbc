package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eykd/skillcheck/internal/diff"
	"github.com/eykd/skillcheck/internal/skill"
)

// Comparer computes the package comparison for the diff command.
type Comparer interface {
	Compare(originalDir, enhancedDir string) (*diff.Result, error)
}

// diffPreviewLines caps the diff excerpt shown in the full report.
const diffPreviewLines = 50

// fieldPreviewChars caps frontmatter values shown in the full report.
const fieldPreviewChars = 80

// NewDiffCmd creates the diff subcommand. A completed comparison
// always exits 0, whether or not differences were found; only a
// missing primary document fails the command.
func NewDiffCmd(comparer Comparer) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "diff <original-path> <enhanced-path>",
		Short:        "Compare two versions of a skill package",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			summaryOnly, _ := cmd.Flags().GetBool("summary")

			result, err := comparer.Compare(args[0], args[1])
			if err != nil {
				return err
			}

			if format != formatText {
				// The raw diff can dwarf the rest of the payload;
				// structured consumers get the counts instead.
				if result.Body.Diff != "" {
					result.Body.Diff = "[diff content omitted]"
				}
				return writeStructured(cmd, format, result)
			}

			if summaryOnly {
				printDiffSummary(cmd, result)
			} else {
				printDiffReport(cmd, result)
			}
			return nil
		},
	}

	addOutputFlags(cmd)
	cmd.Flags().Bool("summary", false, "Print change counts only")

	return cmd
}

// printDiffSummary renders the condensed comparison.
func printDiffSummary(cmd *cobra.Command, result *diff.Result) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "\n%s\n", banner)
	fmt.Fprintf(out, "SKILL COMPARISON SUMMARY\n")
	fmt.Fprintf(out, "%s\n", banner)
	fmt.Fprintf(out, "Original: %s\n", result.OriginalPath)
	fmt.Fprintf(out, "Enhanced: %s\n\n", result.EnhancedPath)

	summary := result.Summary
	if !summary.HasChanges {
		fmt.Fprintf(out, "  No changes detected.\n")
	} else {
		fmt.Fprintf(out, "  Frontmatter fields changed: %d\n", summary.FrontmatterFieldsChanged)
		fmt.Fprintf(out, "  Body lines added: %d\n", summary.BodyLinesAdded)
		fmt.Fprintf(out, "  Body lines removed: %d\n", summary.BodyLinesRemoved)
		fmt.Fprintf(out, "  Files added: %d\n", summary.FilesAdded)
		fmt.Fprintf(out, "  Files removed: %d\n", summary.FilesRemoved)
		fmt.Fprintf(out, "  Files modified: %d\n", summary.FilesModified)
	}

	fmt.Fprintf(out, "\n%s\n\n", banner)
}

// printDiffReport renders the detailed comparison.
func printDiffReport(cmd *cobra.Command, result *diff.Result) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "\n%s\n", banner)
	fmt.Fprintf(out, "SKILL COMPARISON REPORT\n")
	fmt.Fprintf(out, "%s\n", banner)
	fmt.Fprintf(out, "Original: %s\n", result.OriginalPath)
	fmt.Fprintf(out, "Enhanced: %s\n", result.EnhancedPath)

	if len(result.FrontmatterChanges) > 0 {
		fmt.Fprintf(out, "\n--- Frontmatter Changes ---\n")
		for _, key := range sortedKeys(result.FrontmatterChanges) {
			change := result.FrontmatterChanges[key]
			fmt.Fprintf(out, "\n  %s (%s):\n", key, change.Status)
			if change.Original != "" {
				fmt.Fprintf(out, "    - %s\n", truncate(change.Original, fieldPreviewChars))
			}
			if change.Enhanced != "" {
				fmt.Fprintf(out, "    + %s\n", truncate(change.Enhanced, fieldPreviewChars))
			}
		}
	}

	body := result.Body
	fmt.Fprintf(out, "\n--- Body Changes ---\n")
	fmt.Fprintf(out, "  Original: %d lines\n", body.OriginalLines)
	fmt.Fprintf(out, "  Enhanced: %d lines\n", body.EnhancedLines)
	fmt.Fprintf(out, "  Added: +%d lines\n", body.Additions)
	fmt.Fprintf(out, "  Removed: -%d lines\n", body.Deletions)

	if body.Diff != "" {
		fmt.Fprintf(out, "\n  Diff preview (first %d lines):\n", diffPreviewLines)
		for _, line := range splitPreview(body.Diff, diffPreviewLines) {
			fmt.Fprintf(out, "    %s\n", line)
		}
	}

	printFileChanges(cmd, result.Files)

	fmt.Fprintf(out, "\n%s\n\n", banner)
}

// printFileChanges renders per-category file changes with +/-/~
// markers.
func printFileChanges(cmd *cobra.Command, files diff.FileChanges) {
	out := cmd.OutOrStdout()

	if len(files.Added) == 0 && len(files.Removed) == 0 && len(files.Modified) == 0 {
		return
	}
	fmt.Fprintf(out, "\n--- File Changes ---\n")

	if len(files.Added) > 0 {
		fmt.Fprintf(out, "  Added:\n")
		printCategoryFiles(out, files.Added, "+")
	}
	if len(files.Removed) > 0 {
		fmt.Fprintf(out, "  Removed:\n")
		printCategoryFiles(out, files.Removed, "-")
	}
	if len(files.Modified) > 0 {
		fmt.Fprintf(out, "  Modified:\n")
		printCategoryFiles(out, files.Modified, "~")
	}
}

// fsComparer implements Comparer using OS file I/O.
type fsComparer struct{}

func newDefaultComparer() fsComparer { return fsComparer{} }

// Compare diffs the two package directories.
func (fsComparer) Compare(originalDir, enhancedDir string) (*diff.Result, error) {
	return diff.Compare(originalDir, enhancedDir)
}

// printCategoryFiles writes each changed file as "<marker> category/name".
func printCategoryFiles(out io.Writer, m map[skill.Category][]string, marker string) {
	for _, category := range skill.ReservedCategories {
		for _, name := range m[category] {
			fmt.Fprintf(out, "    %s %s/%s\n", marker, category, name)
		}
	}
}

// sortedKeys returns the frontmatter change keys in stable order.
func sortedKeys(m map[string]diff.FieldChange) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// truncate caps s at n characters, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// splitPreview returns at most n lines of text.
func splitPreview(text string, n int) []string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	return lines
}
