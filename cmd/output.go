package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Structured output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// addOutputFlags registers the shared structured-output flags.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output result as JSON")
	cmd.Flags().Bool("yaml", false, "Output result as YAML")
}

// outputFormat resolves the --json/--yaml flags to a single format.
func outputFormat(cmd *cobra.Command) (string, error) {
	jsonMode, _ := cmd.Flags().GetBool("json")
	yamlMode, _ := cmd.Flags().GetBool("yaml")
	switch {
	case jsonMode && yamlMode:
		return "", fmt.Errorf("--json and --yaml are mutually exclusive")
	case jsonMode:
		return formatJSON, nil
	case yamlMode:
		return formatYAML, nil
	default:
		return formatText, nil
	}
}

// writeStructured encodes v on the command's stdout in the requested
// structured format.
func writeStructured(cmd *cobra.Command, format string, v any) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}
		return nil
	}
}
