package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eykd/skillcheck/internal/policy"
	"github.com/eykd/skillcheck/internal/validate"
)

// Validator runs the validation pipeline for the validate command.
type Validator interface {
	Validate(dir string, opts validate.Options) *validate.Result
}

// NewValidateCmd creates the validate subcommand.
func NewValidateCmd(validator Validator) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "validate <skill-path>",
		Short:        "Check a skill package against the structural rules",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			originalDir, _ := cmd.Flags().GetString("original")
			strict, _ := cmd.Flags().GetBool("strict")
			policyPath, _ := cmd.Flags().GetString("policy")

			pol, err := policy.Load(policyPath)
			if err != nil {
				return err
			}

			result := validator.Validate(args[0], validate.Options{
				OriginalDir: originalDir,
				Strict:      strict,
				Policy:      pol,
			})

			if format != formatText {
				if err := writeStructured(cmd, format, result); err != nil {
					return err
				}
			} else {
				printValidationReport(cmd, result)
			}

			if !result.Valid {
				return fmt.Errorf("skill package is invalid")
			}
			return nil
		},
	}

	addOutputFlags(cmd)
	cmd.Flags().String("original", "", "Original package path for regression checks")
	cmd.Flags().Bool("strict", false, "Treat resource and regression findings as errors")
	cmd.Flags().String("policy", "", "TOML file overriding the validation bounds")

	return cmd
}

// printValidationReport renders the human-readable validation report.
func printValidationReport(cmd *cobra.Command, result *validate.Result) {
	out := cmd.OutOrStdout()

	status := "VALID"
	if !result.Valid {
		status = "INVALID"
	}

	fmt.Fprintf(out, "\n%s\n", banner)
	fmt.Fprintf(out, "ENHANCEMENT VALIDATION: %s\n", result.Name)
	fmt.Fprintf(out, "%s\n", banner)
	fmt.Fprintf(out, "Path: %s\n", result.Path)
	fmt.Fprintf(out, "Status: %s\n", status)

	if len(result.Errors) > 0 {
		fmt.Fprintf(out, "\n--- Errors (%d) ---\n", len(result.Errors))
		for _, msg := range result.Errors {
			fmt.Fprintf(out, "  [ERROR] %s\n", msg)
		}
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintf(out, "\n--- Warnings (%d) ---\n", len(result.Warnings))
		for _, msg := range result.Warnings {
			fmt.Fprintf(out, "  [WARN] %s\n", msg)
		}
	}

	if result.Valid && len(result.Warnings) == 0 {
		fmt.Fprintf(out, "\n  All validations passed.\n")
	}

	fmt.Fprintf(out, "\n%s\n\n", banner)
}

// fsValidator implements Validator using OS file I/O.
type fsValidator struct{}

func newDefaultValidator() fsValidator { return fsValidator{} }

// Validate runs the validator over the package at dir.
func (fsValidator) Validate(dir string, opts validate.Options) *validate.Result {
	return validate.Run(dir, opts)
}
