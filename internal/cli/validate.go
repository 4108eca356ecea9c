package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ValidateOptions holds flags for the validate command.
type ValidateOptions struct {
	*RootOptions
}

// ValidateStats summarizes a successful validation run.
type ValidateStats struct {
	Symbols            int      `json:"symbols"`
	Cases              int      `json:"cases"`
	Epochs             int      `json:"epochs"`
	RawValueRows       int      `json:"raw_value_rows"`
	UnresolvedPreviews []string `json:"unresolved_previews,omitempty"`
}

func (s ValidateStats) String() string {
	return fmt.Sprintf("ok: %d symbols, %d cases, %d epochs, %d raw-value rows, %d unresolved previews",
		s.Symbols, s.Cases, s.Epochs, s.RawValueRows, len(s.UnresolvedPreviews))
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValidateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "validate <inputs-dir>",
		Short: "Run the pipeline without emitting output",
		Long: `Validate the snapshot manifests and side tables.

Runs the full merge, derivation, and raw-value validation passes and
reports counts, but writes no generated source. Integrity violations
(broken rename chains, raw-value row mismatches) exit non-zero.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *ValidateOptions, inputsDir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	result, err := runPipeline(formatter, inputsDir)
	if err != nil {
		return err
	}

	return formatter.Success(ValidateStats{
		Symbols:            len(result.Symbols),
		Cases:              len(result.Cases),
		Epochs:             len(result.Availabilities),
		RawValueRows:       len(result.Rows),
		UnresolvedPreviews: result.UnresolvedPreviews,
	})
}
