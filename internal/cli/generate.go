package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"symbolgen/internal/emit"
	"symbolgen/internal/gen"
	"symbolgen/internal/load"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	Output   string // output file path; stdout if empty
	EnumName string // Swift enum identifier
}

// GenerateStats summarizes a successful generation.
type GenerateStats struct {
	Symbols            int      `json:"symbols"`
	Cases              int      `json:"cases"`
	Epochs             int      `json:"epochs"`
	RawValueRows       int      `json:"raw_value_rows"`
	UnresolvedPreviews []string `json:"unresolved_previews,omitempty"`
	Output             string   `json:"output,omitempty"`
}

func (s GenerateStats) String() string {
	return fmt.Sprintf("generated %d cases for %d symbols across %d epochs (%d raw-value rows)",
		s.Cases, s.Symbols, s.Epochs, s.RawValueRows)
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate <inputs-dir>",
		Short: "Generate the symbol enumeration source",
		Long: `Generate the Swift symbol enumeration from an input directory.

The directory must contain the snapshot manifests plus the alias,
localization, restriction, and preview side tables. Base names lacking a
preview entry are reported as warnings after successful generation.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path (stdout if omitted)")
	cmd.Flags().StringVar(&opts.EnumName, "enum-name", "Symbol", "name of the emitted Swift enum")

	return cmd
}

func runGenerate(opts *GenerateOptions, inputsDir string, cmd *cobra.Command) error {
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

	source := emit.Swift(result, opts.EnumName)
	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, source, 0o644); err != nil {
			msg := fmt.Sprintf("writing output file: %v", err)
			_ = formatter.Error("WRITE_FAILED", msg, nil)
			return WrapExitError(ExitCommandError, msg, err)
		}
	} else if opts.Format == "text" {
		// Without -o the generated source is the stdout payload itself.
		if _, err := formatter.Writer.Write(source); err != nil {
			return WrapExitError(ExitCommandError, "writing output", err)
		}
	}

	// Warnings only after successful generation; they never block output.
	for _, name := range result.UnresolvedPreviews {
		formatter.Warn("no preview entry for %q", name)
	}

	stats := GenerateStats{
		Symbols:            len(result.Symbols),
		Cases:              len(result.Cases),
		Epochs:             len(result.Availabilities),
		RawValueRows:       len(result.Rows),
		UnresolvedPreviews: result.UnresolvedPreviews,
		Output:             opts.Output,
	}
	if opts.Format == "json" {
		return formatter.Success(stats)
	}
	formatter.VerboseLog("%s", stats)
	return nil
}

// runPipeline loads the input directory and executes the generation
// pipeline, mapping failures onto CLI error output and exit codes.
func runPipeline(formatter *OutputFormatter, inputsDir string) (*gen.Result, error) {
	inputs, err := load.LoadInputs(inputsDir)
	if err != nil {
		var loadErr *load.LoadError
		if errors.As(err, &loadErr) {
			_ = formatter.Error(loadErr.Code, loadErr.Message, loadErr.Path)
		} else {
			_ = formatter.Error("LOAD_FAILED", err.Error(), nil)
		}
		return nil, WrapExitError(ExitCommandError, "loading inputs", err)
	}

	formatter.VerboseLog("loaded %d records, %d+%d alias pairs, %d suffix rules",
		len(inputs.Records), len(inputs.CurrentAliases), len(inputs.LegacyAliases), len(inputs.SuffixRules))

	result, err := gen.Run(inputs)
	if err != nil {
		var ie *gen.IntegrityError
		if errors.As(err, &ie) {
			_ = formatter.Error(string(ie.Code), ie.Message, map[string]string{
				"symbol":       ie.Symbol,
				"availability": ie.Availability,
			})
		} else {
			_ = formatter.Error("GENERATION_FAILED", err.Error(), nil)
		}
		return nil, WrapExitError(ExitFailure, "generation failed", err)
	}
	return result, nil
}
