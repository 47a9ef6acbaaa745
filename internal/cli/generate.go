package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shelfmark/shelfmark/pkg/pipeline"
)

// roundTo is the display granularity for stage timings.
const roundTo = time.Millisecond

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	output     string // PDF output path
	layoutFile string // optional TOML geometry override
	noCache    bool   // disable the QR image cache
}

// generateCommand creates the generate command, the main entry point for
// rendering a location table into a PDF label sheet.
//
// When no table argument is given, an interactive prompt asks for the input
// and output paths instead.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate [table]",
		Short: "Generate a PDF label sheet from a location table",
		Long: `Generate reads a warehouse location table (CSV or XLSX) and renders one
label per row onto a paginated PDF sheet. Each label shows the aisle, the
storage zone with its ambient code, and a QR code of the location value.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return c.runGenerate(cmd, input, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output PDF path (default "+pipeline.DefaultOutput+")")
	cmd.Flags().StringVar(&opts.layoutFile, "layout", "", "TOML file overriding the sheet geometry")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the QR image cache")

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, input string, opts *generateOpts) error {
	if input == "" {
		var err error
		if input, err = promptForPath("Location table (CSV or XLSX)", ""); err != nil {
			return err
		}
		if opts.output == "" {
			if opts.output, err = promptForPath("Output PDF", pipeline.DefaultOutput); err != nil {
				return err
			}
		}
	}

	spinner := newSpinnerWithContext(cmd.Context(), fmt.Sprintf("Rendering %s...", input))
	spinner.Start()

	result, err := c.newRunner(opts.noCache).Execute(cmd.Context(), pipeline.Options{
		Input:      input,
		Output:     opts.output,
		LayoutFile: opts.layoutFile,
	})
	if err != nil {
		spinner.StopWithError(friendlyError(err))
		return err
	}
	spinner.Stop()

	if result.Pages == 0 {
		printWarning("%s has no records; nothing rendered", input)
		return nil
	}

	printSuccess("Generated label sheet")
	printFile(result.Output)
	printSheetStats(result.Records, result.Pages)
	printDetail("read %s · render %s",
		result.Stats.ReadTime.Round(roundTo), result.Stats.RenderTime.Round(roundTo))
	printNextStep("Print it", "lp "+result.Output)

	return nil
}
