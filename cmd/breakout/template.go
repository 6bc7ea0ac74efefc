package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/breakout/internal/grid"
)

var templateCmd = &cobra.Command{
	Use:   "template [tier]",
	Short: "Print the grid-template-columns value of a tier",
	Long: `Print the column template for a tier and alignment, for use in
hand-written CSS. Without a tier the default template is printed.

Unknown tiers and alignments fall back to the default template with a
warning.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: tierNames(),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		var tier string
		if len(args) > 0 {
			tier = args[0]
		}

		log := newLogger()

		alignName, _ := cmd.Flags().GetString("align")
		align, ok := grid.ParseAlignment(alignName)
		if !ok {
			// Lookup only checks the alignment of one-sided tiers
			log.Warn(grid.WarnUnknownAlignment, "alignment",
				fmt.Sprintf("Unknown alignment '%s', using the default template", alignName))
			align = grid.AlignCenter
		}
		out := grid.Run(grid.Options{
			Config:      k.Get("grid"),
			Breakpoints: k.Get("breakpoints"),
			Logger:      log,
		})

		tpl, warnings := out.Templates.Lookup(tier, align)
		for _, w := range warnings {
			log.Warn(w.Code, w.Field, w.Message)
		}

		fmt.Fprintln(cmd.OutOrStdout(), tpl.String())
		return nil
	},
}

func init() {
	templateCmd.Flags().String("align", "center", "Alignment: center|left|right")
}

func tierNames() []string {
	tiers := grid.AllTiers()
	names := make([]string, len(tiers))
	for i, t := range tiers {
		names[i] = string(t)
	}
	return names
}
