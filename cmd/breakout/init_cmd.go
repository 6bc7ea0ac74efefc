package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .breakout.yaml config file",
	Long:  `Create a .breakout.yaml configuration file in the current directory with the default grid.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		path := configPath(cmd)

		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
		return nil
	},
}

const defaultConfig = `# breakout configuration
# Docs: https://github.com/yacobolo/breakout

verbose: false

# Grid tracks. Lengths must be CSS lengths, percentages or calc()/min()/max()/clamp().
grid:
  baseGap: 1rem
  maxGap: 15rem
  narrowMin: 40rem
  narrowBase: 52vw
  narrowMax: 48rem
  content: 4vw
  popout: 5rem
  feature: 12vw
  # featurePopout: 2rem    # set to enable the feature-popout tier
  fullLimit: 115rem
  defaultCol: content
  gapScale:
    default: 4vw
    lg: 5vw
    xl: 6vw
  breakoutPadding:
    default: 1.5rem
    md: 4rem
    lg: 8rem

# Named breakpoints referenced by gapScale and breakoutPadding.
breakpoints:
  md: 48rem
  lg: 64rem
  xl: 80rem

# Generation settings
generate:
  output: web/static/css/breakout.css   # "-" writes to stdout
  format: css              # css | json | yaml
  standalone: false
  lint: false

# Linting settings
lint:
  paths:
    - "**/*.html"
    - "**/*.templ"
  stylesheet: ""           # lint against a generated stylesheet instead of the grid
  strict: false
  output-format: issues    # issues | summary | full | json | markdown
  max-issues-per-linter: 0 # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
