package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/getmockd/mockdata/internal/cliconfig"
	"github.com/getmockd/mockdata/pkg/cli/internal/output"
)

func newConfigCmd(a *app) *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration and where each value came from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if jsonOutput {
				return output.JSON(a.stdout, cfg, 2)
			}

			seed := "(random)"
			if cfg.HasSeed {
				seed = strconv.FormatUint(cfg.Seed, 10)
			}
			rows := [][2]string{
				{"seed", seed},
				{"maxDepth", strconv.Itoa(cfg.MaxDepth)},
				{"format", cfg.Format},
				{"indent", strconv.Itoa(cfg.Indent)},
				{"logLevel", cfg.LogLevel},
				{"logFormat", cfg.LogFormat},
			}
			tw := output.Table(a.stdout)
			fmt.Fprintln(tw, "KEY\tVALUE\tSOURCE")
			for _, row := range rows {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", row[0], row[1], sourceOf(cfg, row[0]))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	return cmd
}

func sourceOf(cfg *cliconfig.Config, key string) string {
	if s, ok := cfg.Sources[key]; ok {
		return s
	}
	return cliconfig.SourceDefault
}
