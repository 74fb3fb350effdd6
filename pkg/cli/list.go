package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/getmockd/mockdata/pkg/cli/internal/output"
)

type generatorInfo struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
	Size int    `json:"size,omitempty"`
}

func newListCmd(a *app) *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:     "list [prefix]",
		Aliases: []string{"ls"},
		Short:   "List the available generators",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix := ""
			if len(args) == 1 {
				prefix = strings.ToLower(args[0])
			}

			_, r := a.newEngine()
			var infos []generatorInfo
			for _, name := range r.Names() {
				if !strings.HasPrefix(strings.ToLower(name), prefix) {
					continue
				}
				e, _ := r.Lookup(name)
				info := generatorInfo{Name: e.Name, Kind: "func"}
				if e.Func == nil {
					info.Kind = "pool"
					info.Size = len(e.Pool)
				}
				infos = append(infos, info)
			}

			if jsonOutput {
				if infos == nil {
					infos = []generatorInfo{}
				}
				return output.JSON(a.stdout, infos, 2)
			}
			if len(infos) == 0 {
				fmt.Fprintf(a.stdout, "No generators match %q\n", prefix)
				return nil
			}
			tw := output.Table(a.stdout)
			fmt.Fprintln(tw, "NAME\tKIND")
			for _, info := range infos {
				fmt.Fprintf(tw, "%s\t%s\n", info.Name, info.Kind)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	return cmd
}
