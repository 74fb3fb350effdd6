package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/getmockd/mockdata/pkg/template"
	"github.com/getmockd/mockdata/pkg/value"
)

func newRandomCmd(a *app) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "random <name> [args...]",
		Short: "Call one generator directly",
		Long: `Call one generator with optional arguments and print the results,
one per line. Arguments use placeholder syntax: numbers, booleans, quoted
strings and [lists].

Examples:
  mockdata random email
  mockdata random integer 1 6 -n 3
  mockdata random date "'yyyy/MM/dd'"
  mockdata random pick '[1, 2, 3]'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", count)
			}
			_, r := a.newEngine()
			name := args[0]
			if _, ok := r.Lookup(name); !ok {
				return fmt.Errorf("unknown generator %q (see 'mockdata list')", name)
			}
			params := template.ParseArgs(strings.Join(args[1:], ", "))
			for i := 0; i < count; i++ {
				v, _ := r.Call(name, params...)
				fmt.Fprintln(a.stdout, value.Stringify(v))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of values")
	return cmd
}
