package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/getmockd/mockdata/pkg/cli/templates"
)

func newInitCmd(a *app) *cobra.Command {
	var (
		outputFile string
		force      bool
	)
	cmd := &cobra.Command{
		Use:   "init [template]",
		Short: "Write a starter template",
		Long: `Write one of the built-in starter templates to stdout or a file.
Without a name, list the starter templates.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprint(a.stdout, templates.FormatList())
				return nil
			}
			data, err := templates.Get(args[0])
			if err != nil {
				return fmt.Errorf("%w\n\n%s", err, templates.FormatList())
			}
			if outputFile == "" {
				_, err := a.stdout.Write(data)
				return err
			}
			if _, err := os.Stat(outputFile); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", outputFile)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			if err := os.WriteFile(outputFile, data, 0o644); err != nil {
				return fmt.Errorf("failed to write template: %w", err)
			}
			fmt.Fprintf(a.stdout, "Created %s\n", outputFile)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write to file instead of stdout")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}
