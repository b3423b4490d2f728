package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/outstanding/pkg/style"
)

var stylesCmd = &cobra.Command{
	Use:   "styles [stylesheet]",
	Short: "List the tag names a stylesheet defines",
	Long: `List the style names usable as [name]...[/name] tags. With no
argument the embedded default stylesheet is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := style.Default()
		if len(args) == 1 {
			loaded, err := style.Load(args[0])
			if err != nil {
				return err
			}
			reg = loaded
		}
		for _, name := range reg.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}
