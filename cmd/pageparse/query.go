package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/boxesandglue/pageparse/dom"
)

func newQueryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "query <selector> <file>...",
		Short: "Print the elements matching a CSS selector",
		Long: `Parse the given files and print every element of the HTML tree that matches
the CSS selector, rendered as HTML, one per line.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.loader().Load(cmd.Context(), args[1:]...)
			if err != nil {
				return err
			}
			nodes, err := doc.Find(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, n := range nodes {
				if err := dom.Render(out, n); err != nil {
					return err
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}
