package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/boxesandglue/pageparse"
	"github.com/boxesandglue/pageparse/config"
)

func newParseCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "parse <file>...",
		Short: "Parse files and print the document",
		Long: `Parse the given HTML and CSS files and print the document. When several
files of the same kind are given the last one wins.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = a.cfg.Output.Format
			}
			doc, err := a.loader().Load(cmd.Context(), args...)
			if err != nil {
				return err
			}
			return writeDocument(cmd.OutOrStdout(), doc, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, yaml or markdown (default from configuration)")
	return cmd
}

func writeDocument(w io.Writer, doc *pageparse.Document, format string) error {
	switch format {
	case config.FormatText:
		_, err := io.WriteString(w, doc.String())
		return err
	case config.FormatYAML:
		return doc.WriteYAML(w)
	case config.FormatMarkdown:
		return doc.WriteMarkdown(w)
	}
	return fmt.Errorf("%w: %q", config.ErrInvalidFormat, format)
}
