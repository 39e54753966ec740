package main

import (
	"fmt"
	"os"

	"github.com/speedata/css/scanner"
	"github.com/spf13/cobra"
)

// NewTokensCmd creates the tokens command. It prints the CSS3 token stream of
// a file, which helps to find the place where the stricter stylesheet
// grammar gives up.
func NewTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file.css>",
		Short: "Print the CSS tokens of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			out := cmd.OutOrStdout()
			s := scanner.New(string(data))
			for {
				tok := s.Next()
				if tok.Type == scanner.EOF {
					return nil
				}
				if tok.Type == scanner.Error {
					return fmt.Errorf("%s:%d:%d: %s", args[0], tok.Line, tok.Column, tok.Value)
				}
				fmt.Fprintf(out, "%d:%d\t%v\t%q\n", tok.Line, tok.Column, tok.Type, tok.Value)
			}
		},
	}
}
