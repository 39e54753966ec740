package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/boxesandglue/pageparse"
	"github.com/boxesandglue/pageparse/config"
)

// app carries the settings shared by all subcommands. It is filled in by the
// persistent pre-run of the root command.
type app struct {
	configPath string
	verbose    bool

	cfg *config.Config
	log *zap.Logger
}

func (a *app) setup(_ *cobra.Command, _ []string) error {
	path := config.Find(a.configPath)
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Logging.ConsoleLogger.Level = "debug"
	}
	a.cfg = cfg
	a.log = cfg.Logging.Prepare()
	a.log.Debug("Configuration loaded", zap.String("path", path))
	return nil
}

func (a *app) loader() *pageparse.Loader {
	return pageparse.NewLoader(a.log,
		pageparse.WithConcurrency(a.cfg.Loader.Concurrency),
		pageparse.WithStyleWhitespaceStripping(a.cfg.Parser.StripStyleWhitespace))
}

// NewRootCmd creates the root command for pageparse.
func NewRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "pageparse",
		Short: "Parse HTML and CSS files into a document",
		Long: `pageparse reads HTML and CSS files, parses them and prints the resulting
node tree and stylesheet. Files are classified by their extension: .html files
are read by the HTML parser, .css files by the CSS parser.`,
		Version:           getVersion(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Configuration file (default .pageparse.yaml or XDG config dir)")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newParseCmd(a))
	cmd.AddCommand(newQueryCmd(a))
	cmd.AddCommand(NewTokensCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
