package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Config holds the command-line configuration
type Config struct {
	Debug      bool
	ConfigFile string
	Broken     bool
}

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

func main() {
	var cfg Config

	rootCmd := &cobra.Command{
		Use:   "lambari",
		Short: "lambari compiler semantic core",
		Long: `lambari drives the semantic core of the lambari compiler front end:
AST construction with type checking and coercion, diagnostics, and
target-code rendering.`,
		Example: `  # Build and render the sample program
  lambari demo

  # Inject semantic errors to see the diagnostics
  lambari demo --broken

  # Stop at the first mismatched call argument
  lambari demo --config lambari.toml`,
	}

	rootCmd.PersistentFlags().BoolVarP(&cfg.Debug, "debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "", "Path to a lambari.toml config file")

	rootCmd.AddCommand(demoCmd(&cfg))

	ctx := context.Background()
	if err := fang.Execute(ctx, rootCmd,
		fang.WithVersion("v0.1.0"),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, errorStyle.Render(err.Error()))
		}),
	); err != nil {
		os.Exit(1)
	}
}
