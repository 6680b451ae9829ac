//go:build !(js && wasm)

// Package main provides the counter binary: it renders the counter widget
// natively, after a given number of clicks, as HTML or plain text.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vcrobe/nojs-counter/components/counter"
	"github.com/vcrobe/nojs-counter/console"
	"github.com/vcrobe/nojs-counter/testcomponents"
)

const (
	Version = "0.1.0"
	appName = "counter"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Render the counter widget without a browser",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(logLevel)
			if err != nil {
				return err
			}
			console.SetLogger(logger.With(zap.String("app", appName)))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = console.Logger().Sync()
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(renderCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})

	return cmd
}

func renderCmd() *cobra.Command {
	var (
		clicks int
		format string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Click the counter N times and print the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := render(clicks, format)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().IntVarP(&clicks, "clicks", "n", 0, "Number of times to click the button")
	cmd.Flags().StringVarP(&format, "format", "f", "html", "Output format (html, text)")

	return cmd
}

// render mounts a fresh counter, clicks it the way a user would and
// returns the final output in the requested format.
func render(clicks int, format string) (string, error) {
	if clicks < 0 {
		return "", fmt.Errorf("clicks must not be negative, got %d", clicks)
	}
	if format != "html" && format != "text" {
		return "", fmt.Errorf("unknown format %q (want html or text)", format)
	}

	c := counter.New()
	screen := testcomponents.Render(c)
	defer screen.Unmount()

	for i := 0; i < clicks; i++ {
		if err := screen.Click(screen.GetCurrentVDOM()); err != nil {
			return "", fmt.Errorf("click %d: %w", i+1, err)
		}
	}
	console.Logger().Debugw("rendered counter", "clicks", clicks, "count", c.Count(), "mount", screen.ID())

	if format == "text" {
		return c.Label(), nil
	}
	return screen.HTML()
}

func newLogger(level string) (*zap.Logger, error) {
	var al zap.AtomicLevel
	if err := al.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	encConfig := zap.NewProductionEncoderConfig()
	encConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zc := zap.Config{
		DisableCaller:     true,
		DisableStacktrace: true,
		Level:             al,
		Encoding:          "json",
		EncoderConfig:     encConfig,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}
	return zc.Build()
}
