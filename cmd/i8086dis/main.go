// Command i8086dis decodes and simulates a subset of the Intel 8086
// instruction set from a raw binary file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oisee/i8086dis/arch/cpu/x86"
	"github.com/oisee/i8086dis/log"
)

var (
	configPath string
	logLevel   string
	outPath    string
	traceOut   string
	showBlocks bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "i8086dis",
		Short: "Decode and simulate a subset of the Intel 8086 instruction set",
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to an optional i8086dis.ini")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn, or error")

	root.AddCommand(newDisassembleCmd())
	root.AddCommand(newSimulateCmd())
	return root
}

func newDisassembleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "disassemble <file>",
		Short: "Print a NASM-compatible listing for a binary file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			logger, err := newLogger(logLevel)
			if err != nil {
				return err
			}
			cfg, err := loadDriverConfig(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			var listing string
			switch {
			case showBlocks:
				listing, err = x86.DisassembleBlocks(data)
			case cfg.CommentBytes:
				listing, err = x86.DisassembleCommented(data)
			default:
				listing, err = x86.DisassembleWithLogger(data, logger)
			}
			if err != nil {
				return err
			}
			return writeOutput(outPath, listing)
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "", "write the listing here instead of stdout")
	cmd.Flags().BoolVar(&showBlocks, "blocks", false, "annotate the listing with basic-block boundaries")
	return cmd
}

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate <file>",
		Short: "Print a NASM-compatible listing and an execution trace for a binary file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			logger, err := newLogger(logLevel)
			if err != nil {
				return err
			}
			cfg, err := loadDriverConfig(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			var listing, trace string
			if cfg.TraceFormat == "detailed" {
				listing, trace, err = x86.SimulateDetailed(data, logger)
			} else {
				listing, trace, err = x86.SimulateWithLogger(data, logger)
			}
			if err != nil {
				return err
			}
			if err := writeOutput(outPath, listing); err != nil {
				return err
			}
			return writeOutput(traceOut, trace)
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "", "write the listing here instead of stdout")
	cmd.Flags().StringVar(&traceOut, "trace-out", "", "write the trace here instead of stdout")
	return cmd
}

func newLogger(level string) (*log.Logger, error) {
	var lvl log.Level
	switch level {
	case "debug":
		lvl = log.DebugLevel
	case "info":
		lvl = log.InfoLevel
	case "warn":
		lvl = log.WarnLevel
	case "error":
		lvl = log.ErrorLevel
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}

	logger := log.NewWithConfig(log.Config{Level: lvl})
	return logger, nil
}

func writeOutput(path, content string) error {
	if path == "" {
		_, err := fmt.Print(content)
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
