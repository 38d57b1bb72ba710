// Package main provides the CLI entry point for bomstruct-go.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bomstruct/bomstruct-go/pkg/bomstruct"
	"github.com/bomstruct/bomstruct-go/pkg/bomstruct/output"
)

var (
	outputKind string
	sheetName  string
	outPath    string
	jsonPath   string
	pretty     bool
	logLevel   string
	consoleLog bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bomstruct [input.xlsx]",
		Short: "Normalize engineering BOM spreadsheets",
		Long: `bomstruct-go reads a loosely structured BOM spreadsheet exported from
CAD/ERP tooling and normalizes it into a clean table for cost analysis or
database upload.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVar(&outputKind, "output", "costwalk", "Output kind: costwalk, cbom, ebom")
	rootCmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet name holding the BOM (default: first sheet)")
	rootCmd.Flags().StringVarP(&outPath, "out", "o", "", "Output xlsx file path")
	rootCmd.Flags().StringVar(&jsonPath, "json", "", "Optional JSON output file path")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&consoleLog, "console-log", true, "Log in console format instead of JSON")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	kind, err := bomstruct.ParseOutputKind(outputKind)
	if err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()

	result, err := bomstruct.Run(inputPath, bomstruct.Options{
		Output: kind,
		Sheet:  sheetName,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("normalization failed: %w", err)
	}

	if outPath != "" {
		if err := output.WriteExcel(outPath, "BOM", result.Table); err != nil {
			return fmt.Errorf("failed to write output workbook: %w", err)
		}
		logger.Info("wrote output workbook", zap.String("path", outPath))
	}

	if jsonPath != "" {
		data, err := output.ToJSON(result.Table, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if err := os.WriteFile(jsonPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write JSON output: %w", err)
		}
		logger.Info("wrote JSON output", zap.String("path", jsonPath))
	}

	if outPath == "" && jsonPath == "" {
		data, err := output.ToJSON(result.Table, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Println(string(data))
	}

	return nil
}

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if consoleLog {
		cfg = zap.NewDevelopmentConfig()
	}
	level, err := zap.ParseAtomicLevel(logLevel)
	if err != nil {
		return nil, err
	}
	cfg.Level = level
	return cfg.Build()
}
