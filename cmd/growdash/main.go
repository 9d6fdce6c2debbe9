// Package main provides the growdash CLI entry point: an interactive
// dashboard over per-school plant growth and environment data, plus one-shot
// subcommands for scripted use.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/njnx/polar-plant-eunjin-dashboard/cmd/growdash/ui"
	"github.com/njnx/polar-plant-eunjin-dashboard/internal/config"
	"github.com/njnx/polar-plant-eunjin-dashboard/internal/export"
	"github.com/njnx/polar-plant-eunjin-dashboard/internal/logging"
	"github.com/njnx/polar-plant-eunjin-dashboard/internal/pipeline"
)

var (
	// Global flags
	configPath string
	dataDir    string
	verbose    bool

	// Subcommand flags
	schoolFilter string
	exportOut    string

	logger *zap.Logger
)

// loadConfig resolves config file + flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if verbose {
		cfg.Logging.Debug = true
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging.Dir, cfg.Logging.Debug, cfg.Logging.Level); err != nil {
		return cfg, err
	}
	logging.Boot("growdash starting, data dir %s", cfg.DataDir)
	return cfg, nil
}

// rootCmd launches the interactive dashboard when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "growdash",
	Short: "나도수영 growth-condition analysis dashboard",
	Long: `growdash loads per-school environment CSVs (temperature, humidity, pH, EC)
and the per-school growth workbook, joins them by school, and shows how mean
fresh weight varies with each environmental condition.

Run without arguments to open the interactive dashboard.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The dashboard owns the terminal; zap stays quiet there.
		if cmd.Use == "growdash" && cmd.CalledAs() == "growdash" {
			return nil
		}
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
		logging.CloseAll()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runDashboard(cfg)
	},
}

// analyzeCmd runs one pass and prints the optimal-condition table.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run one analysis pass and print the optimal-condition table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		res, err := pipeline.New(cfg).RunSchool(schoolFilter)
		if err != nil {
			return err
		}
		logger.Info("analysis pass complete",
			zap.String("run_id", res.RunID),
			zap.Int("merged_rows", res.Merged.Len()),
			zap.Strings("schools", res.Schools))

		styles := ui.NewStyles(ui.ThemeByName(cfg.Theme))
		table := ui.NewSimpleTable("최적 환경 조건", []string{"환경 변수", "최적 값", "최대 평균 생중량(g)"})
		for _, c := range res.Conditions {
			table.AddRow(c.Variable, fmt.Sprintf("%.2f", c.Value), fmt.Sprintf("%.3f", c.MeanOutcome))
		}
		fmt.Print(table.View(styles))
		return nil
	},
}

// exportCmd writes all artifacts without entering the dashboard.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the optimal-condition XLSX, merged CSV, and chart PNGs",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if exportOut != "" {
			cfg.ExportDir = exportOut
		}
		res, err := pipeline.New(cfg).RunSchool(schoolFilter)
		if err != nil {
			return err
		}
		paths, err := export.WriteAll(cfg.ExportDir, res)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Println(p)
		}
		logger.Info("export complete", zap.Int("files", len(paths)), zap.String("dir", cfg.ExportDir))
		return nil
	},
}

// schoolsCmd lists schools and the one-sided drops.
var schoolsCmd = &cobra.Command{
	Use:   "schools",
	Short: "List schools present in both datasets and those dropped",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		res, err := pipeline.New(cfg).Run()
		if err != nil {
			return err
		}
		for _, s := range res.Schools {
			fmt.Println(s)
		}
		for _, s := range res.EnvOnly {
			fmt.Printf("%s\t(environment only, dropped)\n", s)
		}
		for _, s := range res.GrowthOnly {
			fmt.Printf("%s\t(growth only, dropped)\n", s)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default growdash.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	analyzeCmd.Flags().StringVar(&schoolFilter, "school", "", "restrict the pass to one school")
	exportCmd.Flags().StringVar(&schoolFilter, "school", "", "restrict the pass to one school")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "export directory (overrides config)")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(schoolsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
