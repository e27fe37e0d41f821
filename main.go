package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"chainhash/bench"
	"chainhash/config"
	"chainhash/logutil"
)

var (
	configFile string
	numData    int
	readRatio  int
	capacity   int
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path of the TOML config file")
	rootCmd.PersistentFlags().IntVar(&capacity, "capacity", 0, "initial bucket count, overrides table.capacity")

	benchCmd.Flags().IntVar(&numData, "num", 0, "number of keys, overrides bench.num-data")
	benchCmd.Flags().IntVar(&readRatio, "read-ratio", -1, "percentage of lookups in the mixed phase, overrides bench.read-ratio")

	rootCmd.AddCommand(demoCmd, benchCmd)
}

var rootCmd = &cobra.Command{
	Use:           "chainhash",
	Short:         "Separate chaining hash table driver",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Insert three keys into a tiny table, read them back and resize",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		opts, err := cfg.TableOptions()
		if err != nil {
			return err
		}
		return bench.Demo(cmd.OutOrStdout(), cfg.Table.Capacity, opts...)
	},
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run an insert then mixed read/write workload",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if numData > 0 {
			cfg.Bench.NumData = numData
		}
		if readRatio >= 0 {
			cfg.Bench.ReadRatio = readRatio
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		opts, err := cfg.TableOptions()
		if err != nil {
			return err
		}
		report, err := bench.Run(bench.Options{
			NumData:       cfg.Bench.NumData,
			ReadRatio:     cfg.Bench.ReadRatio,
			MaxLoadFactor: cfg.Bench.MaxLoadFactor,
			Capacity:      cfg.Table.Capacity,
			Seed:          cfg.Bench.Seed,
			TableOptions:  opts,
		})
		if err != nil {
			return err
		}
		report.Print(cmd.OutOrStdout(), cfg.Bench.NumData)
		return nil
	},
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if capacity != 0 {
		cfg.Table.Capacity = capacity
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	logutil.SetupLogger(&cfg.Log)
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
