package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rentledger/rentledger/internal/common/config"
	"github.com/rentledger/rentledger/internal/common/logger"
	"github.com/rentledger/rentledger/internal/menu"
	"github.com/rentledger/rentledger/internal/rental"
	"github.com/rentledger/rentledger/internal/vehicle"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "rentledger",
		Short: "Interactive car rental ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
		SilenceUsage: true,
	}
	root.Flags().StringVar(&configPath, "config", "configs/rentledger.json", "配置文件路径")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	// 加载配置
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 初始化日志
	log, err := logger.NewLogger(cfg.Log.Backend, cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.Path)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}

	// 初始化账本并注入种子车辆；种子条目非法属于配置错误，直接失败。
	ledger := rental.NewLedger(log)
	for _, seed := range cfg.Catalog {
		cat, err := vehicle.ParseCategory(seed.Category)
		if err != nil {
			return fmt.Errorf("invalid seed vehicle %s: %w", seed.ID, err)
		}
		v, err := vehicle.New(seed.ID, seed.Brand, seed.Model, seed.PricePerDay, cat)
		if err != nil {
			return fmt.Errorf("invalid seed vehicle %s: %w", seed.ID, err)
		}
		ledger.AddVehicle(v)
	}
	log.Infof("%s started with %d vehicles in catalog", cfg.App.Name, len(ledger.AllVehicles()))

	menu.New(ledger, os.Stdin, os.Stdout).Run()
	return nil
}
