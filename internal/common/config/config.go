package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Config 应用配置
type Config struct {
	App     AppConfig     `json:"app"`
	Log     LogConfig     `json:"log"`
	Catalog []SeedVehicle `json:"catalog"`
}

// AppConfig 应用配置
type AppConfig struct {
	Name string `json:"name"` // 应用名称
}

// LogConfig 日志配置
type LogConfig struct {
	Backend string `json:"backend"` // logrus, zap
	Level   string `json:"level"`   // debug, info, warn, error
	Format  string `json:"format"`  // json, text
	Output  string `json:"output"`  // stdout, file
	Path    string `json:"path"`    // 日志文件路径
}

// SeedVehicle 启动时注入目录的车辆条目。
type SeedVehicle struct {
	ID          string          `json:"id"`
	Brand       string          `json:"brand"`
	Model       string          `json:"model"`
	PricePerDay decimal.Decimal `json:"price_per_day"`
	Category    string          `json:"category"`
}

var (
	globalConfig *Config
	configOnce   sync.Once
)

// LoadConfig 加载配置
func LoadConfig(configPath string) (*Config, error) {
	var err error
	configOnce.Do(func() {
		globalConfig = &Config{}
		// 如果配置文件不存在，使用默认配置
		if _, err = os.Stat(configPath); os.IsNotExist(err) {
			logrus.Warnf("Config file not found: %s, using default config", configPath)
			globalConfig = defaultConfig()
			err = nil
			return
		}

		data, readErr := os.ReadFile(configPath)
		if readErr != nil {
			err = fmt.Errorf("failed to read config file: %w", readErr)
			return
		}

		if unmarshalErr := json.Unmarshal(data, globalConfig); unmarshalErr != nil {
			err = fmt.Errorf("failed to parse config file: %w", unmarshalErr)
			return
		}
	})

	if err != nil {
		return nil, err
	}

	return globalConfig, nil
}

// GetConfig 获取全局配置
func GetConfig() *Config {
	if globalConfig == nil {
		return defaultConfig()
	}
	return globalConfig
}

// defaultConfig 默认配置：参考部署中的五台种子车辆。
func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name: "rentledger",
		},
		Log: LogConfig{
			Backend: "logrus",
			Level:   "info",
			Format:  "text",
			Output:  "stdout",
			Path:    "logs/app.log",
		},
		Catalog: []SeedVehicle{
			{ID: "C001", Brand: "Toyota", Model: "Camry", PricePerDay: decimal.NewFromInt(60), Category: "SEDAN"},
			{ID: "C002", Brand: "Honda", Model: "Accord", PricePerDay: decimal.NewFromInt(70), Category: "SEDAN"},
			{ID: "C003", Brand: "Mahindra", Model: "Thar", PricePerDay: decimal.NewFromInt(150), Category: "SUV"},
			{ID: "C004", Brand: "Maruti", Model: "Swift", PricePerDay: decimal.NewFromInt(40), Category: "ECONOMY"},
			{ID: "C005", Brand: "BMW", Model: "5 Series", PricePerDay: decimal.NewFromInt(200), Category: "LUXURY"},
		},
	}
}
