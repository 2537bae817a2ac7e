package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig is the tool configuration, read from config.toml next to the
// executable. Command-line flags override whatever was loaded.
type AppConfig struct {
	App   AppSection  `toml:"app"`
	Data  DataConfig  `toml:"data"`
	Chart ChartConfig `toml:"chart"`
}

// AppSection holds cross-cutting settings.
type AppSection struct {
	LogLevel string `toml:"log_level"`
}

// DataConfig locates the ESI workbook.
type DataConfig struct {
	DataDir      string `toml:"data_dir"`
	ESIFilename  string `toml:"esi_filename"`
	ESISheetName string `toml:"esi_sheet_name"`
}

// ChartConfig holds chart defaults.
type ChartConfig struct {
	Months int `toml:"months"`
}

// DefaultConfig returns the configuration used when no config.toml exists.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		App: AppSection{
			LogLevel: "info",
		},
		Data: DataConfig{
			DataDir:      ".",
			ESIFilename:  "main_indicators_nace2.xlsx",
			ESISheetName: "MONTHLY",
		},
		Chart: ChartConfig{
			Months: 12,
		},
	}
}

// GetExeDir returns the directory of the running executable.
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig loads config.toml from the executable's directory. A missing
// file is not an error; defaults apply.
func LoadConfig() (*AppConfig, error) {
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	data, err := os.ReadFile(filepath.Join(exeDir, "config.toml"))
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}
