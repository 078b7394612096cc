package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AppInfo holds basic information about the application.
type AppInfo struct {
	Name        string `yaml:"name"`        // application name
	Version     string `yaml:"version"`     // application version
	Environment string `yaml:"environment"` // e.g. "development", "production"
}

// LoggerConfig configures the logger.
type LoggerConfig struct {
	Level string `yaml:"level"` // log level: "info", "debug", "warn", "error"
}

// ServerConfig configures the MCP transport.
type ServerConfig struct {
	Transport   string   `yaml:"transport"`   // "stdio", "sse" or "httpstream"
	Port        string   `yaml:"port"`        // port for HTTP-based transports
	AllowedDirs []string `yaml:"allowedDirs"` // directories tools may touch
}

// DocumentConfig holds the styling defaults applied when a document
// description does not specify its own colors or fonts.
type DocumentConfig struct {
	FontFamily         string  `yaml:"fontFamily"`         // base font family
	FontSize           float64 `yaml:"fontSize"`           // base font size in points
	ThemeColor         string  `yaml:"themeColor"`         // titles, headings, header rows
	SubtleColor        string  `yaml:"subtleColor"`        // subtitles, page header/footer
	HeaderBgColor      string  `yaml:"headerBgColor"`      // table header background
	HeaderTextColor    string  `yaml:"headerTextColor"`    // table header text
	AltRowColor        string  `yaml:"altRowColor"`        // alternating data row background
	FirstColBgColor    string  `yaml:"firstColBgColor"`    // key-value first column background
	FirstCellBgColor   string  `yaml:"firstCellBgColor"`   // key-value first cell background
	FirstCellTextColor string  `yaml:"firstCellTextColor"` // key-value first cell text
}

// AppConfig is the root of the YAML configuration file.
type AppConfig struct {
	App      AppInfo        `yaml:"app"`
	Logger   LoggerConfig   `yaml:"logger"`
	Server   ServerConfig   `yaml:"server"`
	Document DocumentConfig `yaml:"document"`
}

// Default returns the configuration used when no config file is supplied.
// The color values mirror the built-in document theme.
func Default() *AppConfig {
	return &AppConfig{
		App: AppInfo{
			Name:        "document-operations",
			Version:     "0.3.1",
			Environment: "production",
		},
		Logger: LoggerConfig{Level: "info"},
		Server: ServerConfig{
			Transport:   "stdio",
			Port:        "8086",
			AllowedDirs: []string{"."},
		},
		Document: DocumentConfig{
			FontFamily:         "Arial",
			FontSize:           11,
			ThemeColor:         "1F4E79",
			SubtleColor:        "666666",
			HeaderBgColor:      "1F4E79",
			HeaderTextColor:    "FFFFFF",
			AltRowColor:        "F2F2F2",
			FirstColBgColor:    "D6E3F0",
			FirstCellBgColor:   "1F4E79",
			FirstCellTextColor: "FFFFFF",
		},
	}
}

// LoadConfig loads and parses the YAML configuration file at path.
// Fields absent from the file keep their default values.
func LoadConfig(path string) (*AppConfig, error) {
	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(yamlFile, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}
	return cfg, nil
}
