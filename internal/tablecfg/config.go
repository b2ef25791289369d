// Package tablecfg loads table setup from HCL configuration files.
package tablecfg

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete table configuration
type Config struct {
	Table   TableSettings  `hcl:"table,block"`
	Players []PlayerConfig `hcl:"player,block"`
}

// TableSettings contains table-level configuration
type TableSettings struct {
	SmallBlind     int    `hcl:"small_blind,optional"`
	BigBlind       int    `hcl:"big_blind,optional"`
	Hands          int    `hcl:"hands,optional"`
	Seed           int64  `hcl:"seed,optional"`
	TimeoutSeconds int    `hcl:"timeout_seconds,optional"`
	LogLevel       string `hcl:"log_level,optional"`
}

// PlayerConfig seats one player at the table
type PlayerConfig struct {
	Name     string `hcl:"name,label"`
	Chips    int    `hcl:"chips,optional"`
	Strategy string `hcl:"strategy,optional"`
}

// Default returns the configuration used when no file is supplied: a
// three-handed table of calling stations.
func Default() *Config {
	return &Config{
		Table: TableSettings{
			SmallBlind:     1,
			BigBlind:       2,
			Hands:          1,
			TimeoutSeconds: 30,
			LogLevel:       "info",
		},
		Players: []PlayerConfig{
			{Name: "Alice", Chips: 200, Strategy: "call"},
			{Name: "Bob", Chips: 200, Strategy: "call"},
			{Name: "Charlie", Chips: 200, Strategy: "random"},
		},
	}
}

// Load reads table configuration from an HCL file. A missing file yields
// the default configuration.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if config.Table.Hands == 0 {
		config.Table.Hands = 1
	}
	if config.Table.TimeoutSeconds == 0 {
		config.Table.TimeoutSeconds = 30
	}
	if config.Table.LogLevel == "" {
		config.Table.LogLevel = "info"
	}
	for i := range config.Players {
		if config.Players[i].Chips == 0 {
			config.Players[i].Chips = 200
		}
		if config.Players[i].Strategy == "" {
			config.Players[i].Strategy = "call"
		}
	}

	if len(config.Players) < 2 {
		return nil, fmt.Errorf("a table needs at least 2 players, got %d", len(config.Players))
	}
	if config.Table.SmallBlind > config.Table.BigBlind {
		return nil, fmt.Errorf("small blind %d exceeds big blind %d", config.Table.SmallBlind, config.Table.BigBlind)
	}

	return &config, nil
}
