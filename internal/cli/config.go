package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is the resolved server configuration. Precedence, highest first:
// CLI flags, TRUSTREPLY_* environment variables, the config file, defaults.
type Config struct {
	Addr        string `yaml:"addr" mapstructure:"addr"`
	DBPath      string `yaml:"db_path" mapstructure:"db_path"`
	OTelEnabled bool   `yaml:"otel_enabled" mapstructure:"otel_enabled"`
}

func DefaultConfig() Config {
	dbPath := "trustreply.db"
	if home, err := os.UserHomeDir(); err == nil {
		dbPath = filepath.Join(home, ".trustreply", "trustreply.db")
	}
	return Config{
		Addr:   ":8087",
		DBPath: dbPath,
	}
}

// loadConfig merges viper's sources over the defaults. The defaults are
// registered with viper itself so they survive the bound flags, whose own
// defaults are empty strings.
func loadConfig() (Config, error) {
	defaults := DefaultConfig()
	viper.SetDefault("addr", defaults.Addr)
	viper.SetDefault("db_path", defaults.DBPath)
	viper.SetDefault("otel_enabled", defaults.OTelEnabled)
	_ = viper.BindEnv("otel_enabled")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse configuration: %w", err)
	}
	return cfg, nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage TrustReply configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if file := viper.ConfigFileUsed(); file != "" {
			fmt.Fprintf(os.Stderr, "Configuration file: %s\n\n", file)
		} else {
			fmt.Fprintf(os.Stderr, "No configuration file found (using defaults)\n\n")
		}
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		fmt.Print(string(out))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
