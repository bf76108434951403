package main

import (
	"fmt"
	"strconv"

	"github.com/matsen/conceptmap/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage global configuration",
	Long: `Manage global configuration stored in ~/.config/cmap/config.yml.

Keys:
  data_path     Path to the concept table (CSV or SQLite)
  default_year  Year rendered when --year is omitted
  min_year      Lower bound of the year selector
  max_year      Upper bound of the year selector`,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Show configuration values",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		value, err := configValue(cfg, args[0])
		if err != nil {
			return err
		}
		if humanOutput {
			outputHuman("%s\n", value)
			return nil
		}
		return outputJSON(map[string]string{args[0]: value})
	}

	if humanOutput {
		minYear, maxYear := cfg.YearBounds()
		outputHuman("data_path: %s\n", cfg.DataPath)
		outputHuman("default_year: %d\n", cfg.DefaultYear)
		outputHuman("min_year: %d\n", minYear)
		outputHuman("max_year: %d\n", maxYear)
		return nil
	}
	return outputJSON(cfg)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		return err
	}

	updated := *cfg
	switch key {
	case "data_path":
		updated.DataPath = config.ExpandTilde(value)
	case "default_year":
		year, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid year %q", value)
		}
		updated.DefaultYear = year
	case "min_year":
		year, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid year %q", value)
		}
		updated.MinYear = year
	case "max_year":
		year, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid year %q", value)
		}
		updated.MaxYear = year
	default:
		return fmt.Errorf("unknown config key %q (valid: data_path, default_year, min_year, max_year)", key)
	}

	if err := config.SaveGlobalConfig(&updated); err != nil {
		return err
	}

	if humanOutput {
		outputHuman("Set %s to %s\n", key, value)
		return nil
	}
	return outputJSON(UpdateResponse{Status: "updated", Key: key, Value: value})
}

// configValue returns the string form of one config key.
func configValue(cfg *config.GlobalConfig, key string) (string, error) {
	minYear, maxYear := cfg.YearBounds()
	switch key {
	case "data_path":
		return cfg.DataPath, nil
	case "default_year":
		return strconv.Itoa(cfg.DefaultYear), nil
	case "min_year":
		return strconv.Itoa(minYear), nil
	case "max_year":
		return strconv.Itoa(maxYear), nil
	default:
		return "", fmt.Errorf("unknown config key %q (valid: data_path, default_year, min_year, max_year)", key)
	}
}
