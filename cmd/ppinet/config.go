package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tcxian/ppinet/internal/config"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage global configuration",
	Long: `Manage the global configuration file at ` + "`~/.config/ppinet/config.yml`" + `.

Keys:
  biogrid_access_key    BioGRID webservice access key
  default_organism      Default organism for fetches (name or taxonomy ID)
  string_limit          Default STRING interaction limit`,
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the global configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

// ConfigResponse is the JSON output of config get.
type ConfigResponse struct {
	BioGRIDAccessKey string `json:"biogrid_access_key,omitempty"`
	DefaultOrganism  string `json:"default_organism,omitempty"`
	STRINGLimit      int    `json:"string_limit,omitempty"`
	Path             string `json:"path"`
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	resp := ConfigResponse{
		BioGRIDAccessKey: maskKey(cfg.BioGRIDAccessKey),
		DefaultOrganism:  cfg.DefaultOrganism,
		STRINGLimit:      cfg.STRINGLimit,
		Path:             config.GlobalConfigPath(),
	}

	if humanOutput {
		fmt.Printf("config file: %s\n", resp.Path)
		fmt.Printf("biogrid_access_key: %s\n", valueOrUnset(resp.BioGRIDAccessKey))
		fmt.Printf("default_organism: %s\n", valueOrUnset(resp.DefaultOrganism))
		if resp.STRINGLimit > 0 {
			fmt.Printf("string_limit: %d\n", resp.STRINGLimit)
		} else {
			fmt.Println("string_limit: (unset)")
		}
		return nil
	}

	return outputJSON(resp)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	switch key {
	case "biogrid_access_key":
		cfg.BioGRIDAccessKey = value
	case "default_organism":
		cfg.DefaultOrganism = value
	case "string_limit":
		limit, err := strconv.Atoi(value)
		if err != nil || limit < 0 {
			exitWithError(ExitError, "string_limit must be a non-negative integer")
		}
		cfg.STRINGLimit = limit
	default:
		exitWithError(ExitError, "unknown config key %q (valid: biogrid_access_key, default_organism, string_limit)", key)
	}

	if err := cfg.Save(); err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if humanOutput {
		fmt.Printf("Set %s\n", key)
		return nil
	}

	return outputJSON(StatusResponse{Status: "updated", Path: config.GlobalConfigPath()})
}

// maskKey hides all but the last four characters of a credential.
func maskKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}

func valueOrUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}
