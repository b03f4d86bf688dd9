package config

import (
	"fmt"
	"github.com/meysamhadeli/snapseed/constants/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"os"
)

// Config represents the structure of the configuration file
type Config struct {
	Version     string `mapstructure:"version"`
	Theme       string `mapstructure:"theme"`
	Quiet       bool   `mapstructure:"quiet"`
	EnableCache bool   `mapstructure:"enable_cache"`
	RootFolder  string `mapstructure:"root_folder"`
	OutFolder   string `mapstructure:"out_folder"`
}

// DefaultConfig values
var DefaultConfig = Config{
	Version:     "0.2.0",
	Theme:       "dracula",
	Quiet:       false,
	EnableCache: true,
	RootFolder:  "../../",
	OutFolder:   "in",
}

// cfgFile holds the path to the configuration file (set via CLI)
var cfgFile string

// LoadConfigs initializes the configuration from file, flags, and environment variables, and returns the final config.
func LoadConfigs(rootCmd *cobra.Command, cwd string) *Config {
	var config *Config

	// Set default values using Viper
	setDefaults()

	// Automatically read environment variables
	viper.AutomaticEnv()

	// Explicitly bind environment variables to config keys
	bindEnv()

	// Check if the user provided a config file
	if cfgFile != "" {
		// Use the config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Look for configuration files in the current directory
		viper.SetConfigName("snapseed-config") // Name of config file (without extension)
		viper.AddConfigPath(cwd)               // Look in the current working directory

		// Support both JSON and YAML formats
		viper.SetConfigType("yaml") // Set default type
		if err := viper.ReadInConfig(); err != nil {
			// If YAML fails, try JSON
			viper.SetConfigType("json")
			_ = viper.ReadInConfig() // Continue with defaults when no file exists
		}
	}

	// Read the explicitly specified config file (if any)
	if cfgFile != "" {
		if err := viper.ReadInConfig(); err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error reading config file: %v", err)))
			os.Exit(1)
		}
	}

	// Bind CLI flags to override config values
	bindFlags(rootCmd)

	// Unmarshal the configuration into the Config struct
	if err := viper.Unmarshal(&config); err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Unable to decode into struct: %v", err)))
		os.Exit(1)
	}

	return config
}

// setDefaults sets all default configuration values
func setDefaults() {
	viper.SetDefault("version", DefaultConfig.Version)
	viper.SetDefault("theme", DefaultConfig.Theme)
	viper.SetDefault("quiet", DefaultConfig.Quiet)
	viper.SetDefault("enable_cache", DefaultConfig.EnableCache)
	viper.SetDefault("root_folder", DefaultConfig.RootFolder)
	viper.SetDefault("out_folder", DefaultConfig.OutFolder)
}

// bindEnv explicitly binds environment variables to configuration keys
func bindEnv() {
	_ = viper.BindEnv("theme", "THEME")
	_ = viper.BindEnv("quiet", "QUIET")
	_ = viper.BindEnv("enable_cache", "ENABLE_CACHE")
	_ = viper.BindEnv("root_folder", "ROOT_FOLDER")
	_ = viper.BindEnv("out_folder", "OUT_FOLDER")
}

// bindFlags binds the CLI flags to configuration values.
func bindFlags(rootCmd *cobra.Command) {
	_ = viper.BindPFlag("theme", rootCmd.PersistentFlags().Lookup("theme"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("enable_cache", rootCmd.PersistentFlags().Lookup("enable_cache"))
	_ = viper.BindPFlag("root_folder", rootCmd.PersistentFlags().Lookup("root_folder"))
	_ = viper.BindPFlag("out_folder", rootCmd.PersistentFlags().Lookup("out_folder"))
}

// InitFlags initializes the flags for the root command.
func InitFlags(rootCmd *cobra.Command) {
	// Use PersistentFlags so that these flags are available in all subcommands
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Specifies the path to a configuration file (JSON or YAML) that contains all the settings for the application.")

	// Traversal configuration
	rootCmd.PersistentFlags().String("root_folder", DefaultConfig.RootFolder, "The folder scanned recursively for '.snap' snapshot files.")
	rootCmd.PersistentFlags().String("out_folder", DefaultConfig.OutFolder, "The existing folder that receives the numbered seed files.")

	// Theme configuration
	rootCmd.PersistentFlags().String("theme", DefaultConfig.Theme, "Set customize theme for highlighting extracted snippets. (e.g., 'dracula', 'light', 'dark')")

	// Quiet configuration
	rootCmd.PersistentFlags().Bool("quiet", DefaultConfig.Quiet, "Suppress the per-seed snippet echo, keeping only the final report.")

	// Cache configuration
	rootCmd.PersistentFlags().Bool("enable_cache", DefaultConfig.EnableCache, "Enable or disable extraction caching for improved performance")

	// Version flag
	rootCmd.Flags().BoolP("version", "v", false, "Specifies the version of the application.")
}
