package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Mapstructure tags are used to map environment variables and config file keys.
type Config struct {
	// Design model (Gemini) configuration
	GeminiAPIKey  string `mapstructure:"GEMINI_API_KEY"`  // API key for the Gemini design model
	DesignModelID string `mapstructure:"DESIGN_MODEL_ID"` // e.g., "gemini-1.5-pro"

	// Code model configuration
	OpenAIKey   string `mapstructure:"OPENAI_API_KEY"` // API key for OpenAI code generation
	CodeModelID string `mapstructure:"CODE_MODEL_ID"`  // e.g., "gpt-4o"

	// External code agent configuration (used when no OpenAI key is set)
	CodeAgentPath    string `mapstructure:"CODE_AGENT_PATH"`    // Path to the agent executable, e.g., "claude"
	CodeAgentTimeout int    `mapstructure:"CODE_AGENT_TIMEOUT"` // Wall-clock timeout in seconds for agent calls

	// Output configuration
	OutputDir string `mapstructure:"OUTPUT_DIR"` // Default directory for generated projects

	// Server configuration (serve mode)
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g., ":8080"
}

// Defaults applied after loading when a value is unset.
const (
	DefaultDesignModelID    = "gemini-1.5-pro"
	DefaultCodeModelID      = "gpt-4o"
	DefaultCodeAgentPath    = "claude"
	DefaultCodeAgentTimeout = 300
	DefaultOutputDir        = "./generated"
	DefaultServerAddress    = ":8080"
)

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)     // Path to look for the config file in
	viper.SetConfigName("config") // Name of config file (without extension)
	viper.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name

	viper.AutomaticEnv() // Read environment variables that match keys

	// Keys must be bound explicitly for AutomaticEnv to surface them
	// through Unmarshal when no config file is present.
	for _, key := range []string{
		"GEMINI_API_KEY", "DESIGN_MODEL_ID",
		"OPENAI_API_KEY", "CODE_MODEL_ID",
		"CODE_AGENT_PATH", "CODE_AGENT_TIMEOUT",
		"OUTPUT_DIR", "SERVER_ADDRESS",
	} {
		if bindErr := viper.BindEnv(key); bindErr != nil {
			return Config{}, fmt.Errorf("failed to bind env var %s: %w", key, bindErr)
		}
	}

	// Attempt to read the config file
	err = viper.ReadInConfig()
	if err != nil {
		// If config file not found, log it but continue if env vars might be set
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file ('config.yaml') not found in specified path, relying solely on environment variables.")
		} else {
			// If another error occurred reading the config file, return it
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", viper.ConfigFileUsed())
	}

	// Unmarshal the configuration into the Config struct
	err = viper.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	applyDefaults(&config)

	return
}

func applyDefaults(config *Config) {
	if config.DesignModelID == "" {
		config.DesignModelID = DefaultDesignModelID
	}
	if config.CodeModelID == "" {
		config.CodeModelID = DefaultCodeModelID
	}
	if config.CodeAgentPath == "" {
		config.CodeAgentPath = DefaultCodeAgentPath
	}
	if config.CodeAgentTimeout <= 0 {
		config.CodeAgentTimeout = DefaultCodeAgentTimeout
	}
	if config.OutputDir == "" {
		config.OutputDir = DefaultOutputDir
	}
	if config.ServerAddress == "" {
		config.ServerAddress = DefaultServerAddress
	}
}
