package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/SpeedyGonzale5/game-captcha/internal/analysis"
)

// Conf holds the application configuration, making it accessible globally.
var Conf *Config

// Config struct is the top-level configuration structure.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Security SecurityConfig `mapstructure:"security"`
	Session  SessionConfig  `mapstructure:"session"`
	Events   EventsConfig   `mapstructure:"events"`
}

// ServerConfig holds server-related settings.
type ServerConfig struct {
	Port          string `mapstructure:"port"`
	SessionSecret string `mapstructure:"session_secret"`
	PromptsFile   string `mapstructure:"prompts_file"`
}

// LoggingConfig holds settings for the logger.
type LoggingConfig struct {
	Directory  string `mapstructure:"directory"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// SecurityConfig holds the scoring thresholds. These are tunable knobs,
// not validated security guarantees.
type SecurityConfig struct {
	MinReactionTime     float64 `mapstructure:"min_reaction_time"`
	MaxReactionTime     float64 `mapstructure:"max_reaction_time"`
	MinAccuracy         float64 `mapstructure:"min_accuracy"`
	HumanScoreThreshold float64 `mapstructure:"human_score_threshold"`
	MaxMouseSpeed       float64 `mapstructure:"max_mouse_speed"`
	MinMouseVariance    float64 `mapstructure:"min_mouse_variance"`
}

// SessionConfig holds verification-session lifecycle settings.
type SessionConfig struct {
	TTL           time.Duration `mapstructure:"ttl"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

// EventsConfig holds the analytics event log settings.
type EventsConfig struct {
	Capacity int `mapstructure:"capacity"`
}

// AnalyzerConfig converts the security section into the scoring core's
// threshold set.
func (s SecurityConfig) AnalyzerConfig() analysis.Config {
	return analysis.Config{
		MinReactionTime:     s.MinReactionTime,
		MaxReactionTime:     s.MaxReactionTime,
		MinAccuracy:         s.MinAccuracy,
		HumanScoreThreshold: s.HumanScoreThreshold,
		MaxMouseSpeed:       s.MaxMouseSpeed,
		MinMouseVariance:    s.MinMouseVariance,
	}
}

// setDefaults sets the default values for the configuration.
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "5050")
	v.SetDefault("server.prompts_file", "config/prompts.yaml")

	// Logging defaults
	v.SetDefault("logging.directory", "logs")
	v.SetDefault("logging.max_size", 10)   // 10 MB
	v.SetDefault("logging.max_backups", 3) // Keep 3 backups
	v.SetDefault("logging.max_age", 7)     // 7 days
	v.SetDefault("logging.compress", true) // Compress old logs

	// Security thresholds
	def := analysis.DefaultConfig()
	v.SetDefault("security.min_reaction_time", def.MinReactionTime)
	v.SetDefault("security.max_reaction_time", def.MaxReactionTime)
	v.SetDefault("security.min_accuracy", def.MinAccuracy)
	v.SetDefault("security.human_score_threshold", def.HumanScoreThreshold)
	v.SetDefault("security.max_mouse_speed", def.MaxMouseSpeed)
	v.SetDefault("security.min_mouse_variance", def.MinMouseVariance)

	// Session lifecycle
	v.SetDefault("session.ttl", 30*time.Minute)
	v.SetDefault("session.sweep_interval", time.Minute)

	// Analytics event log
	v.SetDefault("events.capacity", 1000)
}

// Init initializes the configuration with Viper.
func Init(projectRoot string, log *zap.Logger) error {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// --- File Configuration ---
	v.AddConfigPath(filepath.Join(projectRoot, "config"))
	v.SetConfigName("config") // Name of config file (without extension)
	v.SetConfigType("yaml")

	// --- Environment Variable Binding ---
	v.SetEnvPrefix("GAMECAPTCHA") // e.g., GAMECAPTCHA_SERVER_PORT
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read the initial configuration from the file.
	// It's okay if the file doesn't exist; defaults and env vars will be used.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Unmarshal the config into our global Conf variable
	if err := v.Unmarshal(&Conf); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	// Watch for configuration changes so threshold tuning does not require
	// a restart.
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		log.Info("Configuration file changed, reloading.", zap.String("file", e.Name))
		if err := v.Unmarshal(&Conf); err != nil {
			log.Error("Error reloading configuration", zap.Error(err))
		}
	})

	log.Info("Configuration loaded successfully")
	return nil
}
