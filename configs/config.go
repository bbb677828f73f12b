package configs

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config struct
type Config struct {
	App      `mapstructure:"app"`
	Log      `mapstructure:"log"`
	Bridge   `mapstructure:"bridge"`
	Runtime  `mapstructure:"runtime"`
	LMStudio `mapstructure:"lmstudio"`
	Echo     `mapstructure:"echo"`
	NATS     `mapstructure:"nats"`
}

// App struct
type App struct {
	Debug bool   `mapstructure:"debug"`
	Env   string `mapstructure:"env"`
	Port  string `mapstructure:"port"`
}

// Log struct
type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text | json
}

// Bridge struct
type Bridge struct {
	Channel      string   `mapstructure:"channel"`
	Instructions string   `mapstructure:"instructions"`
	Temperature  *float64 `mapstructure:"temperature"`
	Timeout      int      `mapstructure:"timeout"` // seconds a transport waits for a reply
	Platform     Platform `mapstructure:"platform"`
}

// Platform struct
type Platform struct {
	Minimum string `mapstructure:"minimum"` // e.g. "macos 26.0"; empty disables the check
	Version string `mapstructure:"version"` // overrides the detected host version
}

// Runtime struct
type Runtime struct {
	Provider string `mapstructure:"provider"` // foundation | lmstudio | echo
}

// LMStudio struct
type LMStudio struct {
	BaseURL      string `mapstructure:"base_url"`
	Model        string `mapstructure:"model"`
	Timeout      int    `mapstructure:"timeout"`       // seconds
	ProbeTimeout int    `mapstructure:"probe_timeout"` // seconds
}

// Echo struct
type Echo struct {
	Available bool   `mapstructure:"available"`
	Reason    string `mapstructure:"reason"`
	Prefix    string `mapstructure:"prefix"`
}

// NATS struct
type NATS struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
	Subject string `mapstructure:"subject"`
	Name    string `mapstructure:"name"`
}

var config Config

var defaults = map[string]interface{}{
	"app.debug":               false,
	"app.env":                 "",
	"app.port":                "9089",
	"log.level":               "info",
	"log.format":              "text",
	"bridge.channel":          "afterlife/native_ai",
	"bridge.instructions":     "",
	"bridge.timeout":          120,
	"bridge.platform.minimum": "",
	"bridge.platform.version": "",
	"runtime.provider":        "foundation",
	"lmstudio.base_url":       "http://localhost:1234",
	"lmstudio.model":          "",
	"lmstudio.timeout":        60,
	"lmstudio.probe_timeout":  3,
	"echo.available":          true,
	"echo.reason":             "",
	"echo.prefix":             "",
	"nats.enabled":            false,
	"nats.url":                "nats://127.0.0.1:4222",
	"nats.subject":            "nativeai.native_ai",
	"nats.name":               "native-ai-bridge",
}

// InitViper func
func InitViper(path, env string) {
	getConfig(path, env)
}

// GetViper func
func GetViper() *Config {
	return &config
}

func getConfig(path, env string) {
	viper.Reset()
	for key, value := range defaults {
		viper.SetDefault(key, value)
	}
	// No default: an unset temperature leaves the runtime's own choice
	_ = viper.BindEnv("bridge.temperature")

	viper.SetConfigName("config")
	viper.AddConfigPath(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AllowEmptyEnv(true)
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}
	base := viper.ConfigFileUsed()

	if env != "" {
		if err := mergeEnvConfig(path, env); err != nil {
			panic(err)
		}
		viper.SetConfigFile(base)
	}

	viper.WatchConfig()
	viper.OnConfigChange(func(e fsnotify.Event) {
		log.Println("Config file has changed: ", e.Name)
	})
	config = Config{}
	err = viper.Unmarshal(&config)
	if err != nil {
		log.Fatalln(err)
	}
}

// mergeEnvConfig merges config.<env>.yaml over the base config when present
func mergeEnvConfig(path, env string) error {
	file := filepath.Join(path, "config."+env+".yaml")
	if _, err := os.Stat(file); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	viper.SetConfigFile(file)
	return viper.MergeInConfig()
}
