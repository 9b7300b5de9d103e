package store

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config exposes the settings the journal reads at startup.
type Config interface {
	BasePath() string
	LogLevel() string
	LogFile() string
	AIProvider() string
	AIModel() string
	AIKey() string
	AIBaseURL() string
	AITimeout() time.Duration
	WeekStart() time.Weekday
}

const (
	DefaultPath      = "~/.journal.db"
	DefaultLogFile   = "~/.journal.log"
	DefaultAITimeout = 20 * time.Second
)

// LoadConfig reads .journal.{yaml,json,toml} from $JOURNAL_CONFIG_PATH, the
// working directory or $HOME, layered under JOURNAL_* environment variables.
// file, when set, names the config file explicitly.
func LoadConfig(file string) (Config, error) {
	v := viper.New()
	v.SetDefault("path", DefaultPath)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", DefaultLogFile)
	v.SetDefault("ai.provider", "gemini")
	v.SetDefault("ai.model", "")
	v.SetDefault("ai.api-key", "")
	v.SetDefault("ai.base-url", "")
	v.SetDefault("ai.timeout", DefaultAITimeout)
	v.SetDefault("heatmap.week-start", "sunday")

	v.SetEnvPrefix("JOURNAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(".journal")
		if override := os.Getenv("JOURNAL_CONFIG_PATH"); override != "" {
			v.AddConfigPath(override)
		}
		v.AddConfigPath("./")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: reading config file: %w", err)
		}
	}

	cfg := &fileConfig{
		Path:     v.GetString("path"),
		Level:    v.GetString("log.level"),
		Log:      v.GetString("log.file"),
		Provider: v.GetString("ai.provider"),
		Model:    v.GetString("ai.model"),
		Key:      v.GetString("ai.api-key"),
		BaseURL:  v.GetString("ai.base-url"),
		Timeout:  v.GetDuration("ai.timeout"),
		FirstDay: v.GetString("heatmap.week-start"),
	}

	var err error
	if cfg.Path, err = homedir.Expand(cfg.Path); err != nil {
		return nil, fmt.Errorf("store: expanding path: %w", err)
	}
	if cfg.Log, err = homedir.Expand(cfg.Log); err != nil {
		return nil, fmt.Errorf("store: expanding log file: %w", err)
	}
	if _, err := ParseWeekday(cfg.FirstDay); err != nil {
		return nil, err
	}
	return cfg, nil
}

type fileConfig struct {
	Path     string        `json:"path"`
	Level    string        `json:"logLevel"`
	Log      string        `json:"logFile"`
	Provider string        `json:"aiProvider"`
	Model    string        `json:"aiModel"`
	Key      string        `json:"-"`
	BaseURL  string        `json:"aiBaseURL"`
	Timeout  time.Duration `json:"aiTimeout"`
	FirstDay string        `json:"weekStart"`
}

func (f *fileConfig) BasePath() string  { return f.Path }
func (f *fileConfig) LogLevel() string  { return f.Level }
func (f *fileConfig) LogFile() string   { return f.Log }
func (f *fileConfig) AIModel() string   { return f.Model }
func (f *fileConfig) AIBaseURL() string { return f.BaseURL }

func (f *fileConfig) AIProvider() string {
	return strings.ToLower(strings.TrimSpace(f.Provider))
}

// AIKey falls back to the provider-specific environment variables the
// hosted SDKs document.
func (f *fileConfig) AIKey() string {
	if f.Key != "" {
		return f.Key
	}
	names := []string{"API_KEY"}
	switch f.AIProvider() {
	case "openai":
		names = append(names, "OPENAI_API_KEY")
	default:
		names = append(names, "GEMINI_API_KEY")
	}
	for _, n := range names {
		if v := os.Getenv(n); v != "" {
			return v
		}
	}
	return ""
}

func (f *fileConfig) AITimeout() time.Duration {
	if f.Timeout <= 0 {
		return DefaultAITimeout
	}
	return f.Timeout
}

func (f *fileConfig) WeekStart() time.Weekday {
	d, _ := ParseWeekday(f.FirstDay)
	return d
}

// ParseWeekday accepts full or three-letter English day names.
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return time.Sunday, nil
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("store: unknown week start %q", s)
}
