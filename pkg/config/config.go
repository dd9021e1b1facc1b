package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:newsdigest.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Schedule ScheduleConfig `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`

	Digest DigestConfig `yaml:"digest" json:"digest" jsonschema:"description=Digest selection and notification configuration"`

	Categories []CategoryConfig `yaml:"categories" json:"categories" jsonschema:"description=Category registry with weighted keywords"`

	Sources []SourceConfig `yaml:"sources" json:"sources" jsonschema:"description=News sources to ingest"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for article summaries"`

	Email EmailConfig `yaml:"email" json:"email" jsonschema:"description=SMTP delivery configuration"`
}

// ScheduleConfig holds cron specs and worker limits for the scheduler
type ScheduleConfig struct {
	SyncSpec   string `yaml:"sync_spec" json:"sync_spec" jsonschema:"default=0 * * * *,description=Cron spec for article ingestion"`
	DailySpec  string `yaml:"daily_spec" json:"daily_spec" jsonschema:"default=0 9 * * *,description=Cron spec for daily digests"`
	WeeklySpec string `yaml:"weekly_spec" json:"weekly_spec" jsonschema:"default=0 9 * * 1,description=Cron spec for weekly digests"`
	MaxWorkers int    `yaml:"max_workers" json:"max_workers" jsonschema:"default=5,description=Maximum concurrent digest workers"`
}

// DigestConfig holds scoring thresholds and digest sizing
type DigestConfig struct {
	ScoreThreshold    int           `yaml:"score_threshold" json:"score_threshold" jsonschema:"default=3,minimum=1,maximum=10,description=Minimum relevance score to assign a category"`
	MaxCategories     int           `yaml:"max_categories" json:"max_categories" jsonschema:"default=3,minimum=1,description=Maximum categories assigned per article"`
	ImpactThreshold   int           `yaml:"impact_threshold" json:"impact_threshold" jsonschema:"default=7,minimum=1,maximum=10,description=Minimum top score for instant notifications"`
	KeywordMatchScore int           `yaml:"keyword_match_score" json:"keyword_match_score" jsonschema:"default=5,minimum=1,maximum=10,description=Fixed score for custom keyword matches in digests"`
	MaxItems          int           `yaml:"max_items" json:"max_items" jsonschema:"default=20,minimum=1,description=Maximum articles per digest"`
	DailyWindow       time.Duration `yaml:"daily_window" json:"daily_window" jsonschema:"default=24h,description=Time window for daily digests"`
	WeeklyWindow      time.Duration `yaml:"weekly_window" json:"weekly_window" jsonschema:"default=168h,description=Time window for weekly digests"`
}

// CategoryConfig defines one category with its weighted keywords
type CategoryConfig struct {
	ID       int64           `yaml:"id" json:"id" jsonschema:"required,description=Category identifier"`
	Name     string          `yaml:"name" json:"name" jsonschema:"required,description=Category name"`
	Keywords []KeywordConfig `yaml:"keywords" json:"keywords" jsonschema:"description=Weighted keywords for automatic categorization"`
}

// KeywordConfig is a single keyword with its weight
type KeywordConfig struct {
	Word   string `yaml:"word" json:"word" jsonschema:"required,description=Keyword or phrase"`
	Weight int    `yaml:"weight" json:"weight" jsonschema:"default=1,minimum=1,description=Keyword weight"`
}

// SourceConfig defines a feed to ingest articles from
type SourceConfig struct {
	Name     string `yaml:"name" json:"name" jsonschema:"required,description=Source name"`
	URL      string `yaml:"url" json:"url" jsonschema:"required,description=RSS/Atom feed URL"`
	Disabled bool   `yaml:"disabled" json:"disabled,omitempty" jsonschema:"description=Skip this source during sync"`
}

// LLMConfig holds LLM configuration for article summaries
type LLMConfig struct {
	Enabled     bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable AI summaries"`
	Endpoint    string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey      string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model       string        `yaml:"model" json:"model" jsonschema:"description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Temperature for response generation"`
	MaxTokens   int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=300,description=Maximum tokens in response"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
}

// EmailConfig holds SMTP delivery settings
type EmailConfig struct {
	Enabled  bool   `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable email delivery"`
	Host     string `yaml:"host" json:"host" jsonschema:"description=SMTP host"`
	Port     int    `yaml:"port" json:"port" jsonschema:"default=587,description=SMTP port"`
	Username string `yaml:"username" json:"username" jsonschema:"description=SMTP username"`
	Password string `yaml:"password" json:"password" jsonschema:"description=SMTP password (can use environment variable)"`
	From     string `yaml:"from" json:"from" jsonschema:"description=From address"`
	FromName string `yaml:"from_name" json:"from_name" jsonschema:"default=Tech News Digest,description=From display name"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:newsdigest.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for schedule
	if cfg.Schedule.SyncSpec == "" {
		cfg.Schedule.SyncSpec = "0 * * * *"
	}
	if cfg.Schedule.DailySpec == "" {
		cfg.Schedule.DailySpec = "0 9 * * *"
	}
	if cfg.Schedule.WeeklySpec == "" {
		cfg.Schedule.WeeklySpec = "0 9 * * 1"
	}
	if cfg.Schedule.MaxWorkers == 0 {
		cfg.Schedule.MaxWorkers = 5
	}

	// set defaults for digest
	if cfg.Digest.ScoreThreshold == 0 {
		cfg.Digest.ScoreThreshold = 3
	}
	if cfg.Digest.MaxCategories == 0 {
		cfg.Digest.MaxCategories = 3
	}
	if cfg.Digest.ImpactThreshold == 0 {
		cfg.Digest.ImpactThreshold = 7
	}
	if cfg.Digest.KeywordMatchScore == 0 {
		cfg.Digest.KeywordMatchScore = 5
	}
	if cfg.Digest.MaxItems == 0 {
		cfg.Digest.MaxItems = 20
	}
	if cfg.Digest.DailyWindow == 0 {
		cfg.Digest.DailyWindow = 24 * time.Hour
	}
	if cfg.Digest.WeeklyWindow == 0 {
		cfg.Digest.WeeklyWindow = 7 * 24 * time.Hour
	}

	// default keyword weight is 1
	for i := range cfg.Categories {
		for j := range cfg.Categories[i].Keywords {
			if cfg.Categories[i].Keywords[j].Weight == 0 {
				cfg.Categories[i].Keywords[j].Weight = 1
			}
		}
	}

	// set defaults for LLM
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.3
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 300
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 30 * time.Second
	}

	// set defaults for email
	if cfg.Email.Port == 0 {
		cfg.Email.Port = 587
	}
	if cfg.Email.FromName == "" {
		cfg.Email.FromName = "Tech News Digest"
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {

	// validate digest config
	if cfg.Digest.ScoreThreshold < 1 || cfg.Digest.ScoreThreshold > 10 {
		return fmt.Errorf("digest.score_threshold must be between 1 and 10")
	}
	if cfg.Digest.ImpactThreshold < 1 || cfg.Digest.ImpactThreshold > 10 {
		return fmt.Errorf("digest.impact_threshold must be between 1 and 10")
	}
	if cfg.Digest.KeywordMatchScore < 1 || cfg.Digest.KeywordMatchScore > 10 {
		return fmt.Errorf("digest.keyword_match_score must be between 1 and 10")
	}
	if cfg.Digest.MaxCategories < 1 {
		return fmt.Errorf("digest.max_categories must be at least 1")
	}
	if cfg.Digest.MaxItems < 1 {
		return fmt.Errorf("digest.max_items must be at least 1")
	}

	// validate categories
	seen := make(map[int64]bool)
	for _, cat := range cfg.Categories {
		if cat.ID <= 0 {
			return fmt.Errorf("category %q must have a positive id", cat.Name)
		}
		if cat.Name == "" {
			return fmt.Errorf("category %d must have a name", cat.ID)
		}
		if seen[cat.ID] {
			return fmt.Errorf("duplicate category id %d", cat.ID)
		}
		seen[cat.ID] = true
	}

	// validate sources
	for _, src := range cfg.Sources {
		if src.URL == "" {
			return fmt.Errorf("source %q must have a url", src.Name)
		}
	}

	// validate LLM config if enabled
	if cfg.LLM.Enabled {
		if cfg.LLM.Model == "" {
			return fmt.Errorf("llm.model is required when llm is enabled")
		}
		if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
			return fmt.Errorf("llm.temperature must be between 0 and 2")
		}
	}

	// validate email config if enabled
	if cfg.Email.Enabled {
		if cfg.Email.Host == "" {
			return fmt.Errorf("email.host is required when email is enabled")
		}
		if cfg.Email.From == "" {
			return fmt.Errorf("email.from is required when email is enabled")
		}
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetDigestConfig returns digest configuration
func (c *Config) GetDigestConfig() DigestConfig {
	return c.Digest
}

// GetLLMConfig returns LLM configuration
func (c *Config) GetLLMConfig() LLMConfig {
	return c.LLM
}

// GetEmailConfig returns email configuration
func (c *Config) GetEmailConfig() EmailConfig {
	return c.Email
}
