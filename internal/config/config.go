package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go-outtime/internal/shared/connection"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App       AppConfig       `yaml:"app"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	JWT       JWTConfig       `yaml:"jwt"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Invite    InviteConfig    `yaml:"invite"`
}

type AppConfig struct {
	Env  string `yaml:"env"`
	Port string `yaml:"port"`
}

type DatabaseConfig struct {
	Host       string `yaml:"host"`
	Port       string `yaml:"port"`
	User       string `yaml:"user"`
	Password   string `yaml:"password"`
	Name       string `yaml:"name"`
	SSLMode    string `yaml:"ssl_mode"`
	MaxRetries int    `yaml:"max_retries"`
}

type RedisConfig struct {
	Addr string `yaml:"addr"`
}

type KafkaConfig struct {
	Brokers []string `yaml:"brokers"`
	GroupID string   `yaml:"group_id"`
}

type JWTConfig struct {
	Secret        string        `yaml:"secret"`
	AccessTTL     time.Duration `yaml:"-"`
	RefreshTTL    time.Duration `yaml:"-"`
	AccessTTLRaw  string        `yaml:"access_ttl"`
	RefreshTTLRaw string        `yaml:"refresh_ttl"`
}

type TelegramConfig struct {
	Token       string `yaml:"token"`
	BotUsername string `yaml:"bot_username"`
	// BotAPIKey protects the /bot HTTP endpoints.
	BotAPIKey string `yaml:"bot_api_key"`
}

type SchedulerConfig struct {
	CleanupTimezone string        `yaml:"cleanup_timezone"`
	CleanupSpec     string        `yaml:"cleanup_spec"`
	LateOffset      time.Duration `yaml:"-"`
	SendDelay       time.Duration `yaml:"-"`
	LateOffsetRaw   string        `yaml:"late_offset"`
	SendDelayRaw    string        `yaml:"send_delay"`
	Weekdays        []string      `yaml:"weekdays"`
}

type InviteConfig struct {
	TTL    time.Duration `yaml:"-"`
	TTLRaw string        `yaml:"ttl"`
}

// Load reads .env, then the optional YAML file at path, then lets
// environment variables override both.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse yaml: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	c.App.Env = getEnv("APP_ENV", c.App.Env)
	c.App.Port = getEnv("PORT", c.App.Port)

	c.Database.Host = getEnv("DB_HOST", c.Database.Host)
	c.Database.Port = getEnv("DB_PORT", c.Database.Port)
	c.Database.User = getEnv("DB_USER", c.Database.User)
	c.Database.Password = getEnv("DB_PASSWORD", c.Database.Password)
	c.Database.Name = getEnv("DB_NAME", c.Database.Name)
	c.Database.SSLMode = getEnv("DB_SSLMODE", c.Database.SSLMode)
	c.Database.MaxRetries = getEnvInt("DB_MAX_RETRIES", c.Database.MaxRetries)

	c.Redis.Addr = getEnv("REDIS_ADDR", c.Redis.Addr)

	if brokers := os.Getenv("KAFKA_BROKER"); brokers != "" {
		c.Kafka.Brokers = splitList(brokers)
	}
	c.Kafka.GroupID = getEnv("KAFKA_GROUP_ID", c.Kafka.GroupID)

	c.JWT.Secret = getEnv("JWT_SECRET", c.JWT.Secret)
	c.JWT.AccessTTLRaw = getEnv("JWT_ACCESS_TTL", c.JWT.AccessTTLRaw)
	c.JWT.RefreshTTLRaw = getEnv("JWT_REFRESH_TTL", c.JWT.RefreshTTLRaw)

	c.Telegram.Token = getEnv("TELEGRAM_BOT_TOKEN", c.Telegram.Token)
	c.Telegram.BotUsername = getEnv("BOT_USERNAME", c.Telegram.BotUsername)
	c.Telegram.BotAPIKey = getEnv("BOT_API_KEY", c.Telegram.BotAPIKey)

	c.Scheduler.CleanupTimezone = getEnv("SCHEDULER_CLEANUP_TZ", c.Scheduler.CleanupTimezone)
	c.Scheduler.CleanupSpec = getEnv("SCHEDULER_CLEANUP_SPEC", c.Scheduler.CleanupSpec)
	c.Scheduler.LateOffsetRaw = getEnv("SCHEDULER_LATE_OFFSET", c.Scheduler.LateOffsetRaw)
	c.Scheduler.SendDelayRaw = getEnv("SCHEDULER_SEND_DELAY", c.Scheduler.SendDelayRaw)
	if days := os.Getenv("SCHEDULER_WEEKDAYS"); days != "" {
		c.Scheduler.Weekdays = splitList(days)
	}

	c.Invite.TTLRaw = getEnv("INVITE_TTL", c.Invite.TTLRaw)
}

func (c *Config) validateAndNormalize() error {
	if c.App.Env == "" {
		c.App.Env = "development"
	}
	if c.App.Port == "" {
		c.App.Port = "3000"
	}

	if err := c.Database.validateAndNormalize(); err != nil {
		return err
	}

	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	if c.Kafka.GroupID == "" {
		c.Kafka.GroupID = "outtime-onboarding"
	}

	var err error
	if c.JWT.AccessTTL, err = parseDurationDefault(c.JWT.AccessTTLRaw, 15*time.Minute); err != nil {
		return fmt.Errorf("config: jwt.access_ttl: %w", err)
	}
	if c.JWT.RefreshTTL, err = parseDurationDefault(c.JWT.RefreshTTLRaw, 7*24*time.Hour); err != nil {
		return fmt.Errorf("config: jwt.refresh_ttl: %w", err)
	}
	if c.IsProduction() && c.JWT.Secret == "" {
		return fmt.Errorf("config: jwt.secret must be set in production")
	}

	if c.Telegram.BotUsername == "" {
		c.Telegram.BotUsername = "outtime_bot"
	}

	if err := c.Scheduler.validateAndNormalize(); err != nil {
		return err
	}

	if c.Invite.TTL, err = parseDurationDefault(c.Invite.TTLRaw, 7*24*time.Hour); err != nil {
		return fmt.Errorf("config: invite.ttl: %w", err)
	}
	return nil
}

func (d *DatabaseConfig) validateAndNormalize() error {
	if d.Host == "" {
		d.Host = "localhost"
	}
	if d.Port == "" {
		d.Port = "5432"
	}
	if d.Name == "" {
		return fmt.Errorf("config: database.name must be set")
	}
	if d.User == "" {
		return fmt.Errorf("config: database.user must be set")
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.MaxRetries <= 0 {
		d.MaxRetries = 5
	}
	return nil
}

func (s *SchedulerConfig) validateAndNormalize() error {
	if s.CleanupTimezone == "" {
		s.CleanupTimezone = "UTC"
	}
	if _, err := time.LoadLocation(s.CleanupTimezone); err != nil {
		return fmt.Errorf("config: scheduler.cleanup_timezone: %w", err)
	}
	if s.CleanupSpec == "" {
		s.CleanupSpec = "0 0 * * *"
	}

	var err error
	if s.LateOffset, err = parseDurationDefault(s.LateOffsetRaw, time.Hour); err != nil {
		return fmt.Errorf("config: scheduler.late_offset: %w", err)
	}
	if s.SendDelay, err = parseDurationDefault(s.SendDelayRaw, 100*time.Millisecond); err != nil {
		return fmt.Errorf("config: scheduler.send_delay: %w", err)
	}

	if len(s.Weekdays) == 0 {
		s.Weekdays = []string{"mon", "tue", "wed", "thu", "fri"}
	}
	if _, err := s.WeekdaySet(); err != nil {
		return err
	}
	return nil
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// WeekdaySet resolves the configured day names ("mon", "Tuesday", ...).
func (s SchedulerConfig) WeekdaySet() (map[time.Weekday]bool, error) {
	set := make(map[time.Weekday]bool, len(s.Weekdays))
	for _, raw := range s.Weekdays {
		name := strings.ToLower(strings.TrimSpace(raw))
		if len(name) > 3 {
			name = name[:3]
		}
		day, ok := weekdayNames[name]
		if !ok {
			return nil, fmt.Errorf("config: scheduler.weekdays: unknown day %q", raw)
		}
		set[day] = true
	}
	return set, nil
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func (c *Config) Postgres() connection.PostgresConfig {
	return connection.PostgresConfig{
		Host:     c.Database.Host,
		User:     c.Database.User,
		Password: c.Database.Password,
		DBName:   c.Database.Name,
		Port:     c.Database.Port,
		SSLMode:  c.Database.SSLMode,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseDurationDefault(raw string, fallback time.Duration) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	return time.ParseDuration(raw)
}
