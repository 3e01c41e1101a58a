package configs

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v2"

	"homework_tracker/internal/domain"
)

type Config struct {
	GRPC         GRPCConfig         `yaml:"grpc"`
	DB           DBConfig           `yaml:"db"`
	Kafka        KafkaConfig        `yaml:"kafka"`
	Redis        RedisConfig        `yaml:"redis"`
	Reminders    RemindersConfig    `yaml:"reminders"`
	Gamification GamificationConfig `yaml:"gamification"`
	Reports      ReportsConfig      `yaml:"reports"`
	Log          LogConfig          `yaml:"log"`
}

type GRPCConfig struct {
	Address string        `yaml:"address" env:"GRPC_ADDRESS"`
	Timeout time.Duration `yaml:"timeout" env:"GRPC_TIMEOUT"`
}

type DBConfig struct {
	URL            string `yaml:"url" env:"DB_URL"`
	Host           string `yaml:"host" env:"DB_HOST"`
	Port           int    `yaml:"port" env:"DB_PORT"`
	User           string `yaml:"user" env:"DB_USER"`
	Password       string `yaml:"password" env:"DB_PASSWORD"` //nolint:gosec // config struct, not hardcoded cred
	DBName         string `yaml:"dbname" env:"DB_NAME"`
	SSLMode        string `yaml:"sslmode" env:"DB_SSL_MODE"`
	MigrationsPath string `yaml:"migrations_path" env:"DB_MIGRATIONS_PATH"`
	ConnectRetries int    `yaml:"connect_retries" env:"DB_CONNECT_RETRIES"`
	MaxOpenConns   int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
}

type KafkaConfig struct {
	Brokers       []string      `yaml:"brokers" env:"KAFKA_BROKERS"`
	ReminderTopic string        `yaml:"reminder_topic" env:"KAFKA_REMINDER_TOPIC"`
	EventTopic    string        `yaml:"event_topic" env:"KAFKA_EVENT_TOPIC"`
	BatchTimeout  time.Duration `yaml:"batch_timeout" env:"KAFKA_BATCH_TIMEOUT"`
}

type RedisConfig struct {
	// Addr empty disables the leaderboard cache.
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"` //nolint:gosec // config struct, not hardcoded cred
	DB       int    `yaml:"db" env:"REDIS_DB"`
	Key      string `yaml:"leaderboard_key" env:"REDIS_LEADERBOARD_KEY"`
}

type RemindersConfig struct {
	Interval time.Duration   `yaml:"interval" env:"REMINDER_INTERVAL"`
	Offsets  []time.Duration `yaml:"offsets" env:"REMINDER_OFFSETS"`
}

type GamificationConfig struct {
	Levels     []domain.Level    `yaml:"levels"`
	Challenges []ChallengeConfig `yaml:"challenges"`
}

// ChallengeConfig seeds a challenge at startup; existing challenges with
// the same id are updated in place.
type ChallengeConfig struct {
	ID           string    `yaml:"id"`
	Type         string    `yaml:"type"`
	Title        string    `yaml:"title"`
	Target       int       `yaml:"target"`
	PointsReward int64     `yaml:"points_reward"`
	StartDate    time.Time `yaml:"start_date"`
	EndDate      time.Time `yaml:"end_date"`
	Disabled     bool      `yaml:"disabled"`
}

type ReportsConfig struct {
	BatchConcurrency int `yaml:"batch_concurrency" env:"REPORTS_BATCH_CONCURRENCY"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
}

func Load() (*Config, error) {
	return LoadFile(getConfigPath())
}

func LoadFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath) //nolint:gosec // config path from env/flag
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read env overrides: %w", err)
	}

	setDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func getConfigPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}

	possiblePaths := []string{
		"config/config.yaml",
		"/etc/homework-tracker/config.yaml",
		"./config.yaml",
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return "config.yaml"
}

func setDefaults(cfg *Config) {
	if cfg.GRPC.Timeout == 0 {
		cfg.GRPC.Timeout = 30 * time.Second
	}

	if cfg.DB.SSLMode == "" {
		cfg.DB.SSLMode = "disable"
	}
	if cfg.DB.MigrationsPath == "" {
		cfg.DB.MigrationsPath = "migrations"
	}
	if cfg.DB.ConnectRetries == 0 {
		cfg.DB.ConnectRetries = 5
	}

	if cfg.Kafka.ReminderTopic == "" {
		cfg.Kafka.ReminderTopic = "homework-reminders"
	}
	if cfg.Kafka.EventTopic == "" {
		cfg.Kafka.EventTopic = "submission-events"
	}

	if cfg.Reminders.Interval == 0 {
		cfg.Reminders.Interval = time.Minute
	}
	if len(cfg.Reminders.Offsets) == 0 {
		cfg.Reminders.Offsets = []time.Duration{24 * time.Hour, time.Hour}
	}

	if len(cfg.Gamification.Levels) == 0 {
		cfg.Gamification.Levels = domain.DefaultLevelTable().Levels()
	}

	if cfg.Reports.BatchConcurrency == 0 {
		cfg.Reports.BatchConcurrency = 4
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
}

func validateConfig(cfg *Config) error {
	if cfg.GRPC.Address == "" {
		return fmt.Errorf("GRPC address must be set")
	}

	if len(cfg.Kafka.Brokers) == 0 {
		return fmt.Errorf("at least one Kafka broker must be specified")
	}

	if cfg.DB.URL == "" && (cfg.DB.Host == "" || cfg.DB.User == "" || cfg.DB.DBName == "") {
		return fmt.Errorf("database configuration is incomplete")
	}

	if cfg.Reminders.Interval < 0 {
		return fmt.Errorf("reminder interval must be positive")
	}
	for _, offset := range cfg.Reminders.Offsets {
		if offset <= 0 {
			return fmt.Errorf("reminder offset %s must be positive", offset)
		}
	}

	if _, err := domain.NewLevelTable(cfg.Gamification.Levels); err != nil {
		return fmt.Errorf("gamification levels: %w", err)
	}

	for i, c := range cfg.Gamification.Challenges {
		if _, err := c.Challenge(); err != nil {
			return fmt.Errorf("challenge %d: %w", i, err)
		}
	}

	return nil
}

// Challenge converts the seed entry into a domain challenge.
func (c ChallengeConfig) Challenge() (domain.Challenge, error) {
	id, err := uuid.Parse(c.ID)
	if err != nil {
		return domain.Challenge{}, fmt.Errorf("invalid id %q: %w", c.ID, err)
	}

	challenge := domain.Challenge{
		ID:           id,
		Type:         domain.ChallengeType(c.Type),
		Title:        c.Title,
		Target:       c.Target,
		PointsReward: c.PointsReward,
		StartDate:    c.StartDate.UTC(),
		EndDate:      c.EndDate.UTC(),
		IsActive:     !c.Disabled,
	}

	switch {
	case !challenge.Type.IsValid():
		return domain.Challenge{}, fmt.Errorf("unknown challenge type %q", c.Type)
	case challenge.Target <= 0:
		return domain.Challenge{}, fmt.Errorf("target must be positive")
	case challenge.PointsReward < 0:
		return domain.Challenge{}, fmt.Errorf("points reward must not be negative")
	case !challenge.StartDate.Before(challenge.EndDate):
		return domain.Challenge{}, fmt.Errorf("start date must be before end date")
	}

	return challenge, nil
}
