package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	Coach       Coach       `mapstructure:",squash"`
	LLM         LLM         `mapstructure:",squash"`
	Entries     Entries     `mapstructure:",squash"`
	DailyReport DailyReport `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Auth guarda a conta de demonstração e os parâmetros do JWT
type Auth struct {
	Secret       string        `mapstructure:"auth_secret"`
	DemoUsername string        `mapstructure:"auth_demo_username"`
	DemoPassword string        `mapstructure:"auth_demo_password"`
	TokenTTL     time.Duration `mapstructure:"auth_token_ttl"`
}

// Coach aponta para o serviço de dicas (por padrão o próprio /v1/tip)
type Coach struct {
	TipURL  string        `mapstructure:"coach_tip_url"`
	Timeout time.Duration `mapstructure:"coach_timeout"`
}

type LLM struct {
	APIKey    string `mapstructure:"llm_api_key"`
	BaseURL   string `mapstructure:"llm_base_url"`
	Model     string `mapstructure:"llm_model"`
	MaxTokens int    `mapstructure:"llm_max_tokens"`
}

type Entries struct {
	ListLimit int `mapstructure:"entries_list_limit"`
}

type DailyReport struct {
	CronSchedule string `mapstructure:"daily_report_cron"`
	Enabled      bool   `mapstructure:"daily_report_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_DEMO_USERNAME", "demo")
	viper.SetDefault("AUTH_DEMO_PASSWORD", "password123") // ONLY LOCAL
	viper.SetDefault("AUTH_TOKEN_TTL", "2h")

	viper.SetDefault("COACH_TIP_URL", "http://localhost:8000/v1/tip")
	viper.SetDefault("COACH_TIMEOUT", "0s") // 0 = sem timeout

	viper.SetDefault("LLM_API_KEY", "")
	viper.SetDefault("LLM_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("LLM_MODEL", "gpt-4o-mini")
	viper.SetDefault("LLM_MAX_TOKENS", 80)

	viper.SetDefault("ENTRIES_LIST_LIMIT", 50)

	viper.SetDefault("DAILY_REPORT_CRON", "0 22 * * *") // Todos os dias às 22h
	viper.SetDefault("DAILY_REPORT_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate verifica os valores que não têm um padrão seguro
func (c *Config) Validate() error {
	if c.Auth.Secret == "" {
		return fmt.Errorf("config: AUTH_SECRET é obrigatório")
	}
	if c.Auth.DemoUsername == "" || c.Auth.DemoPassword == "" {
		return fmt.Errorf("config: AUTH_DEMO_USERNAME e AUTH_DEMO_PASSWORD são obrigatórios")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("config: AUTH_TOKEN_TTL inválido: %s", c.Auth.TokenTTL)
	}
	if c.Entries.ListLimit <= 0 {
		c.Entries.ListLimit = 50
	}
	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
