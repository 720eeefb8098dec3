package config

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                App                `mapstructure:",squash"`
	Server             Server             `mapstructure:",squash"`
	Database           Database           `mapstructure:",squash"`
	Receipt            Receipt            `mapstructure:",squash"`
	Report             Report             `mapstructure:",squash"`
	MonthlySummarySync MonthlySummarySync `mapstructure:",squash"`
	Cors               Cors               `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	AutoMigrate  bool   `mapstructure:"database_auto_migrate"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
}

// Receipt controla a leitura dos valores numéricos do cupom
type Receipt struct {
	DecimalSeparator   string `mapstructure:"receipt_decimal_separator"`
	ThousandsSeparator string `mapstructure:"receipt_thousands_separator"`
	MaxUploadMB        int64  `mapstructure:"receipt_max_upload_mb"`
}

type Report struct {
	TopN             int    `mapstructure:"report_top_n"`
	ProjectionMonths int    `mapstructure:"report_projection_months"`
	ExportDelimiter  string `mapstructure:"report_export_delimiter"`
}

type MonthlySummarySync struct {
	CronSchedule string `mapstructure:"monthly_summary_sync_cron"`
	Enabled      bool   `mapstructure:"monthly_summary_sync_enabled"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// MaxUploadBytes devolve o limite do upload de cupons em bytes
func (r Receipt) MaxUploadBytes() int64 {
	return r.MaxUploadMB << 20
}

func (r Report) Delimiter() rune {
	delimiter, _ := utf8.DecodeRuneInString(r.ExportDelimiter)
	return delimiter
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", 8000)
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_URL", "localhost:5432/grocery?sslmode=disable")
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "postgres")
	v.SetDefault("DATABASE_AUTO_MIGRATE", true)
	v.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)

	// Formato brasileiro: 1.234,56
	v.SetDefault("RECEIPT_DECIMAL_SEPARATOR", ",")
	v.SetDefault("RECEIPT_THOUSANDS_SEPARATOR", ".")
	v.SetDefault("RECEIPT_MAX_UPLOAD_MB", 10)

	v.SetDefault("REPORT_TOP_N", 10)
	v.SetDefault("REPORT_PROJECTION_MONTHS", 6)
	v.SetDefault("REPORT_EXPORT_DELIMITER", ";")

	v.SetDefault("MONTHLY_SUMMARY_SYNC_CRON", "0 5 1 * *") // No primeiro dia de cada mês às 5h
	v.SetDefault("MONTHLY_SUMMARY_SYNC_ENABLED", false)

	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	v := viper.New()
	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	config := &Config{}

	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar configuração")
	}

	if err := config.validate(); err != nil {
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

func (c *Config) validate() error {
	if utf8.RuneCountInString(c.Receipt.DecimalSeparator) != 1 || utf8.RuneCountInString(c.Receipt.ThousandsSeparator) != 1 {
		return errors.New("RECEIPT_DECIMAL_SEPARATOR e RECEIPT_THOUSANDS_SEPARATOR devem ter um único caractere")
	}
	if c.Receipt.DecimalSeparator == c.Receipt.ThousandsSeparator {
		return errors.New("separadores decimal e de milhar devem ser diferentes")
	}
	if c.Receipt.MaxUploadMB <= 0 {
		return errors.New("RECEIPT_MAX_UPLOAD_MB deve ser positivo")
	}
	if c.Report.ExportDelimiter != "," && c.Report.ExportDelimiter != ";" {
		return errors.Errorf("REPORT_EXPORT_DELIMITER inválido: %q", c.Report.ExportDelimiter)
	}
	if c.Report.TopN <= 0 || c.Report.ProjectionMonths < 0 {
		return errors.New("REPORT_TOP_N deve ser positivo e REPORT_PROJECTION_MONTHS não pode ser negativo")
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
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
