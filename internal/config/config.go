package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// PayrollConfig holds the knobs of the earned-salary engine. Percentages are
// fractions of gross monthly salary; fixed amounts are monthly rupee figures.
type PayrollConfig struct {
	WorkingHoursPerDay float64
	OvertimeMultiplier float64

	// Default salary-structure derivation when no structure is stored.
	BasicPct         float64
	HRAPct           float64
	ConveyanceAmount float64
	MedicalAmount    float64

	// Statutory thresholds.
	ESIWageCeiling float64
	DefaultPTState string
}

func Load() (*Config, error) {
	// A missing .env is fine in deployed environments; env vars take over.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "edupoint-ims"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Payroll configuration
	payroll := PayrollConfig{}
	if payroll.WorkingHoursPerDay, err = getEnvFloat("PAYROLL_WORKING_HOURS_PER_DAY", 8); err != nil {
		return nil, err
	}
	if payroll.OvertimeMultiplier, err = getEnvFloat("PAYROLL_OVERTIME_MULTIPLIER", 1.5); err != nil {
		return nil, err
	}
	if payroll.BasicPct, err = getEnvFloat("PAYROLL_BASIC_PCT", 0.40); err != nil {
		return nil, err
	}
	if payroll.HRAPct, err = getEnvFloat("PAYROLL_HRA_PCT", 0.20); err != nil {
		return nil, err
	}
	if payroll.ConveyanceAmount, err = getEnvFloat("PAYROLL_CONVEYANCE_AMOUNT", 1600); err != nil {
		return nil, err
	}
	if payroll.MedicalAmount, err = getEnvFloat("PAYROLL_MEDICAL_AMOUNT", 1250); err != nil {
		return nil, err
	}
	if payroll.ESIWageCeiling, err = getEnvFloat("PAYROLL_ESI_WAGE_CEILING", 21000); err != nil {
		return nil, err
	}
	payroll.DefaultPTState = getEnv("PAYROLL_DEFAULT_PT_STATE", "KA")
	config.Payroll = payroll

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Payroll.WorkingHoursPerDay <= 0 {
		return fmt.Errorf("PAYROLL_WORKING_HOURS_PER_DAY must be positive")
	}
	if c.Payroll.OvertimeMultiplier <= 0 {
		return fmt.Errorf("PAYROLL_OVERTIME_MULTIPLIER must be positive")
	}
	if c.Payroll.BasicPct+c.Payroll.HRAPct > 1 {
		return fmt.Errorf("PAYROLL_BASIC_PCT and PAYROLL_HRA_PCT must not exceed 100%% combined")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}
