package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names read by LoadConfig.
const (
	EnvHTTPPort              = "HTTP_PORT"
	EnvLogLevel              = "LOG_LEVEL"
	EnvLogsDirectory         = "LOGS_DIRECTORY"
	EnvDeliveryRoundSchedule = "DELIVERY_ROUND_SCHEDULE"
	EnvStateReportSchedule   = "STATE_REPORT_SCHEDULE"
	EnvSeedDemoData          = "SEED_DEMO_DATA"
)

const (
	defaultHTTPPort = "8080"
	defaultLogLevel = "info"
)

type Config struct {
	HTTPPort string
	LogLevel string
	// LogsDirectory enables rotating file logs when set; logs go to stderr otherwise.
	LogsDirectory string
	// Cron expressions with seconds; empty disables the job.
	DeliveryRoundSchedule string
	StateReportSchedule   string
	SeedDemoData          bool
}

// LoadConfig reads the configuration from the environment, falling back to
// the given dotenv files (".env" when none are named) and then to defaults.
// Variables already set in the environment win over the files. Missing files
// are ignored.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	fileValues := make(map[string]string)
	for _, file := range envFiles {
		values, err := godotenv.Read(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, fmt.Errorf("read %s: %w", file, err)
		}
		for k, v := range values {
			fileValues[k] = v
		}
	}

	lookup := func(key, fallback string) string {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v
		}
		if v, ok := fileValues[key]; ok && v != "" {
			return v
		}
		return fallback
	}

	config := Config{
		HTTPPort:              lookup(EnvHTTPPort, defaultHTTPPort),
		LogLevel:              lookup(EnvLogLevel, defaultLogLevel),
		LogsDirectory:         lookup(EnvLogsDirectory, ""),
		DeliveryRoundSchedule: lookup(EnvDeliveryRoundSchedule, ""),
		StateReportSchedule:   lookup(EnvStateReportSchedule, ""),
	}

	seed, err := strconv.ParseBool(lookup(EnvSeedDemoData, "false"))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", EnvSeedDemoData, err)
	}
	config.SeedDemoData = seed

	return config, nil
}
