package config

import (
	"log"
	"os"
	"strconv"

	"github.com/Taeppir/Link/internal/pkg/constants"
	"github.com/Taeppir/Link/internal/pkg/models"
	"github.com/joho/godotenv"
)

// InitConfig loads the .env file at configPath for local runs and reads the environment
func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" && configPath != "" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "route-planner")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", false)
	configs.App.Version = GetEnv("APP_VERSION", "development")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "127.0.0.1")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8765)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "logs/planner.log")
	configs.Logger.MaxSize = GetEnvAsInt64("LOG_MAX_SIZE", 100)
	configs.Logger.MaxAge = GetEnvAsInt("LOG_MAX_AGE", 7)
	configs.Logger.MaxBackups = GetEnvAsInt("LOG_MAX_BACKUPS", 3)
	configs.Logger.Compress = GetEnvAsBool("LOG_COMPRESS", true)

	// Routing engine config
	configs.Engine.URL = GetEnv("ENGINE_URL", "http://localhost:9900")
	configs.Engine.TimeoutSeconds = GetEnvAsInt("ENGINE_TIMEOUT_SECONDS", 600)
	configs.Engine.BathymetryPath = GetEnv("ENGINE_BATHYMETRY_PATH", "data/GEBCO_2024_sub_ice_topo.nc")
	configs.Engine.CoastlinePath = GetEnv("ENGINE_COASTLINE_PATH", "data/GSHHS_i_L1.shp")
	configs.Engine.WeatherDir = GetEnv("ENGINE_WEATHER_DIR", "")
	configs.Engine.SpeedMps = GetEnvAsFloat("ENGINE_SPEED_MPS", constants.DefaultSpeedMps)
	configs.Engine.CacheTTL = GetEnvAsInt("ENGINE_CACHE_TTL", 0)

	// Map bridge config
	configs.Bridge.HandlerPollMs = GetEnvAsInt("BRIDGE_HANDLER_POLL_MS", 50)
	configs.Bridge.HandlerWaitMs = GetEnvAsInt("BRIDGE_HANDLER_WAIT_MS", 5000)
	configs.Bridge.LoadTimeoutSeconds = GetEnvAsInt("BRIDGE_LOAD_TIMEOUT", 30)
	configs.Bridge.OutboxSize = GetEnvAsInt("BRIDGE_OUTBOX_SIZE", 256)
	configs.Bridge.Secret = GetEnv("BRIDGE_SECRET", "")
	configs.Bridge.TokenExpiration = GetEnvAsInt("BRIDGE_TOKEN_EXPIRATION", 720)
	configs.Bridge.Issuer = GetEnv("BRIDGE_ISSUER", "route-planner")

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 4)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")
	configs.NATS.ReportSubject = GetEnv("NATS_REPORT_SUBJECT", constants.SubjectRouteReport)

	// NSQ config
	configs.NSQ.Address = GetEnv("NSQ_ADDRESS", "")
	configs.NSQ.ReportTopic = GetEnv("NSQ_REPORT_TOPIC", constants.TopicRouteReport)

	// Ports config
	configs.Ports.CSVPath = GetEnv("PORTS_CSV_PATH", "ui_data/PortList.csv")

	// Report config
	configs.Report.Sinks = GetEnv("REPORT_SINKS", "board,log")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Printf("Warning: Invalid int64 value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
