package models

// Config represents application configuration
type Config struct {
	App    AppConfig
	Server ServerConfig
	Logger LoggerConfig
	Engine EngineConfig
	Bridge BridgeConfig
	Redis  RedisConfig
	NATS   NATSConfig
	NSQ    NSQConfig
	Ports  PortsConfig
	Report ReportConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// LoggerConfig contains log output configuration
type LoggerConfig struct {
	Level      string
	FilePath   string
	MaxSize    int64
	MaxAge     int
	MaxBackups int
	Compress   bool
}

// EngineConfig contains routing engine configuration
type EngineConfig struct {
	URL            string
	TimeoutSeconds int
	BathymetryPath string
	CoastlinePath  string
	WeatherDir     string
	SpeedMps       float64
	CacheTTL       int // in minutes, 0 disables the route cache
}

// BridgeConfig contains map view synchronization configuration
type BridgeConfig struct {
	HandlerPollMs      int
	HandlerWaitMs      int
	LoadTimeoutSeconds int
	OutboxSize         int
	Secret             string
	TokenExpiration    int // in minutes
	Issuer             string
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL           string
	ReportSubject string
}

// NSQConfig contains NSQ producer configuration
type NSQConfig struct {
	Address     string
	ReportTopic string
}

// PortsConfig points at the static port list
type PortsConfig struct {
	CSVPath string
}

// ReportConfig selects the report projectors, comma separated: board, nats, nsq, log
type ReportConfig struct {
	Sinks string
}
