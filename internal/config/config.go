package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database and cache
// connections, the upstream reputation services, activity delivery and
// graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// CORSOrigins lists the origins allowed to call the API
		CORSOrigins []string `env:"HTTP_CORS_ORIGINS" env-default:"*" env-separator:"," yaml:"corsOrigins"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"lifeguard" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Redis configures the lookup cache. An empty URL disables caching.
	Redis struct {
		// URL is a redis:// or rediss:// connection URL
		URL string `env:"REDIS_URL" yaml:"url"`
		// Prefix is prepended to every cache key
		Prefix string `env:"REDIS_PREFIX" env-default:"lifeguard:" yaml:"prefix"`
		// PoolSize bounds the number of open connections
		PoolSize int `env:"REDIS_POOL_SIZE" env-default:"10" yaml:"poolSize"`
	} `yaml:"redis"`

	// JWT configures bearer token verification
	JWT struct {
		// PublicKey is the PEM encoded RSA key bearer tokens are verified with
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is the PEM encoded RSA key the jwt command signs with
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// Checks configures the password and URL engines
	Checks struct {
		// Timeout bounds every single upstream call
		Timeout time.Duration `env:"CHECKS_TIMEOUT" env-default:"5s" yaml:"timeout"`
		// UserAgent is sent to the breach range API
		UserAgent string `env:"CHECKS_USER_AGENT" env-default:"lifeguard-password-checker" yaml:"userAgent"`
		// BreachBaseURL is the k-anonymity range API root
		BreachBaseURL string `env:"CHECKS_BREACH_BASE_URL" env-default:"https://api.pwnedpasswords.com" yaml:"breachBaseURL"` //nolint: lll
		// BreachCacheTTL is how long a fetched range body is reused
		BreachCacheTTL time.Duration `env:"CHECKS_BREACH_CACHE_TTL" env-default:"24h" yaml:"breachCacheTTL"`
		// ReputationCacheTTL is how long a domain verdict is reused
		ReputationCacheTTL time.Duration `env:"CHECKS_REPUTATION_CACHE_TTL" env-default:"1h" yaml:"reputationCacheTTL"`
	} `yaml:"checks"`

	// SafeBrowsing configures the threat list matcher. An empty APIKey skips the stage.
	SafeBrowsing struct {
		APIKey          string `env:"SAFE_BROWSING_API_KEY" yaml:"apiKey"`
		BaseURL         string `env:"SAFE_BROWSING_BASE_URL" env-default:"https://safebrowsing.googleapis.com" yaml:"baseURL"` //nolint: lll
		ClientID        string `env:"SAFE_BROWSING_CLIENT_ID" env-default:"lifeguard" yaml:"clientID"`
		RateLimitPerMin int    `env:"SAFE_BROWSING_RATE_LIMIT" env-default:"600" yaml:"rateLimitPerMinute"`
	} `yaml:"safeBrowsing"`

	// IPQS configures the domain reputation service. An empty APIKey skips the stage.
	IPQS struct {
		APIKey          string `env:"IPQS_API_KEY" yaml:"apiKey"`
		BaseURL         string `env:"IPQS_BASE_URL" env-default:"https://ipqualityscore.com" yaml:"baseURL"`
		RateLimitPerMin int    `env:"IPQS_RATE_LIMIT" env-default:"60" yaml:"rateLimitPerMinute"`
	} `yaml:"ipqs"`

	// VirusTotal configures the multi-engine scanner. An empty APIKey skips the stage.
	VirusTotal struct {
		APIKey          string `env:"VIRUSTOTAL_API_KEY" yaml:"apiKey"`
		BaseURL         string `env:"VIRUSTOTAL_BASE_URL" env-default:"https://www.virustotal.com" yaml:"baseURL"`
		RateLimitPerMin int    `env:"VIRUSTOTAL_RATE_LIMIT" env-default:"4" yaml:"rateLimitPerMinute"`
	} `yaml:"virusTotal"`

	// Activity configures activity job processing and optional event publishing
	Activity struct {
		// Queue is the River queue activity jobs run on
		Queue string `env:"ACTIVITY_QUEUE" env-default:"activity" yaml:"queue"`
		// Workers is the number of concurrent activity jobs
		Workers int `env:"ACTIVITY_WORKERS" env-default:"20" yaml:"workers"`
		// MaxAttempts bounds retries of a failing activity job
		MaxAttempts int `env:"ACTIVITY_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
		// DispatchTimeout bounds the detached job insert
		DispatchTimeout time.Duration `env:"ACTIVITY_DISPATCH_TIMEOUT" env-default:"5s" yaml:"dispatchTimeout"`
		// UniqueJobPeriod deduplicates re-inserted activity jobs
		UniqueJobPeriod time.Duration `env:"ACTIVITY_UNIQUE_JOB_PERIOD" env-default:"24h" yaml:"uniqueJobPeriod"`
		// Kafka publishes stored activities when Brokers is not empty
		Kafka struct {
			Brokers  []string `env:"ACTIVITY_KAFKA_BROKERS" env-separator:"," yaml:"brokers"`
			Topic    string   `env:"ACTIVITY_KAFKA_TOPIC" env-default:"lifeguard.activities" yaml:"topic"`
			ClientID string   `env:"ACTIVITY_KAFKA_CLIENT_ID" env-default:"lifeguard" yaml:"clientID"`
		} `yaml:"kafka"`
	} `yaml:"activity"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
// A missing file is not an error: the environment and defaults are used.
func Load(configPath string) (*Config, error) {
	var cfg Config
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from env: %w", err)
		}

		return &cfg, nil
	}

	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
