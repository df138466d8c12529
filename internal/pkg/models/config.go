package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	Mail     MailConfig
	Donation DonationConfig
	Upload   UploadConfig
	Logger   LoggerConfig
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

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	NSQDAddress    string
	LookupdAddress string
	MailerChannel  string
	EventTopic     string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// MailConfig contains SMTP delivery configuration
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// DonationConfig contains donation workflow configuration
type DonationConfig struct {
	Currency           string
	CallbackURL        string  // where the gateway stub delivers webhook callbacks
	GatewayDelayMs     int     // settlement delay before the stub resolves
	GatewaySuccessRate float64 // synthetic success probability, 0..1
	PendingExpiryMin   int     // pending records older than this are swept to failed
	SweepIntervalMin   int
}

// UploadConfig contains media upload configuration
type UploadConfig struct {
	Dir        string
	PublicPath string
	MaxSizeMB  int64
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
