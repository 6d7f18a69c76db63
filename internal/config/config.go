package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	Gallery GalleryConfig `mapstructure:"gallery" validate:"required"`
	Auth    AuthConfig    `mapstructure:"auth"    validate:"required"`
	Catalog CatalogConfig `mapstructure:"catalog" validate:"required"`
}

// ServerConfig contains all HTTP server related settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// GalleryConfig contains settings for the shape gallery store.
type GalleryConfig struct {
	// Path is the filesystem location of the SQLite database file.
	Path string `mapstructure:"path" validate:"required"`
}

// AuthConfig contains the admin authentication settings.
// The playground has a single admin credential; destructive gallery
// endpoints require a token issued against it.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	AdminPasswordHash    string `mapstructure:"admin_password_hash"    validate:"required"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}

// CatalogConfig contains settings for the pattern document catalog.
type CatalogConfig struct {
	// Path is the location of the catalog YAML file describing the
	// pattern documents served by the API.
	Path string `mapstructure:"path" validate:"required"`
}
