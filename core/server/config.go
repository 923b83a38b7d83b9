package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// JWTSecret is the HS256 key used to validate bearer tokens.
	JWTSecret string `mapstructure:"jwt_secret" default:""`
}

// HasAuth reports whether bearer token validation is configured.
// Without a secret the API refuses all authenticated routes.
func (c Config) HasAuth() bool {
	return c.JWTSecret != ""
}
