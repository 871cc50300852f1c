package server

import "facet-reconciler/core/args"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// DefaultPlatform is used when a request does not name a platform.
	DefaultPlatform string `mapstructure:"default_platform" default:"jvm"`
}

// IsValidPlatform checks if the configured default platform is known.
func (c Config) IsValidPlatform() bool {
	_, err := args.ParsePlatform(c.DefaultPlatform)
	return err == nil
}

// Platform returns the configured default platform, falling back to JVM.
func (c Config) Platform() args.Platform {
	p, err := args.ParsePlatform(c.DefaultPlatform)
	if err != nil {
		return args.PlatformJVM
	}
	return p
}
