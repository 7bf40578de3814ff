// Package config loads service configuration from environment variables.
//
// Supports an optional .env file via godotenv. All options have defaults
// except MONGO_URL. The permitted environment list and file paths are fixed
// for the process lifetime once loaded.
package config
