// Package config loads typed configuration from environment variables.
//
// Struct fields are bound with caarlos0/env tags. A .env file in the working
// directory is loaded through joho/godotenv on first use, and LoadEnv loads
// additional files explicitly. Parsed configs are cached per type, so packages
// can call Load for the same struct without parsing twice.
package config
