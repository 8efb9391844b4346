// Package config loads typed configuration structs from environment
// variables, with optional .env file support and per-type caching so a
// configuration is parsed at most once per process.
package config
