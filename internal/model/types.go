// Package model defines shared data structures.
package model

// Config defines the resolved application settings.
type Config struct {
	Lang     string
	Mouse    bool
	LogLevel string
	LogFile  string
}
