// internal/config/database.go
package config

// UseDatabase reports whether a connection string is configured. The
// storage backend is chosen from this exactly once, at startup.
func (d *DatabaseConfig) UseDatabase() bool {
	return d.URL != ""
}
