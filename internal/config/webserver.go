package config

// WebServer constants
const (
	WebServerApache = "apache"
	WebServerNginx  = "nginx"
	WebServerAll    = "all"
)

// ValidWebServers returns all valid web server values
func ValidWebServers() []string {
	return []string{WebServerApache, WebServerNginx, WebServerAll}
}

// IsValidWebServer checks if the given web server value is valid
func IsValidWebServer(s string) bool {
	for _, valid := range ValidWebServers() {
		if s == valid {
			return true
		}
	}
	return false
}

// WantsApache reports whether the package fronts Starman with Apache.
func (c *Config) WantsApache() bool {
	return c.WebServer == WebServerApache || c.WebServer == WebServerAll
}

// WantsNginx reports whether the package fronts Starman with nginx.
func (c *Config) WantsNginx() bool {
	return c.WebServer == WebServerNginx || c.WebServer == WebServerAll
}

// HasUID reports whether a fixed uid was configured.
// A configured uid of 0 is distinct from no uid at all.
func (c *Config) HasUID() bool {
	return c.UID != nil
}
