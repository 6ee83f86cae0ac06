package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

var placeholders = map[string]bool{
	"":         true,
	"HOST":     true,
	"USERNAME": true,
	"PASSWORD": true,
	"DBNAME":   true,
	"PORT":     true,
}

func isPlaceholder(s string) bool {
	return placeholders[strings.ToUpper(s)]
}

// DatabaseParts are the discrete DB_* settings.
type DatabaseParts struct {
	Scheme   string
	User     string
	Password string
	Host     string
	Port     string
	Name     string
}

// BuildDatabaseURL assembles a connection URL from parts. Every part except
// the scheme is required and must not be a template placeholder.
func BuildDatabaseURL(p DatabaseParts) (string, error) {
	parts := []struct {
		key   string
		value *string
	}{
		{"DB_USER", &p.User},
		{"DB_PASSWORD", &p.Password},
		{"DB_HOST", &p.Host},
		{"DB_PORT", &p.Port},
		{"DB_NAME", &p.Name},
	}
	var missing []string
	for _, part := range parts {
		*part.value = clean(*part.value)
		if isPlaceholder(*part.value) {
			missing = append(missing, part.key)
		}
	}
	if len(missing) > 0 {
		return "", fmt.Errorf("config: database settings missing/placeholder: %s", strings.Join(missing, ", "))
	}

	host, err := encodeHost(p.Host)
	if err != nil {
		return "", err
	}

	u := url.URL{
		Scheme: driverScheme(p.Scheme),
		User:   url.UserPassword(p.User, p.Password),
		Host:   net.JoinHostPort(host, p.Port),
		Path:   "/" + p.Name,
	}
	return u.String(), nil
}

// NormalizeDatabaseURL re-encodes user, password, host and database name of
// raw so the result is ASCII-only.
func NormalizeDatabaseURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return "", fmt.Errorf("config: DATABASE_URL is malformed (missing scheme)")
	}

	if isPlaceholder(u.Hostname()) {
		return "", fmt.Errorf("config: DATABASE_URL host is not set correctly (placeholder value detected)")
	}
	host, err := encodeHost(u.Hostname())
	if err != nil {
		return "", err
	}
	if port := u.Port(); port != "" {
		host = net.JoinHostPort(host, port)
	}

	out := url.URL{
		Scheme:   driverScheme(u.Scheme),
		Host:     host,
		Path:     u.Path,
		RawQuery: u.RawQuery,
	}
	if u.User != nil {
		pass, _ := u.User.Password()
		out.User = url.UserPassword(u.User.Username(), pass)
	}
	return out.String(), nil
}

// driverScheme drops a "+driver" suffix such as "postgresql+psycopg2".
func driverScheme(s string) string {
	s = clean(s)
	if i := strings.IndexByte(s, '+'); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return "postgresql"
	}
	return s
}

func encodeHost(host string) (string, error) {
	ascii, err := idna.ToASCII(host)
	if err != nil {
		return "", fmt.Errorf("config: DB_HOST contains invalid characters; use ASCII/Punycode host names: %w", err)
	}
	return ascii, nil
}
