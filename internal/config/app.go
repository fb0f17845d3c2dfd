package config

import (
	"os"
	"strings"
)

// Development switches logging to colored text at debug level.
func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

type Server struct {
	Addr           string
	AllowedOrigins []string
}

func NewServer() *Server {
	s := &Server{Addr: ":8080"}

	if port, ok := os.LookupEnv("APP_PORT"); ok {
		if !strings.Contains(port, ":") {
			port = ":" + port
		}
		s.Addr = port
	}

	if origins, ok := os.LookupEnv("APP_ALLOWED_ORIGINS"); ok {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				s.AllowedOrigins = append(s.AllowedOrigins, o)
			}
		}
	}

	return s
}

// AllowOrigin reports whether a browser origin may open a game. An empty
// allow list accepts every origin.
func (s Server) AllowOrigin(origin string) bool {
	if len(s.AllowedOrigins) == 0 {
		return true
	}
	for _, o := range s.AllowedOrigins {
		if o == "*" || strings.EqualFold(o, origin) {
			return true
		}
	}
	return false
}
