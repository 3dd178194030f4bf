package configs

import "os"

// Env holds the environment-driven configuration consumed once at process
// start by the CLI layer.
type Env struct {
	User     string
	Password string
	Program  string
	APIKey   string
	Local    bool
}

// LoadEnv reads the WINTER_API_* environment variables.
func LoadEnv() Env {
	return Env{
		User:     os.Getenv("WINTER_API_USER"),
		Password: os.Getenv("WINTER_API_PASSWORD"),
		Program:  os.Getenv("WINTER_API_PROGRAM"),
		APIKey:   os.Getenv("WINTER_API_KEY"),
		Local:    envTrue(os.Getenv("WINTER_API_LOCAL")),
	}
}

func envTrue(v string) bool {
	switch v {
	case "1", "true", "True":
		return true
	}
	return false
}
