package environment

import (
	"os"
)

type Environment string

const (
	Local      Environment = "local"
	Production Environment = "production"
)

func IsLocal() bool {
	return GetEnvironment() == Local
}

// GetEnvironment returns ENVIRONMENT, treating an unset value as production.
func GetEnvironment() Environment {
	if env := os.Getenv("ENVIRONMENT"); env != "" {
		return Environment(env)
	}
	return Production
}
