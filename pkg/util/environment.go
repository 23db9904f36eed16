package util

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const dotEnvFile = ".env"

// GetEnvironmentVariables returns the process environment layered over any
// values found in a .env file in the working directory.
func GetEnvironmentVariables() map[string]string {
	environmentVariables := map[string]string{}

	if dotEnv, err := godotenv.Read(dotEnvFile); err == nil {
		for key, value := range dotEnv {
			environmentVariables[key] = value
		}
	}

	for _, variable := range os.Environ() {
		pair := strings.SplitN(variable, "=", 2)
		if len(pair) != 2 {
			continue
		}

		environmentVariables[pair[0]] = pair[1]
	}

	return environmentVariables
}
