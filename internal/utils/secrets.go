package utils

import (
	"fmt"
	"os"
	"strings"
)

// ReadSecret читает секрет из файла в стандартном пути Docker Secrets.
// Если файла нет, пробует переменную окружения envFallback (для локальной
// разработки через .env).
func ReadSecret(secretName, envFallback string) (string, error) {
	filePath := fmt.Sprintf("/run/secrets/%s", secretName)
	secretBytes, err := os.ReadFile(filePath)
	if err == nil {
		secret := strings.TrimSpace(string(secretBytes))
		if secret == "" {
			return "", fmt.Errorf("secret file %s is empty", filePath)
		}
		return secret, nil
	}

	if envFallback != "" {
		if value := strings.TrimSpace(os.Getenv(envFallback)); value != "" {
			return value, nil
		}
	}

	return "", fmt.Errorf("secret %s not found (file %s or env %s)", secretName, filePath, envFallback)
}
