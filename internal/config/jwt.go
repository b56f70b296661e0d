package config

import "time"

// DefaultTokenTTL - время жизни токена по умолчанию.
const DefaultTokenTTL = time.Hour

// JWTConfig содержит настройки выпуска токенов и хэширования паролей.
// Секрет не имеет значения по умолчанию и обязан приходить из окружения.
type JWTConfig struct {
	SecretKey  string `yaml:"secret_key" env:"QUIRKNOTES_JWT_SECRET_KEY" env-required:"true"`
	TokenTTL   string `yaml:"token_ttl" env:"QUIRKNOTES_JWT_TOKEN_TTL" env-default:"1h"`
	BCryptCost int    `yaml:"bcrypt_cost" env:"QUIRKNOTES_BCRYPT_COST" env-default:"10"`
}

// GetTokenTTL возвращает время жизни токена, при ошибке разбора - DefaultTokenTTL.
func (c *JWTConfig) GetTokenTTL() time.Duration {
	duration, err := time.ParseDuration(c.TokenTTL)
	if err != nil || duration <= 0 {
		return DefaultTokenTTL
	}
	return duration
}
