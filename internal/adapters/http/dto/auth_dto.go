// Package dto содержит объекты передачи данных HTTP API.
package dto

// RegisterRequest содержит данные для регистрации пользователя.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest содержит данные для входа пользователя.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse - ответ на регистрацию и вход.
type TokenResponse struct {
	Response string `json:"response"`
	Token    string `json:"token"`
}
