package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpired проверяет claim exp без валидации подписи: секрет знает только
// сервер. Непрозрачные (не-JWT) токены пропускаются без локальной проверки.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return exp.Before(now)
}
