package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Error - ошибка, возвращённая сервером API
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("ошибка API (%d): %s", e.StatusCode, e.Message)
}

// decodeError разбирает тело ответа с ошибкой ({"error": ...} или {"message": ...})
func decodeError(resp *http.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode, Message: resp.Status}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			apiErr.Message = payload.Error
		} else if payload.Message != "" {
			apiErr.Message = payload.Message
		}
	}

	return apiErr
}

func statusIs(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

func IsUnauthorized(err error) bool {
	return statusIs(err, http.StatusUnauthorized)
}

func IsForbidden(err error) bool {
	return statusIs(err, http.StatusForbidden)
}

func IsNotFound(err error) bool {
	return statusIs(err, http.StatusNotFound)
}

// IsRemote сообщает, дошёл ли запрос до сервера (любой HTTP-статус с ошибкой)
func IsRemote(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr)
}
