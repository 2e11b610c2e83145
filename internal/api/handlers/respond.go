// Package handlers общие помощники HTTP слоя: разбор запросов, ответы, маппинг ошибок.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

const msgInternalError = "внутренняя ошибка сервера"

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// DecodeJSON разбирает тело запроса
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty body")
	}
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

// RespondJSON пишет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// RespondError пишет ошибку с сообщением
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message, Kind: kindForStatus(status)})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// StatusFor HTTP статус для класса ошибки
func StatusFor(err error) int {
	switch domain.Kind(err) {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// RespondDomainError отвечает статусом по классу ошибки.
// Для внутренних ошибок сообщение не раскрывается.
func RespondDomainError(w http.ResponseWriter, err error, message string) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		RespondInternalError(w)
		return
	}
	RespondError(w, status, message)
}

func kindForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return string(domain.KindValidation)
	case http.StatusNotFound:
		return string(domain.KindNotFound)
	case http.StatusConflict:
		return string(domain.KindConflict)
	case http.StatusForbidden:
		return string(domain.KindForbidden)
	case http.StatusInternalServerError:
		return string(domain.KindInternal)
	default:
		return ""
	}
}

// ParseDate разбирает YYYY-MM-DD как календарный день в часовом поясе студии
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(domain.DateFormat, strings.TrimSpace(s), loc)
}

// FormatTime время в ответах API
func FormatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}
