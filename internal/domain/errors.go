package domain

import "errors"

// Классы ошибок движка. Ошибки сервисов оборачивают ровно один из них,
// поэтому API-слой может различать их через errors.Is.
var (
	// ErrValidation некорректные или отсутствующие входные данные
	ErrValidation = errors.New("validation error")

	// ErrConflict слот занят или перенос пересекается с другой записью
	ErrConflict = errors.New("conflict")

	// ErrNotFound неизвестный мастер, услуга, клиент или запись
	ErrNotFound = errors.New("not found")

	// ErrForbidden у роли нет прав на операцию
	ErrForbidden = errors.New("forbidden")
)

// ErrorKind класс ошибки
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindConflict   ErrorKind = "conflict"
	KindNotFound   ErrorKind = "not_found"
	KindForbidden  ErrorKind = "forbidden"
	KindInternal   ErrorKind = "internal"
)

// Kind определяет класс ошибки
func Kind(err error) ErrorKind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	default:
		return KindInternal
	}
}
