// Package apperr содержит типизированные ошибки доменных сервисов.
//
// Контракт сервисов: любая операция завершается либо успешным значением,
// либо одной из этих ошибок. Валидация и проверки ссылок выполняются до
// обращения к хранилищу; ошибки самого хранилища заворачиваются в
// StorageError.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound — запрошенная сущность не существует.
	ErrNotFound = errors.New("not found")
	// ErrConflict — нарушение уникальности (например, второй профиль
	// провайдера для того же пользователя).
	ErrConflict = errors.New("conflict")
)

// ValidationError — отсутствующее или некорректное обязательное поле.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

// Validation — шорткат для конструирования ValidationError.
func Validation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation сообщает, является ли err ошибкой валидации.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StorageError — инфраструктурный сбой хранилища; оборачивает исходную
// ошибку бэкенда без интерпретации.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Storage заворачивает ошибку бэкенда. Возвращает nil при err == nil.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
