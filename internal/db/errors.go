package db

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// Таксономия ошибок хранилища. На границе тулзы превращаются в короткий текст.
var (
	ErrNotFound    = errors.New("not found")
	ErrInvalidID   = errors.New("invalid id format")
	ErrDuplicate   = errors.New("duplicate key")
	ErrEmptyResult = errors.New("empty result")
)

// wrapInsertErr нормализует ошибку вставки: нарушение уникального индекса
// становится ErrDuplicate, остальное уходит как есть.
func wrapInsertErr(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}
