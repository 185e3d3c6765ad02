package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsUniqueViolation reports whether err is a unique-constraint failure.
// Covers lib/pq error objects and the "SQLSTATE 23505" text form pgx emits
// when wrapped by gorm.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(strings.ToLower(msg), "duplicate key")
}

// FromDBError maps a persistence error to the response envelope.
func FromDBError(c *fiber.Ctx, err error) error {
	switch {
	case IsNotFound(err):
		return Error(c, fiber.StatusNotFound, "Record not found")
	case IsUniqueViolation(err):
		return Error(c, fiber.StatusConflict, "Record already exists")
	default:
		return Error(c, fiber.StatusInternalServerError, err.Error())
	}
}
