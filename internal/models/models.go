package models

import "github.com/google/uuid"

// ParseID разбирает строковый идентификатор сущности.
func ParseID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}
