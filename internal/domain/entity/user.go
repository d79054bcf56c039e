package entity

import "time"

// User es una cuenta del emisor local de tokens. Las tiendas solo guardan su ID.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
