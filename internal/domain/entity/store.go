package entity

import "time"

// Store representa una tienda (tenant). Es la raíz de propiedad de todas las demás entidades.
type Store struct {
	ID        string
	Name      string
	UserID    string // identidad opaca del dueño
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnedBy informa si la tienda pertenece a la identidad indicada.
func (s *Store) OwnedBy(userID string) bool {
	return s != nil && userID != "" && s.UserID == userID
}
