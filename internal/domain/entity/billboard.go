package entity

import "time"

// Billboard es un banner con imagen; las categorías lo referencian.
type Billboard struct {
	ID        string
	StoreID   string
	Label     string
	ImageURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
