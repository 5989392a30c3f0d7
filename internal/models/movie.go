package models

import "gorm.io/gorm"

// Movie is a single catalog entry in one user's collection.
//
// Title carries a global unique index: the same title cannot be imported
// twice, even by different users. Ranking is recomputed and persisted on
// every listing of the owner's collection, so its stored value only reflects
// the most recent listing.
type Movie struct {
	ID          string   `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title       string   `json:"title" gorm:"uniqueIndex;type:varchar(100)" validate:"required,max=100"`
	Year        int      `json:"year" validate:"required"`
	Description string   `json:"description" gorm:"type:varchar(500)"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=0,lte=10"`
	Ranking     *int     `json:"ranking"`
	Review      *string  `json:"review" validate:"omitempty,max=500"`
	ImageURL    string   `json:"image_url" gorm:"type:varchar(200)"`
	UserID      string   `json:"user_id" gorm:"index;type:varchar(36)"`
	gorm.Model           // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
