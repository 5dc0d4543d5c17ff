// Package persistence implements the GORM-backed stores and the mapping
// between domain entities and storage rows.
package persistence

import "time"

// WineModel is the storage representation of a wine. Optional fields are
// pointers so unset values round-trip as SQL NULL.
type WineModel struct {
	ID            string    `gorm:"column:id;primaryKey"`
	UserID        string    `gorm:"column:user_id;index;not null"`
	Name          string    `gorm:"column:name;not null"`
	Year          int       `gorm:"column:year;not null"`
	Grapes        *string   `gorm:"column:grapes"`
	Quantity      int       `gorm:"column:quantity;not null"`
	Country       *string   `gorm:"column:country"`
	Region        *string   `gorm:"column:region"`
	Type          string    `gorm:"column:type;not null"`
	BestBefore    *string   `gorm:"column:best_before"`
	TasteProfile  *string   `gorm:"column:taste_profile"`
	PairingAdvice *string   `gorm:"column:pairing_advice"`
	Notes         *string   `gorm:"column:notes"`
	Rating        *int      `gorm:"column:rating"`
	CreatedAt     time.Time `gorm:"column:created_at;not null"`
}

// TableName returns the table name for wines.
func (WineModel) TableName() string { return "wines" }

// UserSettingModel stores per-owner settings, currently the AI API key.
type UserSettingModel struct {
	UserID       string    `gorm:"column:user_id;primaryKey"`
	OpenAIAPIKey string    `gorm:"column:openai_api_key;not null"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null"`
}

// TableName returns the table name for user settings.
func (UserSettingModel) TableName() string { return "user_settings" }
