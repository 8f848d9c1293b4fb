package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// User represents a user account row
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	PasswordSet  bool      `json:"password_set" db:"password_set"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// StylePreferences represents a user's stored style preferences.
// List columns are JSONB, size and body fields are plain text.
type StylePreferences struct {
	UserID     uuid.UUID   `json:"user_id"`
	Colors     StringArray `json:"colors"`
	Styles     StringArray `json:"styles"`
	Fabrics    StringArray `json:"fabrics"`
	Occasions  StringArray `json:"occasions"`
	BodyType   string      `json:"body_type,omitempty"`
	TopSize    string      `json:"top_size,omitempty"`
	BottomSize string      `json:"bottom_size,omitempty"`
	ShoeSize   string      `json:"shoe_size,omitempty"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// ClosetItem represents a single garment in a user's closet
type ClosetItem struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory,omitempty"`
	Brand       string    `json:"brand,omitempty"`
	Color       string    `json:"color,omitempty"`
	Size        string    `json:"size,omitempty"`
	IsFavorite  bool      `json:"is_favorite"`
	AddedAt     time.Time `json:"added_at"`
}

// StringArray handles JSONB string arrays
type StringArray []string

// Scan implements the Scanner interface for StringArray
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = []string{}
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, a)
}

// Value implements the Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}
