package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Product is a catalog entry. The API never mutates it.
type Product struct {
	ID            int64    `json:"id" db:"id"`
	Name          string   `json:"name" db:"name"`
	Price         float64  `json:"price" db:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty" db:"original_price"`
	ImageURL      string   `json:"imageUrl" db:"image_url"`
	Category      string   `json:"category" db:"category"`
	Rating        float64  `json:"rating" db:"rating"`
	Reviews       int      `json:"reviews" db:"reviews"`
	Description   string   `json:"description" db:"description"`
	Features      Features `json:"features" db:"features"`
}

// Features is a product feature list stored as a JSON array in a text column.
type Features []string

// Value implements driver.Valuer.
func (f Features) Value() (driver.Value, error) {
	if f == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(f))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (f *Features) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*f = Features{}
		return nil
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("features: unsupported type %T", src)
	}

	if len(data) == 0 {
		*f = Features{}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("features: %w", err)
	}
	if list == nil {
		list = []string{}
	}
	*f = list
	return nil
}
