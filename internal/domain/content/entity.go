package content

import "time"

// FieldOverride is one stored replacement for a pricing section field.
// (section, field) is unique.
type FieldOverride struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Section   string    `gorm:"column:section;size:64;not null;uniqueIndex:idx_section_field" json:"section"`
	Field     string    `gorm:"column:field;size:64;not null;uniqueIndex:idx_section_field" json:"field"`
	Value     string    `gorm:"column:value;size:2000;not null" json:"value"`
	UpdatedBy string    `gorm:"column:updated_by;size:128" json:"updated_by"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (FieldOverride) TableName() string { return "pricing_field_overrides" }

// MaxValueLength bounds a stored field value, in bytes
const MaxValueLength = 2000
