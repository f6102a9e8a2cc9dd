package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Record is the persisted audit row for one generated invoice.
type Record struct {
	ID             snowflake.ID      `gorm:"primaryKey"`
	CustomerLabel  string            `gorm:"column:customer_label;not null;index"`
	TotalAmount    string            `gorm:"column:total_amount;not null"`
	FrequentPoints int               `gorm:"column:frequent_points;not null"`
	InvoiceText    string            `gorm:"column:invoice_text;not null"`
	Metadata       datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt      time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Record) TableName() string { return "invoice_records" }
