package models

import "time"

// Row is one persisted reservation range, exclusive interest in
// [RangeStart, RangeStart+Length).
type Row struct {
	ID              int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID          int64     `gorm:"column:user_id" json:"user_id"`
	ReservationType int32     `gorm:"column:reservation_type" json:"reservation_type"`
	RangeStart      int32     `gorm:"column:range_start" json:"range_start"`
	Length          int32     `gorm:"column:length" json:"length"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Row) TableName() string {
	return "reservations"
}

// End returns the exclusive upper bound of the row's range.
func (r Row) End() int32 {
	return r.RangeStart + r.Length
}

// Label is a free-text annotation on a single reserved ID. It cascades
// with the covering reservation in application code, not via a foreign
// key.
type Label struct {
	UserID          int64  `gorm:"column:user_id;primaryKey" json:"user_id"`
	ReservationType int32  `gorm:"column:reservation_type;primaryKey" json:"reservation_type"`
	ContentID       int32  `gorm:"column:content_id;primaryKey" json:"content_id"`
	Label           string `gorm:"column:label" json:"label"`
}

func (Label) TableName() string {
	return "reservation_labels"
}
