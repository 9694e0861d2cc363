package models

import "time"

// Bed is a user's bed record.
type Bed struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	BedLength   string    `json:"bed_length"`
	BedWidth    string    `json:"bed_width"`
	MatressType string    `json:"matress_type"`
	BedSize     string    `json:"bed_size"`
	Author      string    `json:"author" gorm:"index;type:varchar(36)"` // ID of the creating user
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BedFields is the user-editable subset of a Bed.
type BedFields struct {
	BedLength   string
	BedWidth    string
	MatressType string
	BedSize     string
}

// Fields returns the editable values currently stored on the bed.
func (b *Bed) Fields() BedFields {
	return BedFields{
		BedLength:   b.BedLength,
		BedWidth:    b.BedWidth,
		MatressType: b.MatressType,
		BedSize:     b.BedSize,
	}
}

// Apply overwrites the editable values. Author and timestamps are left alone.
func (b *Bed) Apply(f BedFields) {
	b.BedLength = f.BedLength
	b.BedWidth = f.BedWidth
	b.MatressType = f.MatressType
	b.BedSize = f.BedSize
}
