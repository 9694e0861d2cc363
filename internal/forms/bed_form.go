package forms

import "homefit/internal/models"

// BedForm is the create/edit form for beds.
type BedForm struct {
	BedLength   string `form:"BedLength" validate:"required,notblank"`
	BedWidth    string `form:"BedWidth" validate:"required,notblank"`
	MatressType string `form:"MatressType" validate:"required,notblank"`
	BedSize     string `form:"BedSize" validate:"required,notblank"`
}

// BedFormFrom pre-populates the form with the stored values of b.
func BedFormFrom(b *models.Bed) BedForm {
	return BedForm{
		BedLength:   b.BedLength,
		BedWidth:    b.BedWidth,
		MatressType: b.MatressType,
		BedSize:     b.BedSize,
	}
}

func (f BedForm) Fields() models.BedFields {
	return models.BedFields{
		BedLength:   f.BedLength,
		BedWidth:    f.BedWidth,
		MatressType: f.MatressType,
		BedSize:     f.BedSize,
	}
}
