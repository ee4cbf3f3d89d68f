package entity

// DocumentType is a document template. Its fields are fixed at creation time.
type DocumentType struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"not null;uniqueIndex"`
	CreatedAt int64  `gorm:"not null;autoCreateTime:milli"`

	// Relations
	Fields []*DocumentField `gorm:"foreignKey:DocumentTypeID;references:ID;constraint:OnDelete:CASCADE;"`
}

type DocumentField struct {
	ID             int64  `gorm:"primaryKey"`
	DocumentTypeID int64  `gorm:"not null;uniqueIndex:idx_document_field_type_name"`
	Name           string `gorm:"not null;uniqueIndex:idx_document_field_type_name"`
	Required       bool   `gorm:"not null;default:false"`
}
