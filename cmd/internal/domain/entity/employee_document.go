package entity

// EmployeeDocument links an employee to a document type it must (or may) hand in.
// At most one link exists per (employee, document type) pair.
type EmployeeDocument struct {
	ID             int64   `gorm:"primaryKey"`
	EmployeeID     int64   `gorm:"not null;uniqueIndex:idx_employee_document_pair"`
	DocumentTypeID int64   `gorm:"not null;uniqueIndex:idx_employee_document_pair;index"`
	Required       bool    `gorm:"not null;default:false"`
	Sent           bool    `gorm:"not null;default:false"`
	Desc           *string `gorm:"column:description"`

	// Relations
	DocumentType *DocumentType `gorm:"foreignKey:DocumentTypeID;references:ID;constraint:OnDelete:CASCADE;"`
	FieldValues  []*FieldValue `gorm:"foreignKey:EmployeeDocumentID;references:ID;constraint:OnDelete:CASCADE;"`
}

// FieldValue is the submitted value of one DocumentField inside one EmployeeDocument.
type FieldValue struct {
	ID                 int64  `gorm:"primaryKey"`
	EmployeeDocumentID int64  `gorm:"not null;uniqueIndex:idx_field_value_pair"`
	DocumentFieldID    int64  `gorm:"not null;uniqueIndex:idx_field_value_pair;index"`
	Value              string `gorm:"not null"`
	CreatedAt          int64  `gorm:"not null;autoCreateTime:milli"`
	UpdatedAt          int64  `gorm:"not null;autoUpdateTime:milli"`

	// Relations
	DocumentField *DocumentField `gorm:"foreignKey:DocumentFieldID;references:ID;constraint:OnDelete:CASCADE;"`
}
