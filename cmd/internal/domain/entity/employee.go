package entity

// Employee is a registered worker. Rows are soft-deleted through Deleted and never
// physically removed by the service.
type Employee struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	CPF       string `gorm:"column:cpf;not null;uniqueIndex"`
	HiredAt   int64  `gorm:"not null"`
	Deleted   bool   `gorm:"not null;default:false;index"`
	CreatedAt int64  `gorm:"not null;autoCreateTime:milli"`
	UpdatedAt int64  `gorm:"not null;autoUpdateTime:milli"`

	// Relations
	Documents []*EmployeeDocument `gorm:"foreignKey:EmployeeID;references:ID;constraint:OnDelete:CASCADE;"`
}

// HasPending reports whether at least one required document was not sent yet.
func (e *Employee) HasPending() bool {
	for _, doc := range e.Documents {
		if doc.Required && !doc.Sent {
			return true
		}
	}
	return false
}
