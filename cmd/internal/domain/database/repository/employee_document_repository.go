package repository

import (
	"context"
	"employeedocs/cmd/internal/domain/entity"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultEmployeeDocumentRepository struct {
	db *gorm.DB
}

func NewEmployeeDocumentRepository(db *gorm.DB) *DefaultEmployeeDocumentRepository {
	return &DefaultEmployeeDocumentRepository{db: db}
}

// FindByEmployeeAndType returns the employee link for the named document type,
// with the document type fields loaded.
func (r *DefaultEmployeeDocumentRepository) FindByEmployeeAndType(ctx context.Context, employeeID int64, docType string) (*entity.EmployeeDocument, error) {
	db := r.db.WithContext(ctx)
	typeIDs := db.Model(&entity.DocumentType{}).Select("id").Where("name = ?", docType)

	var link entity.EmployeeDocument
	err := db.
		Preload("DocumentType").
		Preload("DocumentType.Fields", orderByID).
		Where("employee_id = ? AND document_type_id IN (?)", employeeID, typeIDs).
		First(&link).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &link, nil
}

// FindAllByEmployee lists the employee links joined with their document type
// and submitted values.
func (r *DefaultEmployeeDocumentRepository) FindAllByEmployee(ctx context.Context, employeeID int64) ([]*entity.EmployeeDocument, error) {
	var links []*entity.EmployeeDocument
	err := r.db.WithContext(ctx).
		Preload("DocumentType").
		Preload("FieldValues", orderByID).
		Preload("FieldValues.DocumentField").
		Where("employee_id = ?", employeeID).
		Scopes(orderByID).
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

// AttachMany creates the links that do not exist yet, all or nothing. Links
// already present for the same (employee, document type) pair are left as is,
// including the ones inserted concurrently by another request.
func (r *DefaultEmployeeDocumentRepository) AttachMany(ctx context.Context, links []*entity.EmployeeDocument) (int64, error) {
	var created int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, link := range links {
			res := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "employee_id"}, {Name: "document_type_id"}},
				DoNothing: true,
			}).Create(link)
			if res.Error != nil {
				return res.Error
			}
			created += res.RowsAffected
		}
		return nil
	})
	if err != nil {
		return 0, translate(err)
	}
	return created, nil
}

// DetachByTypeNames removes the employee links (and their values) whose
// document type name is listed. Names matching nothing are ignored.
func (r *DefaultEmployeeDocumentRepository) DetachByTypeNames(ctx context.Context, employeeID int64, names []string) (int64, error) {
	if len(names) == 0 {
		return 0, nil
	}

	var removed int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		typeIDs := tx.Model(&entity.DocumentType{}).Select("id").Where("name IN ?", names)
		links := tx.Model(&entity.EmployeeDocument{}).
			Select("id").
			Where("employee_id = ? AND document_type_id IN (?)", employeeID, typeIDs)

		if err := tx.Where("employee_document_id IN (?)", links).Delete(&entity.FieldValue{}).Error; err != nil {
			return err
		}

		res := tx.Where("employee_id = ? AND document_type_id IN (?)", employeeID, typeIDs).Delete(&entity.EmployeeDocument{})
		if res.Error != nil {
			return res.Error
		}
		removed = res.RowsAffected
		return nil
	})
	return removed, err
}

// SubmitValues upserts one value per (link, field) pair and marks the link as
// sent, in a single transaction.
func (r *DefaultEmployeeDocumentRepository) SubmitValues(ctx context.Context, linkID int64, values []*entity.FieldValue) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, value := range values {
			value.EmployeeDocumentID = linkID
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "employee_document_id"}, {Name: "document_field_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(value).Error
			if err != nil {
				return err
			}
		}

		return tx.Model(&entity.EmployeeDocument{}).
			Where("id = ?", linkID).
			Update("sent", true).Error
	})
}
