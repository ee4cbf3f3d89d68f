package repository

import (
	"context"
	"employeedocs/cmd/internal/domain/entity"
	"employeedocs/cmd/internal/domain/pagination"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type DefaultDocumentTypeRepository struct {
	db *gorm.DB
}

func NewDocumentTypeRepository(db *gorm.DB) *DefaultDocumentTypeRepository {
	return &DefaultDocumentTypeRepository{db: db}
}

func (r *DefaultDocumentTypeRepository) FindByName(ctx context.Context, name string) (*entity.DocumentType, error) {
	var docType entity.DocumentType
	err := r.db.WithContext(ctx).
		Preload("Fields", orderByID).
		Where("name = ?", name).
		First(&docType).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &docType, nil
}

// FindAllInNames resolves every name in a single query. Unknown names are
// simply absent from the result.
func (r *DefaultDocumentTypeRepository) FindAllInNames(ctx context.Context, names []string) ([]*entity.DocumentType, error) {
	if len(names) == 0 {
		return []*entity.DocumentType{}, nil
	}

	var docTypes []*entity.DocumentType
	err := r.db.WithContext(ctx).Where("name IN ?", names).Find(&docTypes).Error
	if err != nil {
		return nil, err
	}
	return docTypes, nil
}

func (r *DefaultDocumentTypeRepository) FindPage(ctx context.Context, w pagination.Window) ([]*entity.DocumentType, error) {
	var docTypes []*entity.DocumentType
	err := r.db.WithContext(ctx).
		Model(&entity.DocumentType{}).
		Scopes(paginate(w, "document_types.id")).
		Preload("Fields", orderByID).
		Find(&docTypes).Error
	if err != nil {
		return nil, fmt.Errorf("find document types page: %w", err)
	}
	return docTypes, nil
}

// Create inserts the document type and its fields.
func (r *DefaultDocumentTypeRepository) Create(ctx context.Context, docType *entity.DocumentType) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(docType).Error
	})
	return translate(err)
}

// Delete removes the document type and everything referencing it: submitted
// values, employee links and field definitions. It reports false when no
// document type had the given id.
func (r *DefaultDocumentTypeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var docType entity.DocumentType
		err := tx.Select("id").First(&docType, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		links := tx.Model(&entity.EmployeeDocument{}).Select("id").Where("document_type_id = ?", id)
		if err = tx.Where("employee_document_id IN (?)", links).Delete(&entity.FieldValue{}).Error; err != nil {
			return err
		}
		if err = tx.Where("document_type_id = ?", id).Delete(&entity.EmployeeDocument{}).Error; err != nil {
			return err
		}
		if err = tx.Where("document_type_id = ?", id).Delete(&entity.DocumentField{}).Error; err != nil {
			return err
		}
		if err = tx.Delete(&entity.DocumentType{}, id).Error; err != nil {
			return err
		}

		deleted = true
		return nil
	})
	return deleted, err
}
