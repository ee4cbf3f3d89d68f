package repository

import (
	"context"
	"employeedocs/cmd/internal/domain/entity"
	"employeedocs/cmd/internal/domain/filter"
	"employeedocs/cmd/internal/domain/pagination"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type DefaultEmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *DefaultEmployeeRepository {
	return &DefaultEmployeeRepository{db: db}
}

func (r *DefaultEmployeeRepository) FindByID(ctx context.Context, id int64) (*entity.Employee, error) {
	var employee entity.Employee
	err := r.db.WithContext(ctx).First(&employee, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *DefaultEmployeeRepository) FindByCPF(ctx context.Context, cpf string) (*entity.Employee, error) {
	var employee entity.Employee
	err := r.db.WithContext(ctx).Where("cpf = ?", cpf).First(&employee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// FindPage returns the raw batch for the window, in scan order, with the
// required/sent flags of each employee's documents loaded.
func (r *DefaultEmployeeRepository) FindPage(ctx context.Context, pred filter.Predicate, w pagination.Window) ([]*entity.Employee, error) {
	var employees []*entity.Employee
	err := r.db.WithContext(ctx).
		Model(&entity.Employee{}).
		Scopes(matching(pred), paginate(w, "employees.id")).
		Preload("Documents", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "employee_id", "required", "sent")
		}).
		Find(&employees).Error
	if err != nil {
		return nil, fmt.Errorf("find employees page: %w", err)
	}
	return employees, nil
}

// Create inserts the employee together with its document links.
func (r *DefaultEmployeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(employee).Error
	})
	return translate(err)
}

// Update applies the given columns and returns the refreshed row.
func (r *DefaultEmployeeRepository) Update(ctx context.Context, id int64, fields map[string]any) (*entity.Employee, error) {
	db := r.db.WithContext(ctx)
	err := db.Model(&entity.Employee{ID: id}).Updates(fields).Error
	if err != nil {
		return nil, translate(err)
	}
	return r.FindByID(ctx, id)
}
