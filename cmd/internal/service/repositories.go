package service

import (
	"context"
	"employeedocs/cmd/internal/domain/entity"
	"employeedocs/cmd/internal/domain/filter"
	"employeedocs/cmd/internal/domain/pagination"
)

// Lookups return (nil, nil) when nothing matches.

type EmployeeRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Employee, error)
	FindByCPF(ctx context.Context, cpf string) (*entity.Employee, error)
	FindPage(ctx context.Context, pred filter.Predicate, w pagination.Window) ([]*entity.Employee, error)
	Create(ctx context.Context, employee *entity.Employee) error
	Update(ctx context.Context, id int64, fields map[string]any) (*entity.Employee, error)
}

type DocumentTypeRepository interface {
	FindByName(ctx context.Context, name string) (*entity.DocumentType, error)
	FindAllInNames(ctx context.Context, names []string) ([]*entity.DocumentType, error)
	FindPage(ctx context.Context, w pagination.Window) ([]*entity.DocumentType, error)
	Create(ctx context.Context, docType *entity.DocumentType) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type EmployeeDocumentRepository interface {
	FindByEmployeeAndType(ctx context.Context, employeeID int64, docType string) (*entity.EmployeeDocument, error)
	FindAllByEmployee(ctx context.Context, employeeID int64) ([]*entity.EmployeeDocument, error)
	AttachMany(ctx context.Context, links []*entity.EmployeeDocument) (int64, error)
	DetachByTypeNames(ctx context.Context, employeeID int64, names []string) (int64, error)
	SubmitValues(ctx context.Context, linkID int64, values []*entity.FieldValue) error
}
