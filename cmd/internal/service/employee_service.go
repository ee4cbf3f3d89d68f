package service

import (
	"context"
	"employeedocs/cmd/internal/contract"
	"employeedocs/cmd/internal/domain/database/repository"
	"employeedocs/cmd/internal/domain/entity"
	"employeedocs/cmd/internal/domain/filter"
	"employeedocs/cmd/internal/domain/pagination"
	"employeedocs/cmd/internal/utils"
	"employeedocs/cmd/internal/utils/apierror"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type DefaultEmployeeService struct {
	EmployeeRepo EmployeeRepository
	Guard        *Guard
	Validate     *validator.Validate
}

func NewEmployeeService(employeeRepo EmployeeRepository, guard *Guard, validate *validator.Validate) *DefaultEmployeeService {
	return &DefaultEmployeeService{
		EmployeeRepo: employeeRepo,
		Guard:        guard,
		Validate:     validate,
	}
}

func (e *DefaultEmployeeService) CreateEmployee(ctx context.Context, req *contract.CreateEmployeeRequest) (*contract.CreatedResponse, apierror.ErrorResponse) {
	if apierr := validateRequest(e.Validate, req); apierr != nil {
		return nil, apierr
	}

	cpf := utils.NormalizeCPF(req.CPF)
	existing, err := e.EmployeeRepo.FindByCPF(ctx, cpf)
	if err != nil {
		log.Errorf("failed to fetch employee by cpf: %v", err)
		return nil, apierror.InternalServerError
	}

	if existing != nil {
		return nil, apierror.EmployeeCPFTakenError
	}

	hiredAt := utils.NowUTC()
	if req.HiredAt != nil {
		// Already checked by the datebr validation.
		hiredAt, _ = utils.ParseDateBR(*req.HiredAt)
	}

	employee := &entity.Employee{
		Name:    req.Name,
		CPF:     cpf,
		HiredAt: hiredAt,
	}

	if len(req.DocsType) > 0 {
		names := make([]string, len(req.DocsType))
		for i, doc := range req.DocsType {
			names[i] = doc.Name
		}

		docTypes, apierr := e.Guard.ResolveDocumentTypes(ctx, names)
		if apierr != nil {
			return nil, apierr
		}

		for _, doc := range req.DocsType {
			employee.Documents = append(employee.Documents, &entity.EmployeeDocument{
				DocumentTypeID: docTypes[doc.Name].ID,
				Required:       doc.Required,
				Desc:           doc.Desc,
			})
		}
	}

	if err = e.EmployeeRepo.Create(ctx, employee); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, apierror.EmployeeCPFTakenError
		}

		log.Errorf("failed to create employee: %v", err)
		return nil, apierror.NewPersistence("Error, Unable to register employee")
	}
	return &contract.CreatedResponse{ID: employee.ID}, nil
}

func (e *DefaultEmployeeService) UpdateEmployee(ctx context.Context, req *contract.UpdateEmployeeRequest) (*contract.UpdateEmployeeResponse, apierror.ErrorResponse) {
	if apierr := validateRequest(e.Validate, req); apierr != nil {
		return nil, apierr
	}

	employee, err := e.EmployeeRepo.FindByID(ctx, req.ID)
	if err != nil {
		log.Errorf("failed to fetch employee: %v", err)
		return nil, apierror.InternalServerError
	}

	if employee == nil {
		return nil, apierror.NewNotFound("Employee with ID '%d' was not found", req.ID)
	}

	fields := map[string]any{"updated_at": utils.NowUTC()}
	if req.Name != nil {
		fields["name"] = *req.Name
	}

	if req.CPF != nil {
		cpf := utils.NormalizeCPF(*req.CPF)
		if cpf != employee.CPF {
			owner, err := e.EmployeeRepo.FindByCPF(ctx, cpf)
			if err != nil {
				log.Errorf("failed to fetch employee by cpf: %v", err)
				return nil, apierror.InternalServerError
			}

			if owner != nil {
				return nil, apierror.EmployeeCPFTakenError
			}
		}
		fields["cpf"] = cpf
	}

	if req.HiredAt != nil {
		hiredAt, _ := utils.ParseDateBR(*req.HiredAt)
		fields["hired_at"] = hiredAt
	}

	if req.Deleted != nil {
		fields["deleted"] = *req.Deleted
	}

	updated, err := e.EmployeeRepo.Update(ctx, req.ID, fields)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, apierror.EmployeeCPFTakenError
		}

		log.Errorf("failed to update employee %d: %v", req.ID, err)
		return nil, apierror.NewPersistence("Error, Unable to update employee")
	}

	if updated == nil {
		return nil, apierror.NewNotFound("Employee with ID '%d' was not found", req.ID)
	}
	return &contract.UpdateEmployeeResponse{ID: updated.ID, UpdatedAt: utils.FormatEpoch(updated.UpdatedAt)}, nil
}

func (e *DefaultEmployeeService) ListEmployees(ctx context.Context, req *contract.ListEmployeesRequest) (*contract.PageResponse[*contract.EmployeeListItem], apierror.ErrorResponse) {
	if apierr := validateRequest(e.Validate, req); apierr != nil {
		return nil, apierr
	}

	pred := filter.Employees(filter.EmployeeQuery{
		Name:    req.Name,
		DocType: req.DocType,
		Deleted: req.Deleted,
		Pending: req.Pending,
	})
	window := pagination.Plan(req.Params())

	rows, err := e.EmployeeRepo.FindPage(ctx, pred, window)
	if err != nil {
		log.Errorf("failed to list employees: %v", err)
		return nil, apierror.InternalServerError
	}

	page := pagination.Build(window, rows, func(emp *entity.Employee) int64 { return emp.ID })
	return contract.NewPageResponse(pagination.Map(page, toEmployeeListItem)), nil
}

func toEmployeeListItem(emp *entity.Employee) *contract.EmployeeListItem {
	return &contract.EmployeeListItem{
		ID:        emp.ID,
		CPF:       emp.CPF,
		Name:      emp.Name,
		HiredAt:   utils.FormatEpoch(emp.HiredAt),
		CreatedAt: utils.FormatEpoch(emp.CreatedAt),
		Deleted:   emp.Deleted,
		Pending:   emp.HasPending(),
	}
}
