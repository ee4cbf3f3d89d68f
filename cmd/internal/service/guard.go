package service

import (
	"context"
	"employeedocs/cmd/internal/contract"
	"employeedocs/cmd/internal/domain/entity"
	"employeedocs/cmd/internal/utils"
	"employeedocs/cmd/internal/utils/apierror"
	"slices"
	"strconv"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/labstack/gommon/log"
)

// Guard checks that the employees, document types and links referenced by a
// request exist before anything is written.
type Guard struct {
	EmployeeRepo     EmployeeRepository
	DocumentTypeRepo DocumentTypeRepository
	LinkRepo         EmployeeDocumentRepository
}

func NewGuard(
	employeeRepo EmployeeRepository,
	docTypeRepo DocumentTypeRepository,
	linkRepo EmployeeDocumentRepository,
) *Guard {
	return &Guard{
		EmployeeRepo:     employeeRepo,
		DocumentTypeRepo: docTypeRepo,
		LinkRepo:         linkRepo,
	}
}

// ResolveEmployee finds the employee by id or CPF, soft-deleted ones included.
// The request validation guarantees exactly one of them is set.
func (g *Guard) ResolveEmployee(ctx context.Context, ref contract.EmployeeRef) (*entity.Employee, apierror.ErrorResponse) {
	employee, err := g.findEmployee(ctx, ref)
	if err != nil {
		log.Errorf("failed to fetch employee: %v", err)
		return nil, apierror.InternalServerError
	}

	if employee == nil {
		return nil, apierror.NewEmployeeNotFoundError(describeRef(ref))
	}
	return employee, nil
}

func (g *Guard) findEmployee(ctx context.Context, ref contract.EmployeeRef) (*entity.Employee, error) {
	if ref.EmployeeID != nil {
		return g.EmployeeRepo.FindByID(ctx, *ref.EmployeeID)
	}
	if ref.EmployeeCPF != nil {
		return g.EmployeeRepo.FindByCPF(ctx, utils.NormalizeCPF(*ref.EmployeeCPF))
	}
	return nil, nil
}

func describeRef(ref contract.EmployeeRef) string {
	if ref.EmployeeCPF != nil {
		return *ref.EmployeeCPF
	}
	if ref.EmployeeID != nil {
		return strconv.FormatInt(*ref.EmployeeID, 10)
	}
	return ""
}

// ResolveDocumentTypes loads every named document type in one query. All the
// names that do not exist are reported together, in request order.
func (g *Guard) ResolveDocumentTypes(ctx context.Context, names []string) (map[string]*entity.DocumentType, apierror.ErrorResponse) {
	docTypes, err := g.DocumentTypeRepo.FindAllInNames(ctx, names)
	if err != nil {
		log.Errorf("failed to fetch document types: %v", err)
		return nil, apierror.InternalServerError
	}

	byName := make(map[string]*entity.DocumentType, len(docTypes))
	found := mapset.NewThreadUnsafeSet[string]()
	for _, docType := range docTypes {
		byName[docType.Name] = docType
		found.Add(docType.Name)
	}

	var missing []string
	for _, name := range names {
		if !found.Contains(name) {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return nil, &apierror.MissingDocumentTypesError{Names: missing}
	}
	return byName, nil
}

// ResolveLink finds the link between the employee and the named document type,
// with the document type fields loaded.
func (g *Guard) ResolveLink(ctx context.Context, employeeID int64, docType string) (*entity.EmployeeDocument, apierror.ErrorResponse) {
	link, err := g.LinkRepo.FindByEmployeeAndType(ctx, employeeID, docType)
	if err != nil {
		log.Errorf("failed to fetch employee document: %v", err)
		return nil, apierror.InternalServerError
	}

	if link == nil || link.DocumentType == nil {
		return nil, apierror.NewEmployeeDocumentNotFoundError(docType)
	}
	return link, nil
}

// CheckFields compares the provided field names against the document type
// schema. Missing required fields keep the schema order, unknown ones are sorted.
func CheckFields(schema []*entity.DocumentField, provided map[string]string) apierror.ErrorResponse {
	known := mapset.NewThreadUnsafeSet[string]()
	var missing []string
	for _, field := range schema {
		known.Add(field.Name)
		if _, ok := provided[field.Name]; field.Required && !ok {
			missing = append(missing, field.Name)
		}
	}

	unknown := mapset.NewThreadUnsafeSetFromMapKeys(provided).Difference(known).ToSlice()
	slices.Sort(unknown)

	if len(missing) == 0 && len(unknown) == 0 {
		return nil
	}
	return &apierror.FieldSchemaError{Missing: missing, Unknown: unknown}
}
