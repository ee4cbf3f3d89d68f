package service

import (
	"context"
	"employeedocs/cmd/internal/contract"
	"employeedocs/cmd/internal/domain/database/repository"
	"employeedocs/cmd/internal/domain/entity"
	"employeedocs/cmd/internal/domain/pagination"
	"employeedocs/cmd/internal/utils/apierror"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type DefaultDocumentTypeService struct {
	DocumentTypeRepo DocumentTypeRepository
	Validate         *validator.Validate
}

func NewDocumentTypeService(docTypeRepo DocumentTypeRepository, validate *validator.Validate) *DefaultDocumentTypeService {
	return &DefaultDocumentTypeService{
		DocumentTypeRepo: docTypeRepo,
		Validate:         validate,
	}
}

func (d *DefaultDocumentTypeService) CreateDocumentType(ctx context.Context, req *contract.CreateDocumentTypeRequest) (*contract.CreatedResponse, apierror.ErrorResponse) {
	if apierr := validateRequest(d.Validate, req); apierr != nil {
		return nil, apierr
	}

	existing, err := d.DocumentTypeRepo.FindByName(ctx, req.Name)
	if err != nil {
		log.Errorf("failed to fetch document type by name: %v", err)
		return nil, apierror.InternalServerError
	}

	if existing != nil {
		return nil, apierror.DocumentTypeNameTakenError
	}

	docType := &entity.DocumentType{Name: req.Name}
	for _, field := range req.Fields {
		docType.Fields = append(docType.Fields, &entity.DocumentField{
			Name:     field.Name,
			Required: field.Required,
		})
	}

	if err = d.DocumentTypeRepo.Create(ctx, docType); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, apierror.DocumentTypeNameTakenError
		}

		log.Errorf("failed to create document type: %v", err)
		return nil, apierror.NewPersistence("Error, Unable to register document")
	}
	return &contract.CreatedResponse{ID: docType.ID}, nil
}

func (d *DefaultDocumentTypeService) ListDocumentTypes(ctx context.Context, req *contract.PageRequest) (*contract.PageResponse[*contract.DocumentTypeResponse], apierror.ErrorResponse) {
	if apierr := validateRequest(d.Validate, req); apierr != nil {
		return nil, apierr
	}

	window := pagination.Plan(req.Params())
	rows, err := d.DocumentTypeRepo.FindPage(ctx, window)
	if err != nil {
		log.Errorf("failed to list document types: %v", err)
		return nil, apierror.InternalServerError
	}

	page := pagination.Build(window, rows, func(dt *entity.DocumentType) int64 { return dt.ID })
	return contract.NewPageResponse(pagination.Map(page, toDocumentTypeResponse)), nil
}

// DeleteDocumentType removes the document type along with its fields, the
// employee links to it and their submitted values. Unknown ids are a no-op.
func (d *DefaultDocumentTypeService) DeleteDocumentType(ctx context.Context, id int64) (*contract.MessageResponse, apierror.ErrorResponse) {
	if id <= 0 {
		return nil, apierror.InvalidIDError
	}

	if _, err := d.DocumentTypeRepo.Delete(ctx, id); err != nil {
		log.Errorf("failed to delete document type %d: %v", id, err)
		return nil, apierror.NewPersistence("Error, Unable to delete document")
	}
	return &contract.MessageResponse{Message: "Document deleted with successfully"}, nil
}

func toDocumentTypeResponse(dt *entity.DocumentType) *contract.DocumentTypeResponse {
	fields := make([]contract.DocumentFieldResponse, len(dt.Fields))
	for i, field := range dt.Fields {
		fields[i] = contract.DocumentFieldResponse{Name: field.Name, Required: field.Required}
	}
	return &contract.DocumentTypeResponse{ID: dt.ID, Name: dt.Name, Fields: fields}
}
