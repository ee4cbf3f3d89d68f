package service

import (
	"context"
	"employeedocs/cmd/internal/contract"
	"employeedocs/cmd/internal/domain/entity"
	"employeedocs/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

// DefaultDocumentService keeps track of which documents each employee must
// hand in and what was submitted for them.
type DefaultDocumentService struct {
	LinkRepo EmployeeDocumentRepository
	Guard    *Guard
	Validate *validator.Validate
}

func NewDocumentService(linkRepo EmployeeDocumentRepository, guard *Guard, validate *validator.Validate) *DefaultDocumentService {
	return &DefaultDocumentService{
		LinkRepo: linkRepo,
		Guard:    guard,
		Validate: validate,
	}
}

// AttachDocuments links the document types to the employee. Pairs that are
// already linked keep their current required flag and description.
func (d *DefaultDocumentService) AttachDocuments(ctx context.Context, req *contract.AttachDocumentsRequest) (*contract.MessageResponse, apierror.ErrorResponse) {
	if apierr := validateRequest(d.Validate, req); apierr != nil {
		return nil, apierr
	}

	employee, apierr := d.Guard.ResolveEmployee(ctx, req.EmployeeRef)
	if apierr != nil {
		return nil, apierr
	}

	names := make([]string, len(req.DocsType))
	for i, doc := range req.DocsType {
		names[i] = doc.Name
	}

	docTypes, apierr := d.Guard.ResolveDocumentTypes(ctx, names)
	if apierr != nil {
		return nil, apierr
	}

	links := make([]*entity.EmployeeDocument, len(req.DocsType))
	for i, doc := range req.DocsType {
		links[i] = &entity.EmployeeDocument{
			EmployeeID:     employee.ID,
			DocumentTypeID: docTypes[doc.Name].ID,
			Required:       doc.Required,
			Desc:           doc.Desc,
		}
	}

	if _, err := d.LinkRepo.AttachMany(ctx, links); err != nil {
		log.Errorf("failed to attach documents to employee %d: %v", employee.ID, err)
		return nil, apierror.NewPersistence("Error, Unable to attach documents employee")
	}
	return &contract.MessageResponse{Message: "documents attached successfully"}, nil
}

// DetachDocuments removes the links of the listed document types. Names the
// employee was never linked to are ignored.
func (d *DefaultDocumentService) DetachDocuments(ctx context.Context, req *contract.DetachDocumentsRequest) (*contract.MessageResponse, apierror.ErrorResponse) {
	if apierr := validateRequest(d.Validate, req); apierr != nil {
		return nil, apierr
	}

	employee, apierr := d.Guard.ResolveEmployee(ctx, contract.EmployeeRef{EmployeeID: &req.EmployeeID})
	if apierr != nil {
		return nil, apierr
	}

	if _, err := d.LinkRepo.DetachByTypeNames(ctx, employee.ID, req.DocsType); err != nil {
		log.Errorf("failed to detach documents from employee %d: %v", employee.ID, err)
		return nil, apierror.NewPersistence("Error, Unable to detach documents employee")
	}
	return &contract.MessageResponse{Message: "document successfully detached"}, nil
}

// SendDocument stores the submitted field values of a linked document and
// marks it as sent. Only the current payload is checked against the required
// fields, values stored by earlier submissions do not count.
func (d *DefaultDocumentService) SendDocument(ctx context.Context, req *contract.SendDocumentRequest) (*contract.MessageResponse, apierror.ErrorResponse) {
	if apierr := validateRequest(d.Validate, req); apierr != nil {
		return nil, apierr
	}

	employee, apierr := d.Guard.ResolveEmployee(ctx, req.EmployeeRef)
	if apierr != nil {
		return nil, apierr
	}

	link, apierr := d.Guard.ResolveLink(ctx, employee.ID, req.DocType.Name)
	if apierr != nil {
		return nil, apierr
	}

	schema := link.DocumentType.Fields
	if apierr = CheckFields(schema, req.DocType.Fields); apierr != nil {
		return nil, apierr
	}

	values := make([]*entity.FieldValue, 0, len(req.DocType.Fields))
	for _, field := range schema {
		value, ok := req.DocType.Fields[field.Name]
		if !ok {
			continue
		}
		values = append(values, &entity.FieldValue{
			EmployeeDocumentID: link.ID,
			DocumentFieldID:    field.ID,
			Value:              value,
		})
	}

	if err := d.LinkRepo.SubmitValues(ctx, link.ID, values); err != nil {
		log.Errorf("failed to submit document %d: %v", link.ID, err)
		return nil, apierror.NewPersistence("Error, Unable to send document employee")
	}
	return &contract.MessageResponse{Message: "Document sent successfully"}, nil
}

// GetEmployeeDocuments lists the documents of an active employee. Unknown and
// soft-deleted employees have no documents.
func (d *DefaultDocumentService) GetEmployeeDocuments(ctx context.Context, ref *contract.EmployeeRef) ([]*contract.EmployeeDocumentResponse, apierror.ErrorResponse) {
	if apierr := validateRequest(d.Validate, ref); apierr != nil {
		return nil, apierr
	}

	employee, err := d.Guard.findEmployee(ctx, *ref)
	if err != nil {
		log.Errorf("failed to fetch employee: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.EmployeeDocumentResponse, 0)
	if employee == nil || employee.Deleted {
		return resp, nil
	}

	links, err := d.LinkRepo.FindAllByEmployee(ctx, employee.ID)
	if err != nil {
		log.Errorf("failed to fetch documents of employee %d: %v", employee.ID, err)
		return nil, apierror.InternalServerError
	}

	for _, link := range links {
		resp = append(resp, toEmployeeDocumentResponse(link))
	}
	return resp, nil
}

func toEmployeeDocumentResponse(link *entity.EmployeeDocument) *contract.EmployeeDocumentResponse {
	resp := &contract.EmployeeDocumentResponse{
		Required:    link.Required,
		Sent:        link.Sent,
		Desc:        link.Desc,
		FieldsValue: make([]contract.FieldValueResponse, 0, len(link.FieldValues)),
	}

	if link.DocumentType != nil {
		resp.ID = link.DocumentType.ID
		resp.Name = link.DocumentType.Name
	}

	for _, value := range link.FieldValues {
		out := contract.FieldValueResponse{Value: value.Value}
		if value.DocumentField != nil {
			out.Name = value.DocumentField.Name
			out.Required = value.DocumentField.Required
		}
		resp.FieldsValue = append(resp.FieldsValue, out)
	}
	return resp
}
