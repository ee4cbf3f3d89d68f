package handler

import (
	"context"
	"employeedocs/cmd/internal/contract"
	"employeedocs/cmd/internal/utils/apierror"
	"net/http"

	"github.com/labstack/echo/v4"
)

type DocumentTypeService interface {
	CreateDocumentType(ctx context.Context, req *contract.CreateDocumentTypeRequest) (*contract.CreatedResponse, apierror.ErrorResponse)
	ListDocumentTypes(ctx context.Context, req *contract.PageRequest) (*contract.PageResponse[*contract.DocumentTypeResponse], apierror.ErrorResponse)
	DeleteDocumentType(ctx context.Context, id int64) (*contract.MessageResponse, apierror.ErrorResponse)
}

type DocumentService interface {
	AttachDocuments(ctx context.Context, req *contract.AttachDocumentsRequest) (*contract.MessageResponse, apierror.ErrorResponse)
	DetachDocuments(ctx context.Context, req *contract.DetachDocumentsRequest) (*contract.MessageResponse, apierror.ErrorResponse)
	SendDocument(ctx context.Context, req *contract.SendDocumentRequest) (*contract.MessageResponse, apierror.ErrorResponse)
	GetEmployeeDocuments(ctx context.Context, ref *contract.EmployeeRef) ([]*contract.EmployeeDocumentResponse, apierror.ErrorResponse)
}

type DefaultDocumentRoute struct {
	DocumentTypeService DocumentTypeService
	DocumentService     DocumentService
}

func NewDocumentDefault(docTypeService DocumentTypeService, docService DocumentService) *DefaultDocumentRoute {
	return &DefaultDocumentRoute{
		DocumentTypeService: docTypeService,
		DocumentService:     docService,
	}
}

func (d *DefaultDocumentRoute) GetDocumentTypes(c echo.Context) error {
	var req contract.PageRequest
	if err := bindPage(echo.QueryParamsBinder(c), &req).BindError(); err != nil {
		return respondError(c, bindingError(err))
	}

	page, apierr := d.DocumentTypeService.ListDocumentTypes(c.Request().Context(), &req)
	if apierr != nil {
		return respondError(c, apierr)
	}
	return respondOK(c, page)
}

func (d *DefaultDocumentRoute) CreateDocumentType(c echo.Context) error {
	var req contract.CreateDocumentTypeRequest
	if apierr := bindBody(c, &req); apierr != nil {
		return respondError(c, apierr)
	}

	created, apierr := d.DocumentTypeService.CreateDocumentType(c.Request().Context(), &req)
	if apierr != nil {
		return respondError(c, apierr)
	}
	return respondOK(c, echo.Map{"document": created})
}

func (d *DefaultDocumentRoute) DeleteDocumentType(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return respondError(c, apierr)
	}

	resp, apierr := d.DocumentTypeService.DeleteDocumentType(c.Request().Context(), id)
	if apierr != nil {
		return respondError(c, apierr)
	}
	return respondOK(c, resp)
}

func (d *DefaultDocumentRoute) GetEmployeeDocuments(c echo.Context) error {
	var ref contract.EmployeeRef
	binder := echo.QueryParamsBinder(c)

	var employeeID int64
	if c.QueryParams().Has("employeeId") {
		binder.Int64("employeeId", &employeeID)
		ref.EmployeeID = &employeeID
	}

	if c.QueryParams().Has("employeeCpf") {
		cpf := c.QueryParam("employeeCpf")
		ref.EmployeeCPF = &cpf
	}

	if err := binder.BindError(); err != nil {
		return respondError(c, bindingError(err))
	}

	docs, apierr := d.DocumentService.GetEmployeeDocuments(c.Request().Context(), &ref)
	if apierr != nil {
		return respondError(c, apierr)
	}
	return respondOK(c, echo.Map{"documents": docs})
}

func (d *DefaultDocumentRoute) AttachDocuments(c echo.Context) error {
	var req contract.AttachDocumentsRequest
	if apierr := bindBody(c, &req); apierr != nil {
		return respondError(c, apierr)
	}

	resp, apierr := d.DocumentService.AttachDocuments(c.Request().Context(), &req)
	if apierr != nil {
		return respondError(c, apierr)
	}
	return respondOK(c, resp)
}

func (d *DefaultDocumentRoute) DetachDocuments(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return respondError(c, apierr)
	}

	var req contract.DetachDocumentsRequest
	if apierr = bindBody(c, &req); apierr != nil {
		return respondError(c, apierr)
	}
	req.EmployeeID = id

	resp, apierr := d.DocumentService.DetachDocuments(c.Request().Context(), &req)
	if apierr != nil {
		return respondError(c, apierr)
	}
	return respondOK(c, resp)
}

func (d *DefaultDocumentRoute) SendDocument(c echo.Context) error {
	var req contract.SendDocumentRequest
	if apierr := bindBody(c, &req); apierr != nil {
		return respondError(c, apierr)
	}

	resp, apierr := d.DocumentService.SendDocument(c.Request().Context(), &req)
	if apierr != nil {
		return respondError(c, apierr)
	}
	return respondOK(c, resp)
}

// HealthCheck is polled by the container orchestrator.
func HealthCheck(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
