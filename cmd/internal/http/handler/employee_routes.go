package handler

import (
	"context"
	"employeedocs/cmd/internal/contract"
	"employeedocs/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type EmployeeService interface {
	CreateEmployee(ctx context.Context, req *contract.CreateEmployeeRequest) (*contract.CreatedResponse, apierror.ErrorResponse)
	UpdateEmployee(ctx context.Context, req *contract.UpdateEmployeeRequest) (*contract.UpdateEmployeeResponse, apierror.ErrorResponse)
	ListEmployees(ctx context.Context, req *contract.ListEmployeesRequest) (*contract.PageResponse[*contract.EmployeeListItem], apierror.ErrorResponse)
}

type DefaultEmployeeRoute struct {
	EmployeeService EmployeeService
}

func NewEmployeeDefault(employeeService EmployeeService) *DefaultEmployeeRoute {
	return &DefaultEmployeeRoute{EmployeeService: employeeService}
}

func (e *DefaultEmployeeRoute) GetEmployees(c echo.Context) error {
	var req contract.ListEmployeesRequest
	binder := bindPage(echo.QueryParamsBinder(c), &req.PageRequest).
		String("name", &req.Name).
		String("docType", &req.DocType).
		Bool("deleted", &req.Deleted)

	var pending bool
	if c.QueryParams().Has("pending") {
		binder.Bool("pending", &pending)
		req.Pending = &pending
	}

	if err := binder.BindError(); err != nil {
		return respondError(c, bindingError(err))
	}

	page, apierr := e.EmployeeService.ListEmployees(c.Request().Context(), &req)
	if apierr != nil {
		return respondError(c, apierr)
	}
	return respondOK(c, page)
}

func (e *DefaultEmployeeRoute) CreateEmployee(c echo.Context) error {
	var req contract.CreateEmployeeRequest
	if apierr := bindBody(c, &req); apierr != nil {
		return respondError(c, apierr)
	}

	created, apierr := e.EmployeeService.CreateEmployee(c.Request().Context(), &req)
	if apierr != nil {
		return respondError(c, apierr)
	}
	return respondOK(c, echo.Map{"employee": created})
}

func (e *DefaultEmployeeRoute) UpdateEmployee(c echo.Context) error {
	id, apierr := pathID(c)
	if apierr != nil {
		return respondError(c, apierr)
	}

	var req contract.UpdateEmployeeRequest
	if apierr = bindBody(c, &req); apierr != nil {
		return respondError(c, apierr)
	}
	req.ID = id

	updated, apierr := e.EmployeeService.UpdateEmployee(c.Request().Context(), &req)
	if apierr != nil {
		return respondError(c, apierr)
	}
	return respondOK(c, updated)
}
