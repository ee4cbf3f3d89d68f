package handler

import (
	"context"
	"employeedocs/cmd/internal/contract"
	"employeedocs/cmd/internal/domain/pagination"
	"employeedocs/cmd/internal/utils/apierror"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeService struct {
	listReq   *contract.ListEmployeesRequest
	updateReq *contract.UpdateEmployeeRequest
	err       apierror.ErrorResponse
}

func (f *fakeEmployeeService) CreateEmployee(_ context.Context, _ *contract.CreateEmployeeRequest) (*contract.CreatedResponse, apierror.ErrorResponse) {
	if f.err != nil {
		return nil, f.err
	}
	return &contract.CreatedResponse{ID: 7}, nil
}

func (f *fakeEmployeeService) UpdateEmployee(_ context.Context, req *contract.UpdateEmployeeRequest) (*contract.UpdateEmployeeResponse, apierror.ErrorResponse) {
	f.updateReq = req
	return &contract.UpdateEmployeeResponse{ID: req.ID, UpdatedAt: "2024-01-01T00:00:00Z"}, nil
}

func (f *fakeEmployeeService) ListEmployees(_ context.Context, req *contract.ListEmployeesRequest) (*contract.PageResponse[*contract.EmployeeListItem], apierror.ErrorResponse) {
	f.listReq = req
	next := pagination.Cursor(2)
	return contract.NewPageResponse(pagination.Page[*contract.EmployeeListItem]{
		List:       []*contract.EmployeeListItem{{ID: 1}, {ID: 2}},
		NextCursor: &next,
	}), nil
}

type fakeDocumentService struct {
	detachReq *contract.DetachDocumentsRequest
	ref       *contract.EmployeeRef
}

func (f *fakeDocumentService) AttachDocuments(_ context.Context, _ *contract.AttachDocumentsRequest) (*contract.MessageResponse, apierror.ErrorResponse) {
	return nil, &apierror.MissingDocumentTypesError{Names: []string{"CNH"}}
}

func (f *fakeDocumentService) DetachDocuments(_ context.Context, req *contract.DetachDocumentsRequest) (*contract.MessageResponse, apierror.ErrorResponse) {
	f.detachReq = req
	return &contract.MessageResponse{Message: "document successfully detached"}, nil
}

func (f *fakeDocumentService) SendDocument(_ context.Context, _ *contract.SendDocumentRequest) (*contract.MessageResponse, apierror.ErrorResponse) {
	return &contract.MessageResponse{Message: "Document sent successfully"}, nil
}

func (f *fakeDocumentService) GetEmployeeDocuments(_ context.Context, ref *contract.EmployeeRef) ([]*contract.EmployeeDocumentResponse, apierror.ErrorResponse) {
	f.ref = ref
	return []*contract.EmployeeDocumentResponse{}, nil
}

func serve(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func newEmployeeServer(svc *fakeEmployeeService) *echo.Echo {
	routes := NewEmployeeDefault(svc)
	e := echo.New()
	e.GET("/employees", routes.GetEmployees)
	e.POST("/employee", routes.CreateEmployee)
	e.PUT("/employee/:id", routes.UpdateEmployee)
	return e
}

func newDocumentServer(svc *fakeDocumentService) *echo.Echo {
	routes := NewDocumentDefault(nil, svc)
	e := echo.New()
	e.GET("/employees-documents", routes.GetEmployeeDocuments)
	e.POST("/attach-document", routes.AttachDocuments)
	e.DELETE("/detach-document/:id", routes.DetachDocuments)
	e.GET("/health", HealthCheck)
	return e
}

func TestGetEmployees_BindsQuery(t *testing.T) {
	svc := &fakeEmployeeService{}
	rec := serve(t, newEmployeeServer(svc), http.MethodGet, "/employees?name=ana&docType=RG&pending=false&limit=3&after=4", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"list":[
		{"id":1,"cpf":"","name":"","hiredAt":"","createdAt":"","deleted":false,"pending":false},
		{"id":2,"cpf":"","name":"","hiredAt":"","createdAt":"","deleted":false,"pending":false}
	],"nextCursor":2,"prevCursor":null}`, rec.Body.String())

	req := svc.listReq
	require.NotNil(t, req)
	assert.Equal(t, "ana", req.Name)
	assert.Equal(t, "RG", req.DocType)
	assert.Equal(t, 3, req.Limit)
	assert.EqualValues(t, 4, req.After)
	require.NotNil(t, req.Pending)
	assert.False(t, *req.Pending)
}

func TestGetEmployees_PendingAbsent(t *testing.T) {
	svc := &fakeEmployeeService{}
	rec := serve(t, newEmployeeServer(svc), http.MethodGet, "/employees", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.listReq.Pending)
}

func TestGetEmployees_InvalidQueryType(t *testing.T) {
	svc := &fakeEmployeeService{}
	rec := serve(t, newEmployeeServer(svc), http.MethodGet, "/employees?limit=many", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"statusCode":400,"type":"bad_request","message":"Parameter 'limit' has invalid type, expected: int"}`, rec.Body.String())
	assert.Nil(t, svc.listReq)
}

func TestCreateEmployee_Responses(t *testing.T) {
	svc := &fakeEmployeeService{}
	e := newEmployeeServer(svc)

	rec := serve(t, e, http.MethodPost, "/employee", `{"name":"Ana","cpf":"52998224725"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"employee":{"id":7}}`, rec.Body.String())

	rec = serve(t, e, http.MethodPost, "/employee", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"type":"bad_request"`)

	svc.err = apierror.EmployeeCPFTakenError
	rec = serve(t, e, http.MethodPost, "/employee", `{"name":"Ana","cpf":"52998224725"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"statusCode":400,"type":"bad_request","message":"There is already an employee with this CPF registered"}`, rec.Body.String())
}

func TestUpdateEmployee_UsesPathID(t *testing.T) {
	svc := &fakeEmployeeService{}
	e := newEmployeeServer(svc)

	rec := serve(t, e, http.MethodPut, "/employee/12", `{"id":99,"name":"Ana"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 12, svc.updateReq.ID)
	assert.Equal(t, "Ana", *svc.updateReq.Name)

	rec = serve(t, e, http.MethodPut, "/employee/abc", `{"name":"Ana"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Parameter 'id' has invalid type")
}

func TestGetEmployeeDocuments_BindsReference(t *testing.T) {
	svc := &fakeDocumentService{}
	e := newDocumentServer(svc)

	rec := serve(t, e, http.MethodGet, "/employees-documents?employeeCpf=529.982.247-25", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"documents":[]}`, rec.Body.String())
	assert.Nil(t, svc.ref.EmployeeID)
	assert.Equal(t, "529.982.247-25", *svc.ref.EmployeeCPF)

	rec = serve(t, e, http.MethodGet, "/employees-documents?employeeId=3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 3, *svc.ref.EmployeeID)
	assert.Nil(t, svc.ref.EmployeeCPF)
}

func TestAttachDocuments_RendersMissingTypes(t *testing.T) {
	rec := serve(t, newDocumentServer(&fakeDocumentService{}), http.MethodPost, "/attach-document", `{"employeeId":1,"docsType":[{"name":"CNH"}]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"statusCode":400,"type":"validation_error","errors":[
		{"field":"docsType","message":"Some of the provided document types were not found. Missing documents: CNH"}
	]}`, rec.Body.String())
}

func TestDetachDocuments_UsesPathID(t *testing.T) {
	svc := &fakeDocumentService{}
	rec := serve(t, newDocumentServer(svc), http.MethodDelete, "/detach-document/5", `{"docsType":["RG"]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 5, svc.detachReq.EmployeeID)
	assert.Equal(t, []string{"RG"}, svc.detachReq.DocsType)
}

func TestHealthCheck(t *testing.T) {
	rec := serve(t, newDocumentServer(&fakeDocumentService{}), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
