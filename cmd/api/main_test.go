package main

import (
	"employeedocs/cmd/internal/config"
	"employeedocs/cmd/internal/domain/database"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	db, err := database.Init(database.Config{
		Driver: database.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "test.db"),
		Silent: true,
	})
	require.NoError(t, err)
	return newServer(&config.Config{BodyLimit: "2M"}, db)
}

func call(t *testing.T, e *echo.Echo, method, target, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec.Code, out
}

func TestDocumentLifecycle(t *testing.T) {
	e := newTestServer(t)

	code, _ := call(t, e, http.MethodPost, "/document-type", `{"name":"CPF","fields":[{"name":"cpf_copy","required":true}]}`)
	require.Equal(t, http.StatusOK, code)

	code, body := call(t, e, http.MethodPost, "/employee", `{"name":"Ana","cpf":"529.982.247-25","hiredAt":"01/02/2024"}`)
	require.Equal(t, http.StatusOK, code)
	id := body["employee"].(map[string]any)["id"].(float64)
	assert.EqualValues(t, 1, id)

	attach := `{"employeeId":1,"docsType":[{"name":"CPF","required":true}]}`
	for range 2 {
		code, body = call(t, e, http.MethodPost, "/attach-document", attach)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "documents attached successfully", body["message"])
	}

	code, body = call(t, e, http.MethodGet, "/employees?pending=true", "")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, body["list"], 1)

	code, body = call(t, e, http.MethodPost, "/send-document", `{"employeeCpf":"52998224725","docType":{"name":"CPF","fields":{"extra":"x"}}}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "validation_error", body["type"])
	problem := body["errors"].([]any)[0].(map[string]any)
	assert.Equal(t, "Missing required fields: cpf_copy | Unknown fields provided: extra", problem["message"])

	code, _ = call(t, e, http.MethodPost, "/send-document", `{"employeeId":1,"docType":{"name":"CPF","fields":{"cpf_copy":"scan.pdf"}}}`)
	require.Equal(t, http.StatusOK, code)

	code, body = call(t, e, http.MethodGet, "/employees-documents?employeeId=1", "")
	require.Equal(t, http.StatusOK, code)
	docs := body["documents"].([]any)
	require.Len(t, docs, 1)
	doc := docs[0].(map[string]any)
	assert.Equal(t, "CPF", doc["name"])
	assert.Equal(t, true, doc["sent"])
	assert.Equal(t, []any{map[string]any{"value": "scan.pdf", "name": "cpf_copy", "required": true}}, doc["fieldsValue"])

	code, body = call(t, e, http.MethodGet, "/employees?pending=true", "")
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, body["list"])

	code, body = call(t, e, http.MethodDelete, "/detach-document/1", `{"docsType":["CPF","unknown"]}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "document successfully detached", body["message"])

	code, body = call(t, e, http.MethodDelete, "/document-type/1", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Document deleted with successfully", body["message"])

	code, body = call(t, e, http.MethodGet, "/documents-type", "")
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, body["list"])
	assert.Nil(t, body["nextCursor"])
	assert.Nil(t, body["prevCursor"])
}

func TestValidationEnvelope(t *testing.T) {
	e := newTestServer(t)

	code, body := call(t, e, http.MethodPost, "/employee", `{"name":"Ana","cpf":"11111111111"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "validation_error", body["type"])
	assert.Equal(t, []any{map[string]any{"field": "cpf", "message": "Invalid CPF"}}, body["errors"])

	code, body = call(t, e, http.MethodGet, "/employees?limit=10&page=1", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, body["list"])
}
