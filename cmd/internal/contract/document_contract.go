package contract

type DocumentFieldRequest struct {
	Name     string `json:"name" validate:"required,max=120"`
	Required bool   `json:"required"`
}

type CreateDocumentTypeRequest struct {
	Name   string                 `json:"name" validate:"required,min=1,max=120"`
	Fields []DocumentFieldRequest `json:"fields" validate:"omitempty,unique=Name,dive"`
}

type DocumentFieldResponse struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
}

type DocumentTypeResponse struct {
	ID     int64                   `json:"id"`
	Name   string                  `json:"name"`
	Fields []DocumentFieldResponse `json:"fields"`
}

type AttachDocumentsRequest struct {
	EmployeeRef
	DocsType []DocumentRequirement `json:"docsType" validate:"required,min=1,unique=Name,dive"`
}

type DetachDocumentsRequest struct {
	EmployeeID int64    `param:"id" json:"-" validate:"gt=0"`
	DocsType   []string `json:"docsType" validate:"required,nodupes,dive,required"`
}

type SendDocType struct {
	Name   string            `json:"name" validate:"required"`
	Fields map[string]string `json:"fields" validate:"required,dive,keys,required,endkeys,required"`
}

type SendDocumentRequest struct {
	EmployeeRef
	DocType SendDocType `json:"docType" validate:"required"`
}

type FieldValueResponse struct {
	Value    string `json:"value"`
	Name     string `json:"name"`
	Required bool   `json:"required"`
}

// EmployeeDocumentResponse is one requirement link of an employee, flattened
// with its document type and submitted values.
type EmployeeDocumentResponse struct {
	ID          int64                `json:"id"`
	Name        string               `json:"name"`
	Required    bool                 `json:"required"`
	Sent        bool                 `json:"sent"`
	Desc        *string              `json:"desc,omitempty"`
	FieldsValue []FieldValueResponse `json:"fieldsValue"`
}
