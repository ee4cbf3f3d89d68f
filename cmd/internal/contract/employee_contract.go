package contract

// EmployeeRef identifies an employee by exactly one of id or CPF.
type EmployeeRef struct {
	EmployeeID  *int64  `json:"employeeId,omitempty" query:"employeeId" validate:"required_without=EmployeeCPF,excluded_with=EmployeeCPF,omitempty,gt=0"`
	EmployeeCPF *string `json:"employeeCpf,omitempty" query:"employeeCpf" validate:"required_without=EmployeeID,excluded_with=EmployeeID,omitempty,cpf"`
}

type DocumentRequirement struct {
	Name     string  `json:"name" validate:"required,max=120"`
	Required bool    `json:"required"`
	Desc     *string `json:"desc" validate:"omitempty,max=500"`
}

type CreateEmployeeRequest struct {
	Name     string                `json:"name" validate:"required,min=1,max=120"`
	CPF      string                `json:"cpf" validate:"required,cpf"`
	HiredAt  *string               `json:"hiredAt" validate:"omitempty,datebr"`
	DocsType []DocumentRequirement `json:"docsType" validate:"omitempty,unique=Name,dive"`
}

type UpdateEmployeeRequest struct {
	ID      int64   `param:"id" json:"-" validate:"gt=0"`
	Name    *string `json:"name" validate:"omitempty,min=1,max=120"`
	CPF     *string `json:"cpf" validate:"omitempty,cpf"`
	HiredAt *string `json:"hiredAt" validate:"omitempty,datebr"`
	Deleted *bool   `json:"deleted"`
}

type ListEmployeesRequest struct {
	PageRequest
	Name    string `query:"name" validate:"max=120"`
	DocType string `query:"docType" validate:"max=120"`
	Deleted bool   `query:"deleted"`
	Pending *bool  `query:"pending"`
}

type EmployeeListItem struct {
	ID        int64  `json:"id"`
	CPF       string `json:"cpf"`
	Name      string `json:"name"`
	HiredAt   string `json:"hiredAt"`
	CreatedAt string `json:"createdAt"`
	Deleted   bool   `json:"deleted"`
	Pending   bool   `json:"pending"`
}

type UpdateEmployeeResponse struct {
	ID        int64  `json:"id"`
	UpdatedAt string `json:"updatedAt"`
}
