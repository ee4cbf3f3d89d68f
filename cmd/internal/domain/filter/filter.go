package filter

// Condition is a single SQL condition with its bound arguments.
type Condition struct {
	Clause string
	Args   []any
}

// Predicate is a conjunction of conditions.
type Predicate []Condition

type EmployeeQuery struct {
	Name    string
	DocType string
	Deleted bool
	Pending *bool
}

const (
	hasDocTypeClause = `EXISTS (SELECT 1 FROM employee_documents ed
		JOIN document_types dt ON dt.id = ed.document_type_id
		WHERE ed.employee_id = employees.id AND dt.name = ?)`

	hasRequiredClause = `EXISTS (SELECT 1 FROM employee_documents ed
		WHERE ed.employee_id = employees.id AND ed.required = ? AND ed.sent = ?)`
)

// Employees builds the predicate over the employees relation.
//
// DocType and Pending are independent existential conditions: each one only asks
// for at least one matching document link, and both may hold for different links.
func Employees(q EmployeeQuery) Predicate {
	p := Predicate{{Clause: "employees.deleted = ?", Args: []any{q.Deleted}}}

	if q.Name != "" {
		p = append(p, Condition{Clause: "employees.name LIKE ?", Args: []any{"%" + q.Name + "%"}})
	}

	if q.DocType != "" {
		p = append(p, Condition{Clause: hasDocTypeClause, Args: []any{q.DocType}})
	}

	if q.Pending != nil {
		p = append(p, Condition{Clause: hasRequiredClause, Args: []any{true, !*q.Pending}})
	}
	return p
}
