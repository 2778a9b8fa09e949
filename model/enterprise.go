package model

// EnterpriseUser is the enterprise User schema extension. It is not a
// standalone resource: it rides on a User under the extension URN, and the
// validate package requires that URN to be declared in the User's schemas
// whenever the payload is populated.
type EnterpriseUser struct {
	EmployeeNumber string   `json:"employeeNumber,omitempty"`
	CostCenter     string   `json:"costCenter,omitempty"`
	Organization   string   `json:"organization,omitempty"`
	Division       string   `json:"division,omitempty"`
	Department     string   `json:"department,omitempty"`
	Manager        *Manager `json:"manager,omitempty"`
}

// IsZero reports whether no extension field is populated.
func (e *EnterpriseUser) IsZero() bool {
	return e == nil || *e == EnterpriseUser{}
}

// Manager identifies the user's manager by the id of another User.
type Manager struct {
	Value       string `json:"value,omitempty"`
	Ref         string `json:"$ref,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
}
