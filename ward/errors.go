package ward

import "fmt"

type (
	StaffNotFound struct {
		Email string
		Role  string
	}

	PatientNotFound struct {
		ID int64
	}

	ReadOnlyRegistry struct{}
)

func (s StaffNotFound) Error() string {
	return fmt.Sprintf("no staff record for %v with role %v", s.Email, s.Role)
}

func (p PatientNotFound) Error() string {
	return fmt.Sprintf("patient %v not found", p.ID)
}

func (ReadOnlyRegistry) Error() string {
	return "registry was opened read-only"
}
