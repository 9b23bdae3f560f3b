package doctor

// Doctor is one row of the doctors table.
type Doctor struct {
	ID             int64
	Name           string
	Specialization string
	Phone          string
	Email          string
	Department     string
	LicenseNumber  string
}
