package patient

// Patient is one row of the patients table. Dates are stored as
// YYYY-MM-DD text, the way the intake forms capture them.
type Patient struct {
	ID             int64
	Name           string
	DateOfBirth    string
	Gender         string
	Address        string
	Phone          string
	Email          string
	AdmissionDate  string
	MedicalHistory string
}
