package medrecord

// MaxDiagnosisLen caps the free-text diagnosis field.
const MaxDiagnosisLen = 1000

// Record is one row of the medical_records table.
type Record struct {
	ID           int64
	PatientID    int64
	DoctorID     int64
	RecordDate   string
	Diagnosis    string
	Treatment    string
	Prescription string
	Notes        string
}
