package billing

// Bill statuses. Partially Paid keeps the space so stored values read
// naturally in reports.
const (
	StatusPending       = "Pending"
	StatusPaid          = "Paid"
	StatusPartiallyPaid = "Partially Paid"
)

var validStatuses = map[string]bool{
	StatusPending:       true,
	StatusPaid:          true,
	StatusPartiallyPaid: true,
}

// Bill is one row of the billing table. AppointmentID is nil for bills
// raised outside an appointment, and is cleared by the database when the
// linked appointment is deleted.
type Bill struct {
	ID                 int64
	PatientID          int64
	AppointmentID      *int64
	ServiceDescription string
	Amount             float64
	BillDate           string
	DueDate            string
	Status             string
}
