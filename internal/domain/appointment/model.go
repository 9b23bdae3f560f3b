package appointment

// Appointment statuses. Scheduled may move to Completed or Cancelled;
// both of those are terminal.
const (
	StatusScheduled = "Scheduled"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

var validStatuses = map[string]bool{
	StatusScheduled: true,
	StatusCompleted: true,
	StatusCancelled: true,
}

// transitions lists the allowed status changes. Absent source statuses
// are terminal.
var transitions = map[string][]string{
	StatusScheduled: {StatusCompleted, StatusCancelled},
}

func canTransition(from, to string) bool {
	if from == to {
		return true
	}
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// Appointment is one row of the appointments table. Date and time are
// stored as YYYY-MM-DD and HH:MM text.
type Appointment struct {
	ID        int64
	PatientID int64
	DoctorID  int64
	Date      string
	Time      string
	Purpose   string
	Status    string
}
