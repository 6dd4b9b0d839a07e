package domain

import "time"

// Step is a screen of the booking wizard
type Step string

const (
	StepLocation   Step = "location"
	StepDateTime   Step = "datetime"
	StepTechnician Step = "technician"
)

// Index returns the 1-based position of the step, 0 for unknown steps
func (s Step) Index() int {
	switch s {
	case StepLocation:
		return 1
	case StepDateTime:
		return 2
	case StepTechnician:
		return 3
	default:
		return 0
	}
}

// Path returns the route of the screen showing the step
func (s Step) Path() string {
	switch s {
	case StepDateTime:
		return PathSelectDateTime
	case StepTechnician:
		return PathSelectTechnician
	default:
		return PathSelectLocation
	}
}

// TotalSteps number of screens in the wizard
const TotalSteps = 3

// Draft is the in-flight selection of one wizard traversal.
// It is owned by a single user and discarded on successful submission.
type Draft struct {
	City           string    `json:"city"`
	Neighborhood   string    `json:"neighborhood"`
	Date           time.Time `json:"date"` // zero until picked
	Time           string    `json:"time"`
	TechnicianName string    `json:"technicianName"`
	Step           Step      `json:"step"`

	// RescheduleOf id of the booking this draft was seeded from
	RescheduleOf string `json:"rescheduleOf,omitempty"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// NewDraft returns an empty draft positioned on the first step
func NewDraft() *Draft {
	return &Draft{Step: StepLocation}
}

// NewDraftFromBooking seeds a draft with every field of an existing booking
func NewDraftFromBooking(b *Booking) *Draft {
	return &Draft{
		City:           b.City,
		Neighborhood:   b.Neighborhood,
		Date:           DateOnly(b.BookingDate),
		Time:           b.BookingTime,
		TechnicianName: b.TechnicianName,
		Step:           StepLocation,
		RescheduleOf:   b.ID,
	}
}

func (d *Draft) HasLocation() bool {
	return d.City != "" && d.Neighborhood != ""
}

func (d *Draft) HasDate() bool {
	return !d.Date.IsZero()
}

func (d *Draft) HasDateTime() bool {
	return d.HasDate() && d.Time != ""
}

// IsComplete returns true when all five fields are populated.
// It does not check the date against today.
func (d *Draft) IsComplete() bool {
	return d.HasLocation() && d.HasDateTime() && d.TechnicianName != ""
}

func (d *Draft) IsReschedule() bool {
	return d.RescheduleOf != ""
}
