package wizard_step

import (
	"github.com/m04kA/LimpMe-BookingService/internal/domain"
	"github.com/m04kA/LimpMe-BookingService/internal/service/catalog"
)

// LocationRequest изменения первого шага. nil поле не меняется.
type LocationRequest struct {
	City         *string `json:"city"`
	Neighborhood *string `json:"neighborhood"`
}

// DateTimeRequest изменения второго шага. Дата в формате YYYY-MM-DD.
type DateTimeRequest struct {
	Date *string `json:"date"`
	Time *string `json:"time"`
}

// DraftView черновик в ответе API
type DraftView struct {
	City           string `json:"city"`
	Neighborhood   string `json:"neighborhood"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	TechnicianName string `json:"technicianName"`
	RescheduleOf   string `json:"rescheduleOf,omitempty"`
}

// StepView экран шага мастера: текущий черновик и доступные варианты.
// Redirect заполнен, если запрошенный шаг еще недоступен.
type StepView struct {
	Step        int       `json:"step"`
	TotalSteps  int       `json:"totalSteps"`
	Path        string    `json:"path"`
	Draft       DraftView `json:"draft"`
	CanContinue bool      `json:"canContinue"`
	Redirect    string    `json:"redirect,omitempty"`

	// Location
	Cities        []string `json:"cities,omitempty"`
	Neighborhoods []string `json:"neighborhoods,omitempty"`

	// DateTime
	TimeSlots       []string `json:"timeSlots,omitempty"`
	MinDate         string   `json:"minDate,omitempty"`
	ExcludedWeekday string   `json:"excludedWeekday,omitempty"`

	// Technician
	Technicians []catalog.TechnicianResponse `json:"technicians,omitempty"`
}

func toDraftView(d *domain.Draft) DraftView {
	v := DraftView{
		City:           d.City,
		Neighborhood:   d.Neighborhood,
		Time:           d.Time,
		TechnicianName: d.TechnicianName,
		RescheduleOf:   d.RescheduleOf,
	}
	if d.HasDate() {
		v.Date = d.Date.Format(domain.DateFormat)
	}
	return v
}
