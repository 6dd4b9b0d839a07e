// Package wizard holds the rules of the three-step booking wizard.
// All functions operate on a caller-owned draft and never touch storage.
package wizard

import (
	"fmt"
	"time"

	"github.com/m04kA/LimpMe-BookingService/internal/domain"
)

// SelectCity sets the city and clears the neighborhood.
// Selecting the same city again still clears it.
func SelectCity(d *domain.Draft, city string) error {
	if !domain.IsCity(city) {
		return fmt.Errorf("%w: %q", ErrUnknownCity, city)
	}
	d.City = city
	d.Neighborhood = ""
	d.Step = domain.StepLocation
	return nil
}

// SelectNeighborhood sets a neighborhood of the already selected city
func SelectNeighborhood(d *domain.Draft, neighborhood string) error {
	if d.City == "" {
		return ErrCityRequired
	}
	if !domain.IsNeighborhoodOf(d.City, neighborhood) {
		return fmt.Errorf("%w: %q in %q", ErrUnknownNeighborhood, neighborhood, d.City)
	}
	d.Neighborhood = neighborhood
	return nil
}

// NeighborhoodOptions returns the neighborhoods selectable for the draft's city
func NeighborhoodOptions(d *domain.Draft) []string {
	return domain.NeighborhoodsOf(d.City)
}

func CanContinueLocation(d *domain.Draft) bool {
	return d.HasLocation()
}

// ContinueToDateTime advances from the location step
func ContinueToDateTime(d *domain.Draft) error {
	if !CanContinueLocation(d) {
		return ErrStepIncomplete
	}
	d.Step = domain.StepDateTime
	return nil
}

// SelectDate sets the date. now is the current time in the service time zone.
func SelectDate(d *domain.Draft, date, now time.Time) error {
	if !d.HasLocation() {
		return ErrLocationRequired
	}
	if !domain.IsBookableDate(date, now) {
		return fmt.Errorf("%w: %s", ErrInvalidDate, date.Format(domain.DateFormat))
	}
	d.Date = domain.DateOnly(date)
	d.Step = domain.StepDateTime
	return nil
}

// SelectTime sets one of the fixed slots
func SelectTime(d *domain.Draft, slot string) error {
	if !d.HasLocation() {
		return ErrLocationRequired
	}
	if !domain.IsTimeSlot(slot) {
		return fmt.Errorf("%w: %q", ErrUnknownTimeSlot, slot)
	}
	d.Time = slot
	d.Step = domain.StepDateTime
	return nil
}

// CanContinueDateTime is true when both date and time are set and the date
// is still bookable
func CanContinueDateTime(d *domain.Draft, now time.Time) bool {
	return d.HasLocation() && d.HasDateTime() && domain.IsBookableDate(d.Date, now)
}

// ContinueToTechnician advances from the date/time step
func ContinueToTechnician(d *domain.Draft, now time.Time) error {
	if !CanContinueDateTime(d, now) {
		return ErrStepIncomplete
	}
	d.Step = domain.StepTechnician
	return nil
}

// Back moves one step back keeping every selection
func Back(d *domain.Draft) error {
	switch d.Step {
	case domain.StepTechnician:
		d.Step = domain.StepDateTime
	case domain.StepDateTime:
		d.Step = domain.StepLocation
	default:
		return ErrAlreadyFirstStep
	}
	return nil
}

// SelectTechnician picks a technician from the roster. Only one can be
// selected at a time.
func SelectTechnician(d *domain.Draft, name string) error {
	if _, ok := domain.FindTechnician(name); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTechnician, name)
	}
	d.TechnicianName = name
	return nil
}

// Technicians is the roster shown on the last step
func Technicians() []domain.Technician {
	return domain.Technicians()
}

// ReadyForSubmission validates the whole draft right before it becomes a
// booking. Only a draft moved to the last step by ContinueToTechnician
// qualifies. The date is rechecked because a draft may outlive its day.
func ReadyForSubmission(d *domain.Draft, now time.Time) error {
	if d == nil || !d.IsComplete() {
		return ErrStepIncomplete
	}
	if d.Step != domain.StepTechnician {
		return ErrTechnicianStep
	}
	if !domain.IsNeighborhoodOf(d.City, d.Neighborhood) {
		return ErrUnknownNeighborhood
	}
	if !domain.IsBookableDate(d.Date, now) {
		return ErrInvalidDate
	}
	if !domain.IsTimeSlot(d.Time) {
		return ErrUnknownTimeSlot
	}
	if _, ok := domain.FindTechnician(d.TechnicianName); !ok {
		return ErrUnknownTechnician
	}
	return nil
}
