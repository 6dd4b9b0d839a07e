package wizard

import "errors"

var (
	ErrUnknownCity         = errors.New("wizard: unknown city")
	ErrUnknownNeighborhood = errors.New("wizard: neighborhood does not belong to city")
	ErrCityRequired        = errors.New("wizard: city must be selected first")
	ErrLocationRequired    = errors.New("wizard: location must be selected first")
	ErrInvalidDate         = errors.New("wizard: date is not bookable")
	ErrUnknownTimeSlot     = errors.New("wizard: unknown time slot")
	ErrUnknownTechnician   = errors.New("wizard: unknown technician")
	ErrStepIncomplete      = errors.New("wizard: current step is incomplete")
	ErrAlreadyFirstStep    = errors.New("wizard: already on the first step")
	ErrTechnicianStep      = errors.New("wizard: draft has not reached the technician step")
)
