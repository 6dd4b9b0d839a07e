package domain

import "time"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Booking flow defaults
const (
	DefaultTimeZone      = "America/Sao_Paulo"
	DefaultRedirectDelay = 2 * time.Second
	ExcludedWeekday      = time.Sunday
)

// Account validation constants
const (
	MinPasswordLength = 6
	MaxEmailLength    = 254
)

// Navigation targets returned to the client
const (
	PathLanding          = "/"
	PathAuth             = "/auth"
	PathDashboard        = "/dashboard"
	PathMyBookings       = "/my-bookings"
	PathSelectLocation   = "/select-location"
	PathSelectDateTime   = "/select-datetime"
	PathSelectTechnician = "/select-technician"
	PathPlans            = "/planos"
)
