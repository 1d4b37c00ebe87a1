package domain

// Default values for a freshly created slot form
const (
	DefaultMaxCapacity    = 10
	DefaultReservedCount  = 0
	DefaultRecurrentCount = 1
	DefaultSlotStatus     = StatusAvailable
)

// Business validation constants
const (
	MinMaxCapacity    = 1
	MaxMaxCapacity    = 1000
	MinRecurrentCount = 0
	MaxRecurrentCount = 30 // a month of daily repeats
)

// Time format constants
const (
	TimeFormat        = "15:04"      // HH:MM
	TimeFormatSeconds = "15:04:05"   // HH:MM:SS, the wire format for slot times
	DateFormat        = "2006-01-02" // YYYY-MM-DD
)
