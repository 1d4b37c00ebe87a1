// Package models holds the wire models the admin console exchanges with the
// portal backend. The console never invents identities: slot and service ids
// are always backend-assigned.
package models

// TimeSlot is a bookable appointment window as the backend serves it
type TimeSlot struct {
	SlotID         int64  `json:"slot_id"`
	ReservationID  int64  `json:"reservation_id"`
	BookingDate    string `json:"booking_date"` // "2026-03-15"
	StartTime      string `json:"start_time"`   // "09:00:00"
	EndTime        string `json:"end_time"`     // "10:30:00"
	MaxCapacity    int    `json:"max_capacity"`
	ReservedCount  int    `json:"reserved_count"`
	RecurrentCount int    `json:"recurrent_count"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}

// Service is an administrative offering slots belong to. Read-only from the
// console's perspective.
type Service struct {
	ServiceID     int64  `json:"service_id"`
	GovNodeID     int64  `json:"gov_node_id"`
	ServiceType   string `json:"service_type"`
	ServiceNameSI string `json:"service_name_si"`
	ServiceNameEN string `json:"service_name_en"`
	ServiceNameTA string `json:"service_name_ta"`
	IsActive      bool   `json:"is_active"`
}

// CreateSlotPayload is the create request body. Recurrence and the owning
// service ride only here: the update endpoint accepts neither.
type CreateSlotPayload struct {
	ReservationID  int64  `json:"reservation_id"`
	BookingDate    string `json:"booking_date"` // "2026-03-15"
	StartTime      string `json:"start_time"`   // "09:00:00"
	EndTime        string `json:"end_time"`     // "10:30:00"
	MaxCapacity    int    `json:"max_capacity"`
	ReservedCount  int    `json:"reserved_count"`
	RecurrentCount int    `json:"recurrent_count"`
	Status         string `json:"status"`
}

// UpdateSlotPayload is the update request body: the create shape minus
// recurrent_count and reservation_id
type UpdateSlotPayload struct {
	BookingDate   string `json:"booking_date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	MaxCapacity   int    `json:"max_capacity"`
	ReservedCount int    `json:"reserved_count"`
	Status        string `json:"status"`
}

// Officer is the authenticated staff profile returned by login
type Officer struct {
	UserID     int64  `json:"user_id"`
	Username   string `json:"username"`
	Role       string `json:"role"`
	Email      string `json:"email"`
	Location   string `json:"location"`
	CategoryID int64  `json:"category_id"`
	NameSI     string `json:"name_si"`
	NameEN     string `json:"name_en"`
	NameTA     string `json:"name_ta"`
}
