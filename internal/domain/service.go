package domain

import "time"

// Service represents an administrative offering of a government office
// (e.g. "Birth Certificate"). Slots belong to exactly one service.
// Display names and descriptions are trilingual: Sinhala, English, Tamil.
type Service struct {
	ServiceID   int64
	GovNodeID   int64
	ServiceType string

	ServiceNameSI string
	ServiceNameEN string
	ServiceNameTA string

	DescriptionSI string
	DescriptionEN string
	DescriptionTA string

	IsActive              bool
	RequiredDocumentTypes []int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayName returns the English display name, falling back to Sinhala
func (s *Service) DisplayName() string {
	if s.ServiceNameEN != "" {
		return s.ServiceNameEN
	}
	return s.ServiceNameSI
}
