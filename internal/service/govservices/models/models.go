package models

import (
	"time"

	"github.com/SahanHeshan/GovPortal/internal/domain"
)

// ServiceResponse is the wire shape of a government service
type ServiceResponse struct {
	ServiceID             int64   `json:"service_id"`
	GovNodeID             int64   `json:"gov_node_id"`
	ServiceType           string  `json:"service_type"`
	ServiceNameSI         string  `json:"service_name_si"`
	ServiceNameEN         string  `json:"service_name_en"`
	ServiceNameTA         string  `json:"service_name_ta"`
	DescriptionSI         string  `json:"description_si"`
	DescriptionEN         string  `json:"description_en"`
	DescriptionTA         string  `json:"description_ta"`
	IsActive              bool    `json:"is_active"`
	RequiredDocumentTypes []int64 `json:"required_document_types"`
	CreatedAt             string  `json:"created_at"`
	UpdatedAt             string  `json:"updated_at"`
}

// FromDomainService converts a domain service to its wire shape
func FromDomainService(s *domain.Service) *ServiceResponse {
	docTypes := s.RequiredDocumentTypes
	if docTypes == nil {
		docTypes = []int64{}
	}

	return &ServiceResponse{
		ServiceID:             s.ServiceID,
		GovNodeID:             s.GovNodeID,
		ServiceType:           s.ServiceType,
		ServiceNameSI:         s.ServiceNameSI,
		ServiceNameEN:         s.ServiceNameEN,
		ServiceNameTA:         s.ServiceNameTA,
		DescriptionSI:         s.DescriptionSI,
		DescriptionEN:         s.DescriptionEN,
		DescriptionTA:         s.DescriptionTA,
		IsActive:              s.IsActive,
		RequiredDocumentTypes: docTypes,
		CreatedAt:             s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:             s.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainServiceList converts a list of domain services
func FromDomainServiceList(services []*domain.Service) []ServiceResponse {
	result := make([]ServiceResponse, len(services))
	for i, s := range services {
		result[i] = *FromDomainService(s)
	}
	return result
}
