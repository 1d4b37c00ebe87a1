package login

import (
	"github.com/SahanHeshan/GovPortal/internal/domain"
)

// LoginResponse HTTP response model. The profile rides alongside the token:
// the portal renders the office identity straight from this payload.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      int64  `json:"user_id"`
	Username    string `json:"username"`
	Role        string `json:"role"`
	Email       string `json:"email"`
	Location    string `json:"location"`
	CategoryID  int64  `json:"category_id"`

	NameSI string `json:"name_si"`
	NameEN string `json:"name_en"`
	NameTA string `json:"name_ta"`

	DescriptionSI string `json:"description_si"`
	DescriptionEN string `json:"description_en"`
	DescriptionTA string `json:"description_ta"`
}

// FromDomainOfficer builds the login response for an authenticated officer
func FromDomainOfficer(o *domain.Officer, token string) *LoginResponse {
	return &LoginResponse{
		AccessToken:   token,
		TokenType:     "bearer",
		UserID:        o.ID,
		Username:      o.Username,
		Role:          o.Role,
		Email:         o.Email,
		Location:      o.Location,
		CategoryID:    o.CategoryID,
		NameSI:        o.NameSI,
		NameEN:        o.NameEN,
		NameTA:        o.NameTA,
		DescriptionSI: o.DescriptionSI,
		DescriptionEN: o.DescriptionEN,
		DescriptionTA: o.DescriptionTA,
	}
}
