package user

import (
	usersvc "github.com/amirasaad/minibank/pkg/service/user"
	"github.com/google/uuid"
)

// ProfileResponse is the current user as returned by /user/me.
type ProfileResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	NationalID string    `json:"national_id"` // masked
	AccountID  uuid.UUID `json:"account_id"`
}

func toProfileResponse(p *usersvc.Profile) ProfileResponse {
	return ProfileResponse{
		ID:         p.ID,
		Name:       p.Name,
		NationalID: p.MaskedNationalID,
		AccountID:  p.AccountID,
	}
}
