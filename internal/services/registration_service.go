package services

import (
	"context"
	"strings"

	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/dtos"
	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/middleware"
	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/models"
	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/repositories"
	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/utils"
)

// RegistrationService creates user accounts with their role-specific
// profile. The role is validated before anything is written and the
// whole insert sequence runs in one transaction, so a rejected or
// failed registration leaves no orphaned user row behind.
type RegistrationService struct {
	accounts repositories.AccountRepository
}

func NewRegistrationService(accounts repositories.AccountRepository) *RegistrationService {
	return &RegistrationService{accounts: accounts}
}

// Register creates the user, the optional address and the profile row
// for the requested role. Returns the role registered, or
// utils.ErrInvalidRole / utils.ErrEmailExists.
func (s *RegistrationService) Register(ctx context.Context, req dtos.RegisterRequest) (string, error) {
	role := strings.ToLower(strings.TrimSpace(req.Role))
	if role != middleware.RoleRenter && role != middleware.RoleAgent {
		return "", utils.ErrInvalidRole
	}

	email := strings.TrimSpace(req.Email)
	existing, err := s.accounts.FindUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", utils.ErrEmailExists
	}

	user := &models.User{
		Email:       email,
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
		FirstName:   strings.TrimSpace(req.FirstName),
		MiddleName:  req.MiddleName,
		LastName:    strings.TrimSpace(req.LastName),
	}

	var addr *models.Address
	if req.Line1 != nil && strings.TrimSpace(*req.Line1) != "" {
		addr = &models.Address{
			Line1:   strings.TrimSpace(*req.Line1),
			City:    derefTrim(req.City),
			State:   derefTrim(req.State),
			ZipCode: req.ZipCode,
		}
	}

	switch role {
	case middleware.RoleRenter:
		moveIn, err := parseDate(req.MoveInDate)
		if err != nil {
			return "", err
		}
		_, err = s.accounts.CreateRenter(ctx, user, addr, &models.Renter{
			MoveInDate:   moveIn,
			Budget:       req.Budget,
			PrefLocation: req.PrefLocation,
			ReferralCode: req.ReferralCode,
		})
		if err != nil {
			return "", err
		}
	case middleware.RoleAgent:
		_, err = s.accounts.CreateAgent(ctx, user, addr, &models.Agent{
			JobTitle:   req.JobTitle,
			Agency:     req.Agency,
			LangSpoken: req.LangSpoken,
		})
		if err != nil {
			return "", err
		}
	}
	return role, nil
}

func derefTrim(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
