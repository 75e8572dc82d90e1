package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/dtos"
	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/utils"
)

func strPtr(s string) *string { return &s }

func renterRegisterRequest(email string) dtos.RegisterRequest {
	return dtos.RegisterRequest{
		Role:        "renter",
		Email:       email,
		PhoneNumber: "555-0100",
		FirstName:   "Asha",
		LastName:    "Rao",
		Line1:       strPtr("12 Elm St"),
		City:        strPtr("Austin"),
		State:       strPtr("TX"),
		MoveInDate:  strPtr("2026-10-01"),
	}
}

func TestRegisterRenter(t *testing.T) {
	accounts := newFakeAccountRepo()
	svc := NewRegistrationService(accounts)

	role, err := svc.Register(context.Background(), renterRegisterRequest("asha@example.com"))
	require.NoError(t, err)
	require.Equal(t, "renter", role)

	ident, err := accounts.FindRenterIdentityByEmail(context.Background(), "asha@example.com")
	require.NoError(t, err)
	require.NotNil(t, ident)
	require.Equal(t, "Asha", ident.FirstName)
}

func TestRegisterNormalizesRole(t *testing.T) {
	accounts := newFakeAccountRepo()
	svc := NewRegistrationService(accounts)

	req := renterRegisterRequest("asha@example.com")
	req.Role = "  Renter "

	role, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, "renter", role)
}

func TestRegisterInvalidRoleWritesNothing(t *testing.T) {
	accounts := newFakeAccountRepo()
	svc := NewRegistrationService(accounts)

	req := renterRegisterRequest("asha@example.com")
	req.Role = "landlord"

	_, err := svc.Register(context.Background(), req)
	require.ErrorIs(t, err, utils.ErrInvalidRole)

	u, err := accounts.FindUserByEmail(context.Background(), "asha@example.com")
	require.NoError(t, err)
	require.Nil(t, u)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	accounts := newFakeAccountRepo()
	svc := NewRegistrationService(accounts)

	_, err := svc.Register(context.Background(), renterRegisterRequest("asha@example.com"))
	require.NoError(t, err)

	req := dtos.RegisterRequest{
		Role:        "agent",
		Email:       "asha@example.com",
		PhoneNumber: "555-0101",
		FirstName:   "Asha",
		LastName:    "Rao",
		JobTitle:    strPtr("Broker"),
	}
	_, err = svc.Register(context.Background(), req)
	require.ErrorIs(t, err, utils.ErrEmailExists)
}

func TestRegisterAgent(t *testing.T) {
	accounts := newFakeAccountRepo()
	svc := NewRegistrationService(accounts)

	role, err := svc.Register(context.Background(), dtos.RegisterRequest{
		Role:        "agent",
		Email:       "ben@example.com",
		PhoneNumber: "555-0102",
		FirstName:   "Ben",
		LastName:    "Okafor",
		JobTitle:    strPtr("Agent"),
		Agency:      strPtr("Lakeside Realty"),
	})
	require.NoError(t, err)
	require.Equal(t, "agent", role)

	ident, err := accounts.FindAgentIdentityByEmail(context.Background(), "ben@example.com")
	require.NoError(t, err)
	require.NotNil(t, ident)

	// Not registered as a renter.
	rIdent, err := accounts.FindRenterIdentityByEmail(context.Background(), "ben@example.com")
	require.NoError(t, err)
	require.Nil(t, rIdent)
}

func TestRegisterBadMoveInDate(t *testing.T) {
	accounts := newFakeAccountRepo()
	svc := NewRegistrationService(accounts)

	req := renterRegisterRequest("asha@example.com")
	req.MoveInDate = strPtr("next month")

	_, err := svc.Register(context.Background(), req)
	require.Error(t, err)
}
