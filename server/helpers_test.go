package server

import (
	"testing"

	"github.com/joel3500/Forum-de-Discussion-ENT/model"
	"github.com/stretchr/testify/require"
)

func TestIsOwnerOrAdmin(t *testing.T) {
	admin := &model.Account{Id: "admin-id", IsAdmin: model.AdminYes}
	owner := &model.Account{Id: "owner-id", IsAdmin: model.AdminNo}
	other := &model.Account{Id: "other-id", IsAdmin: model.AdminNo}

	cases := []struct {
		name    string
		caller  *model.Account
		ownerID string
		want    bool
	}{
		{"anonymous refused", nil, "owner-id", false},
		{"owner allowed", owner, "owner-id", true},
		{"stranger refused", other, "owner-id", false},
		{"admin allowed on anything", admin, "owner-id", true},
		{"admin allowed on orphaned", admin, "", true},
		{"owner refused on orphaned", owner, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, isOwnerOrAdmin(tc.caller, tc.ownerID))
		})
	}
}

func TestValidateEmail(t *testing.T) {
	require.True(t, ValidateEmail("a@b.com"))
	require.True(t, ValidateEmail("prenom.nom+tag@sous.domaine.ca"))
	require.False(t, ValidateEmail(""))
	require.False(t, ValidateEmail("sans-arobase.com"))
	require.False(t, ValidateEmail("a@b"))
}

func TestValidatePassword(t *testing.T) {
	ok, _ := ValidatePassword("12345678")
	require.True(t, ok)
	ok, msg := ValidatePassword("1234567")
	require.False(t, ok)
	require.NotEmpty(t, msg)
}
