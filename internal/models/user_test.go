package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() RegisterRequest {
	return RegisterRequest{
		FirstName: "Ann",
		LastName:  "Lee",
		Username:  "ann",
		Email:     "ann@x.com",
		Password:  "secret123",
	}
}

func TestRegisterRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(r *RegisterRequest)
		wantField string
	}{
		{
			name:   "valid request",
			mutate: func(_ *RegisterRequest) {},
		},
		{
			name:   "valid request with explicit admin role",
			mutate: func(r *RegisterRequest) { r.Role = RoleAdmin },
		},
		{
			name:      "missing first name",
			mutate:    func(r *RegisterRequest) { r.FirstName = "" },
			wantField: "FirstName",
		},
		{
			name:      "missing last name",
			mutate:    func(r *RegisterRequest) { r.LastName = "" },
			wantField: "LastName",
		},
		{
			name:      "missing username",
			mutate:    func(r *RegisterRequest) { r.Username = "" },
			wantField: "Username",
		},
		{
			name:      "invalid email",
			mutate:    func(r *RegisterRequest) { r.Email = "not-an-email" },
			wantField: "Email",
		},
		{
			name:      "short password",
			mutate:    func(r *RegisterRequest) { r.Password = "123" },
			wantField: "Password",
		},
		{
			name:      "unknown role",
			mutate:    func(r *RegisterRequest) { r.Role = "superadmin" },
			wantField: "Role",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestNewUser_DefaultsRole(t *testing.T) {
	user := NewUser(validRequest(), "hashedpassword")

	assert.Equal(t, RoleUser, user.Role)
	assert.Equal(t, "hashedpassword", user.PasswordHash)
	assert.Equal(t, "ann@x.com", user.Email)
}

func TestNewUser_KeepsExplicitRole(t *testing.T) {
	req := validRequest()
	req.Role = RoleAdmin

	user := NewUser(req, "hashedpassword")

	assert.Equal(t, RoleAdmin, user.Role)
}

func TestUser_JSONNeverExposesPasswordHash(t *testing.T) {
	user := User{
		UID:          "550e8400-e29b-41d4-a716-446655440000",
		FirstName:    "Ann",
		LastName:     "Lee",
		Username:     "ann",
		Email:        "ann@x.com",
		PasswordHash: "hashedpassword",
		Role:         RoleUser,
	}

	raw, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "hashedpassword")

	raw, err = json.Marshal(user.Public())
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "hashedpassword")
	assert.Contains(t, string(raw), "ann@x.com")
}
