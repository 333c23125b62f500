package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/food-ordering-app/models"
	"github.com/yeremiapane/food-ordering-app/utils"
)

func TestSignupThenLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	customer := env.signup(t, "9876543210", "asha@example.com")
	assert.NotEmpty(t, customer.UUID)
	assert.NotEqual(t, testPassword, customer.Password)
	assert.NotEmpty(t, customer.Salt)

	session, err := env.customers.Authenticate(ctx, "9876543210", testPassword)
	require.NoError(t, err)
	assert.NotEmpty(t, session.AccessToken)
	assert.Equal(t, customer.UUID, session.Customer.UUID)
	assert.Equal(t, SessionTTL, session.ExpiresAt.Sub(session.LoginAt))

	resolved, err := env.customers.ResolveSession(ctx, session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, customer.UUID, resolved.UUID)
}

func TestSignupDuplicateContactReportedFirst(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "9876543210", "asha@example.com")

	// Every other field is invalid too; the taken contact still wins.
	_, err := env.customers.Signup(context.Background(), SignupInput{
		FirstName:     "",
		Email:         "not-an-email",
		ContactNumber: "9876543210",
		Password:      "weak",
	})
	assert.ErrorIs(t, err, ErrDuplicateContact)
}

func TestSignupValidation(t *testing.T) {
	valid := SignupInput{
		FirstName:     "Asha",
		Email:         "asha@example.com",
		ContactNumber: "9876543210",
		Password:      testPassword,
	}

	tests := []struct {
		name   string
		mutate func(in *SignupInput)
		want   error
	}{
		{"missing first name", func(in *SignupInput) { in.FirstName = "" }, ErrMissingField},
		{"missing password", func(in *SignupInput) { in.Password = "" }, ErrMissingField},
		{"missing email and bad contact", func(in *SignupInput) { in.Email = ""; in.ContactNumber = "123" }, ErrMissingField},
		{"bad email", func(in *SignupInput) { in.Email = "asha@" }, ErrInvalidEmail},
		{"bad email and weak password", func(in *SignupInput) { in.Email = "asha"; in.Password = "x" }, ErrInvalidEmail},
		{"nine digit contact", func(in *SignupInput) { in.ContactNumber = "987654321" }, ErrInvalidContact},
		{"eleven digit contact", func(in *SignupInput) { in.ContactNumber = "98765432101" }, ErrInvalidContact},
		{"no special character", func(in *SignupInput) { in.Password = "Password1" }, ErrWeakPassword},
		{"too short", func(in *SignupInput) { in.Password = "Pa1!" }, ErrWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			in := valid
			tt.mutate(&in)

			_, err := env.customers.Signup(context.Background(), in)
			assert.ErrorIs(t, err, tt.want)
			assert.Zero(t, env.count(t, &models.Customer{}))
		})
	}
}

func TestSignupLastNameIsOptional(t *testing.T) {
	env := newTestEnv(t)

	c, err := env.customers.Signup(context.Background(), SignupInput{
		FirstName:     "Asha",
		Email:         "asha@example.com",
		ContactNumber: "9876543210",
		Password:      testPassword,
	})
	require.NoError(t, err)
	assert.Empty(t, c.LastName)
}

func TestSignupDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "9876543210", "asha@example.com")

	_, err := env.customers.Signup(context.Background(), SignupInput{
		FirstName:     "Ravi",
		Email:         "asha@example.com",
		ContactNumber: "9123456780",
		Password:      testPassword,
	})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestSignupEmailIsCaseInsensitive(t *testing.T) {
	env := newTestEnv(t)
	first := env.signup(t, "9876543210", "  Asha@Example.COM ")
	assert.Equal(t, "asha@example.com", first.Email)

	var stored models.Customer
	require.NoError(t, env.db.First(&stored, first.ID).Error)
	assert.Equal(t, "asha@example.com", stored.Email)

	_, err := env.customers.Signup(context.Background(), SignupInput{
		FirstName:     "Ravi",
		Email:         "ASHA@example.com",
		ContactNumber: "9123456780",
		Password:      testPassword,
	})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestAuthenticateFailures(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.signup(t, "9876543210", "asha@example.com")

	_, err := env.customers.Authenticate(ctx, "9000000000", testPassword)
	assert.ErrorIs(t, err, ErrUnknownContact)

	_, err = env.customers.Authenticate(ctx, "9876543210", "Password2!")
	assert.ErrorIs(t, err, ErrBadCredentials)

	assert.Zero(t, env.count(t, &models.CustomerAuth{}))
}

func TestEachLoginGetsItsOwnToken(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.signup(t, "9876543210", "asha@example.com")

	fixed := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	env.customers.WithClock(func() time.Time { return fixed })

	a, err := env.customers.Authenticate(ctx, "9876543210", testPassword)
	require.NoError(t, err)
	b, err := env.customers.Authenticate(ctx, "9876543210", testPassword)
	require.NoError(t, err)

	assert.NotEqual(t, a.AccessToken, b.AccessToken)
	assert.EqualValues(t, 2, env.count(t, &models.CustomerAuth{}))
}

func TestSessionLogout(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.signup(t, "9876543210", "asha@example.com")

	session, err := env.customers.Authenticate(ctx, "9876543210", testPassword)
	require.NoError(t, err)

	closed, err := env.customers.Logout(ctx, session.AccessToken)
	require.NoError(t, err)
	require.NotNil(t, closed.LogoutAt)

	_, err = env.customers.ResolveSession(ctx, session.AccessToken)
	assert.ErrorIs(t, err, ErrLoggedOut)

	_, err = env.customers.Logout(ctx, session.AccessToken)
	assert.ErrorIs(t, err, ErrLoggedOut)
}

type recordingCloser struct {
	closed []string
}

func (c *recordingCloser) CloseSession(accessToken string) {
	c.closed = append(c.closed, accessToken)
}

func TestLogoutClosesSessionConnections(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.signup(t, "9876543210", "asha@example.com")
	closer := &recordingCloser{}
	env.customers.WithSessionCloser(closer)

	a, err := env.customers.Authenticate(ctx, "9876543210", testPassword)
	require.NoError(t, err)
	b, err := env.customers.Authenticate(ctx, "9876543210", testPassword)
	require.NoError(t, err)

	_, err = env.customers.Logout(ctx, a.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, []string{a.AccessToken}, closer.closed)

	_, err = env.customers.Logout(ctx, a.AccessToken)
	assert.ErrorIs(t, err, ErrLoggedOut)
	assert.Len(t, closer.closed, 1, "a rejected logout closes nothing")

	_, err = env.customers.ResolveSession(ctx, b.AccessToken)
	assert.NoError(t, err, "other sessions stay open")
}

func TestActiveSessionCarriesExpiry(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	customer := env.signup(t, "9876543210", "asha@example.com")

	login, err := env.customers.Authenticate(ctx, "9876543210", testPassword)
	require.NoError(t, err)

	session, err := env.customers.ActiveSession(ctx, login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, customer.UUID, session.Customer.UUID)
	assert.WithinDuration(t, login.ExpiresAt, session.ExpiresAt, time.Second)
}

func TestSessionExpiry(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.signup(t, "9876543210", "asha@example.com")

	loginAt := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	now := loginAt
	env.customers.WithClock(func() time.Time { return now })

	session, err := env.customers.Authenticate(ctx, "9876543210", testPassword)
	require.NoError(t, err)

	now = loginAt.Add(SessionTTL)
	_, err = env.customers.ResolveSession(ctx, session.AccessToken)
	assert.NoError(t, err, "still valid at the exact expiry instant")

	now = loginAt.Add(SessionTTL + time.Second)
	_, err = env.customers.ResolveSession(ctx, session.AccessToken)
	assert.ErrorIs(t, err, ErrSessionExpired)

	_, err = env.customers.Logout(ctx, session.AccessToken)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestResolveUnknownToken(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.customers.ResolveSession(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	_, err = env.customers.ResolveSession(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestResolveRejectsForeignSignature(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	customer := env.signup(t, "9876543210", "asha@example.com")

	forged, err := utils.NewTokenIssuer("other-secret", "test").Issue(customer.UUID, time.Now(), time.Now().Add(time.Hour))
	require.NoError(t, err)
	// Even a stored row does not help a token signed with another key.
	require.NoError(t, env.repos.Sessions.Create(ctx, &models.CustomerAuth{
		UUID:        "forged",
		CustomerID:  customer.ID,
		AccessToken: forged,
		LoginAt:     time.Now(),
		ExpiresAt:   time.Now().Add(time.Hour),
	}))

	_, err = env.customers.ResolveSession(ctx, forged)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestUpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	customer := env.signup(t, "9876543210", "asha@example.com")

	_, err := env.customers.UpdateProfile(ctx, customer, "  ", "Rao")
	assert.ErrorIs(t, err, ErrEmptyFirstName)

	updated, err := env.customers.UpdateProfile(ctx, customer, "Ashwini", "")
	require.NoError(t, err)
	assert.Equal(t, "Ashwini", updated.FirstName)
	assert.Empty(t, updated.LastName)

	stored, err := env.repos.Customers.FindByUUID(ctx, customer.UUID)
	require.NoError(t, err)
	assert.Equal(t, "Ashwini", stored.FirstName)
	assert.Equal(t, "9876543210", stored.ContactNumber)
	assert.Equal(t, "asha@example.com", stored.Email)
	assert.Equal(t, customer.Password, stored.Password)
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	customer := env.signup(t, "9876543210", "asha@example.com")

	_, err := env.customers.ChangePassword(ctx, customer, "", "NewPass1!")
	assert.ErrorIs(t, err, ErrEmptyPasswordField)

	_, err = env.customers.ChangePassword(ctx, customer, testPassword, "weakpass")
	assert.ErrorIs(t, err, ErrWeakNewPassword)

	_, err = env.customers.ChangePassword(ctx, customer, "Wrong123!", "NewPass1!")
	assert.ErrorIs(t, err, ErrWrongOldPassword)

	stored, err := env.repos.Customers.FindByUUID(ctx, customer.UUID)
	require.NoError(t, err)
	assert.Equal(t, customer.Password, stored.Password, "hash untouched after a wrong old password")

	updated, err := env.customers.ChangePassword(ctx, customer, testPassword, "NewPass1!")
	require.NoError(t, err)
	assert.NotEqual(t, customer.Salt, updated.Salt)

	_, err = env.customers.Authenticate(ctx, "9876543210", testPassword)
	assert.ErrorIs(t, err, ErrBadCredentials)
	_, err = env.customers.Authenticate(ctx, "9876543210", "NewPass1!")
	assert.NoError(t, err)
}
