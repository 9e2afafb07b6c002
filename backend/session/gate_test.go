package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/dsgnbruno/member-area-v2/backend/models"
	"github.com/dsgnbruno/member-area-v2/backend/nocodb"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

const (
	emailFieldID    = "cv9q51c8djt9uw9"
	passwordFieldID = "cpcsmtdxachjpg9"
	userTypeFieldID = "cie59mvkmj051c0"
)

// usersTable fakes the NocoDB users endpoint with the given rows.
func usersTable(t *testing.T, body string) *nocodb.Table {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return nocodb.NewClient(server.URL, "base1", "users").Table("users")
}

func newGate(t *testing.T, users *nocodb.Table) (*Gate, *Store) {
	t.Helper()
	store := Open(filepath.Join(t.TempDir(), "session.json"))
	return NewGate(store, users, emailFieldID, passwordFieldID, userTypeFieldID), store
}

func TestLoginSuccess(t *testing.T) {
	gate, store := newGate(t, usersTable(t, `{"list": [
		{"Id": 3, "`+emailFieldID+`": "Member@Example.com", "`+passwordFieldID+`": "secret", "`+userTypeFieldID+`": "Admin", "lifetime": "yes", "name": "Pat"}
	]}`))

	user, err := gate.Login(context.Background(), "member@example.com", "secret")
	assert.NoError(t, err)
	assert.Equal(t, "3", user.ID)
	assert.Equal(t, "Member@Example.com", user.Email)
	assert.Equal(t, "Admin", user.UserType)
	assert.True(t, user.Lifetime)
	assert.False(t, user.Refund)

	assert.True(t, store.LoggedIn())
	assert.True(t, gate.IsAdmin())
	assert.True(t, gate.HasLifetimeAccess())

	// The cached raw row must not retain the password.
	cached := store.CurrentUser()
	assert.NotNil(t, cached)
	_, ok := cached.Raw[passwordFieldID]
	assert.False(t, ok)
}

func TestLoginAliasFields(t *testing.T) {
	gate, _ := newGate(t, usersTable(t, `[
		{"email": "member@example.com", "password": "secret", "UserType": "user"}
	]`))

	user, err := gate.Login(context.Background(), "member@example.com", "secret")
	assert.NoError(t, err)
	assert.Equal(t, "user", user.UserType)
	assert.False(t, gate.IsAdmin())
}

func TestLoginDefaultsUserType(t *testing.T) {
	gate, _ := newGate(t, usersTable(t, `[
		{"Email": "member@example.com", "Password": "secret"}
	]`))

	user, err := gate.Login(context.Background(), "member@example.com", "secret")
	assert.NoError(t, err)
	assert.Equal(t, "user", user.UserType)
}

func TestLoginBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	assert.NoError(t, err)

	gate, _ := newGate(t, usersTable(t, `[
		{"email": "member@example.com", "password": "`+string(hash)+`"}
	]`))

	_, err = gate.Login(context.Background(), "member@example.com", "password")
	assert.NoError(t, err)

	_, err = gate.Login(context.Background(), "member@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginValidatesInputBeforeNetwork(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)
	gate, _ := newGate(t, nocodb.NewClient(server.URL, "base1", "users").Table("users"))

	cases := []struct{ email, password string }{
		{"", "secret"},
		{"member@example.com", ""},
		{"not-an-email", "secret"},
		{"missing@tld", "secret"},
		{"two words@example.com", "secret"},
	}
	for _, tc := range cases {
		_, err := gate.Login(context.Background(), tc.email, tc.password)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
	assert.Zero(t, requests)
}

func TestLoginUnknownEmail(t *testing.T) {
	gate, store := newGate(t, usersTable(t, `[
		{"email": "other@example.com", "password": "secret"}
	]`))

	_, err := gate.Login(context.Background(), "member@example.com", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, store.LoggedIn())
}

func TestLoginWrongPassword(t *testing.T) {
	gate, _ := newGate(t, usersTable(t, `[
		{"email": "member@example.com", "password": "secret"}
	]`))

	_, err := gate.Login(context.Background(), "member@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRefundRevokesAccess(t *testing.T) {
	for _, row := range []string{
		`{"email": "member@example.com", "password": "secret", "refund": "yes"}`,
		`{"email": "member@example.com", "password": "secret", "Refund": true}`,
	} {
		gate, store := newGate(t, usersTable(t, `[`+row+`]`))

		_, err := gate.Login(context.Background(), "member@example.com", "secret")
		assert.ErrorIs(t, err, ErrAccessRevoked)
		assert.False(t, store.LoggedIn())
		assert.Nil(t, store.CurrentUser())
	}
}

func TestLoginPasswordFieldMissing(t *testing.T) {
	gate, _ := newGate(t, usersTable(t, `[
		{"email": "member@example.com"}
	]`))

	_, err := gate.Login(context.Background(), "member@example.com", "secret")
	assert.ErrorIs(t, err, nocodb.ErrFieldMissing)
}

func TestLoginEmptyUsersTable(t *testing.T) {
	gate, _ := newGate(t, usersTable(t, `{"list": []}`))

	_, err := gate.Login(context.Background(), "member@example.com", "secret")
	assert.ErrorIs(t, err, nocodb.ErrUnexpectedShape)
}

func TestLoginTimeoutLeavesSessionAnonymous(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(server.Close)

	client := nocodb.NewClient(server.URL, "base1", "users")
	client.HTTPClient.Timeout = 20 * time.Millisecond
	gate, store := newGate(t, client.Table("users"))

	_, err := gate.Login(context.Background(), "member@example.com", "secret")
	assert.ErrorIs(t, err, nocodb.ErrTimeout)
	assert.False(t, store.LoggedIn())
}

func TestLogoutIsIdempotent(t *testing.T) {
	gate, store := newGate(t, usersTable(t, `[
		{"email": "member@example.com", "password": "secret"}
	]`))

	_, err := gate.Login(context.Background(), "member@example.com", "secret")
	assert.NoError(t, err)

	gate.Logout()
	gate.Logout()
	assert.False(t, store.LoggedIn())
	assert.False(t, gate.IsAdmin())
}

func TestIsAdminWithoutSession(t *testing.T) {
	gate, _ := newGate(t, usersTable(t, `[]`))
	assert.False(t, gate.IsAdmin())
	assert.False(t, gate.HasLifetimeAccess())
}

func TestIsAdminCaseInsensitive(t *testing.T) {
	store := Open(filepath.Join(t.TempDir(), "session.json"))
	gate := NewGate(store, nil, "", "", "")

	for userType, want := range map[string]bool{
		"admin":   true,
		"ADMIN":   true,
		"Admin":   true,
		"user":    false,
		"manager": false,
		"":        false,
	} {
		store.SetUser(models.User{Email: "member@example.com", UserType: userType})
		assert.Equal(t, want, gate.IsAdmin(), "userType %q", userType)
	}
}

func TestHasLifetimeAccessVariants(t *testing.T) {
	tests := []struct {
		name string
		row  string
		want bool
	}{
		{name: "lowercase yes", row: `{"email": "m@e.com", "password": "s", "lifetime": "yes"}`, want: true},
		{name: "capitalized key yes", row: `{"email": "m@e.com", "password": "s", "Lifetime": "yes"}`, want: true},
		{name: "lowercase true", row: `{"email": "m@e.com", "password": "s", "lifetime": true}`, want: true},
		{name: "capitalized key true", row: `{"email": "m@e.com", "password": "s", "Lifetime": true}`, want: true},
		{name: "no literal", row: `{"email": "m@e.com", "password": "s", "lifetime": "no"}`, want: false},
		{name: "absent", row: `{"email": "m@e.com", "password": "s"}`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate, _ := newGate(t, usersTable(t, `[`+tt.row+`]`))

			_, err := gate.Login(context.Background(), "m@e.com", "s")
			assert.NoError(t, err)
			assert.Equal(t, tt.want, gate.HasLifetimeAccess())
		})
	}
}
