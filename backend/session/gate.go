package session

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/dsgnbruno/member-area-v2/backend/models"
	"github.com/dsgnbruno/member-area-v2/backend/nocodb"
)

var (
	// ErrInvalidInput means the credentials were rejected before any
	// network call was made.
	ErrInvalidInput = errors.New("session: missing or malformed credentials")
	// ErrInvalidCredentials means no stored user matched.
	ErrInvalidCredentials = errors.New("session: invalid email or password")
	// ErrAccessRevoked means the credentials matched but the account
	// has a refund on file.
	ErrAccessRevoked = errors.New("session: account access revoked")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Gate authenticates against the users table and owns the cached
// session record. All authorization checks read the cache; the remote
// service is only consulted during Login.
type Gate struct {
	store *Store
	users *nocodb.Table

	// Generated NocoDB field ids, tried before the human-readable
	// aliases when reading user rows.
	emailField    string
	passwordField string
	userTypeField string
}

// NewGate wires a gate over the session store and the users table.
// The field ids may be empty; lookups then rely on the aliases alone.
func NewGate(store *Store, users *nocodb.Table, emailField, passwordField, userTypeField string) *Gate {
	return &Gate{
		store:         store,
		users:         users,
		emailField:    emailField,
		passwordField: passwordField,
		userTypeField: userTypeField,
	}
}

// Login authenticates the credentials against the users table. On
// success the normalized record is cached and the session flag set.
// Transport failures pass through as nocodb errors so callers can
// report timeouts distinctly from unreachability.
func (g *Gate) Login(ctx context.Context, email, password string) (models.User, error) {
	if email == "" || password == "" {
		return models.User{}, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}
	if !emailPattern.MatchString(email) {
		return models.User{}, fmt.Errorf("%w: %q is not a valid email", ErrInvalidInput, email)
	}

	records, err := g.users.List(ctx)
	if err != nil {
		return models.User{}, err
	}
	if len(records) == 0 {
		return models.User{}, fmt.Errorf("%w: users table is empty", nocodb.ErrUnexpectedShape)
	}

	record, found := g.findByEmail(records, email)
	if !found {
		return models.User{}, ErrInvalidCredentials
	}

	stored, present := record.Field(g.passwordField, "password", "Password")
	if !present {
		return models.User{}, fmt.Errorf("%w: password", nocodb.ErrFieldMissing)
	}
	storedPassword, _ := stored.(string)
	if !passwordMatches(storedPassword, password) {
		return models.User{}, ErrInvalidCredentials
	}

	// Refund outranks everything: matching credentials on a refunded
	// account still deny entry.
	if record.BoolField("refund", "Refund") {
		return models.User{}, ErrAccessRevoked
	}

	user := g.normalize(record, email)
	g.store.SetUser(user)
	return user, nil
}

// Logout clears the cached session. Safe to call when anonymous.
func (g *Gate) Logout() {
	g.store.Clear()
}

// IsAdmin reports admin privilege from the cached record. Anonymous
// sessions and unparseable records are simply not admins.
func (g *Gate) IsAdmin() bool {
	user := g.store.CurrentUser()
	return user != nil && user.IsAdmin()
}

// HasLifetimeAccess reports the cached lifetime entitlement.
func (g *Gate) HasLifetimeAccess() bool {
	user := g.store.CurrentUser()
	return user != nil && user.Lifetime
}

// CurrentUser returns the cached record, nil when anonymous.
func (g *Gate) CurrentUser() *models.User {
	return g.store.CurrentUser()
}

func (g *Gate) findByEmail(records []nocodb.Record, email string) (nocodb.Record, bool) {
	for _, r := range records {
		candidate, ok := r.StringField(g.emailField, "email", "Email")
		if ok && candidate != "" && strings.EqualFold(candidate, email) {
			return r, true
		}
	}
	return nil, false
}

func (g *Gate) normalize(r nocodb.Record, email string) models.User {
	userType, _ := r.StringField(g.userTypeField, "UserType", "userType", "user_type", "User_Type", "type", "Type")
	if userType == "" {
		userType = "user"
	}
	name, _ := r.StringField("name", "Name")
	if stored, ok := r.StringField(g.emailField, "email", "Email"); ok && stored != "" {
		email = stored
	}

	// Keep the raw row for admin tooling, minus anything secret.
	raw := make(map[string]interface{}, len(r))
	for k, v := range r {
		raw[k] = v
	}
	for _, k := range []string{g.passwordField, "password", "Password"} {
		delete(raw, k)
	}

	return models.User{
		ID:       r.ID(),
		Email:    email,
		Name:     name,
		UserType: userType,
		Lifetime: r.BoolField("lifetime", "Lifetime"),
		Refund:   r.BoolField("refund", "Refund"),
		Raw:      raw,
	}
}

// passwordMatches accepts both bcrypt hashes and the legacy plaintext
// rows still present in the users table.
func passwordMatches(stored, supplied string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	return stored == supplied
}
