package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dsgnbruno/member-area-v2/backend/models"

	"github.com/stretchr/testify/assert"
)

func TestStoreStartsAnonymous(t *testing.T) {
	store := Open(filepath.Join(t.TempDir(), "session.json"))

	assert.False(t, store.LoggedIn())
	assert.Nil(t, store.CurrentUser())
	assert.Equal(t, ThemeLight, store.Theme())
}

func TestStorePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	first := Open(path)
	first.SetUser(models.User{Email: "member@example.com", UserType: "admin", Lifetime: true})
	first.SetTheme(ThemeDark)

	second := Open(path)
	assert.True(t, second.LoggedIn())
	user := second.CurrentUser()
	assert.NotNil(t, user)
	assert.Equal(t, "member@example.com", user.Email)
	assert.True(t, user.IsAdmin())
	assert.Equal(t, ThemeDark, second.Theme())
}

func TestStoreCorruptFileDegradesToAnonymous(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := Open(path)
	assert.False(t, store.LoggedIn())
	assert.Nil(t, store.CurrentUser())
}

func TestStoreFlagWithoutRecordIsAnonymous(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	assert.NoError(t, os.WriteFile(path, []byte(`{"userLoggedIn": true}`), 0o600))

	store := Open(path)
	assert.False(t, store.LoggedIn())
}

func TestStoreClearIsIdempotent(t *testing.T) {
	store := Open(filepath.Join(t.TempDir(), "session.json"))
	store.SetUser(models.User{Email: "member@example.com"})

	store.Clear()
	store.Clear()

	assert.False(t, store.LoggedIn())
}

func TestStoreNotifiesSubscribers(t *testing.T) {
	store := Open(filepath.Join(t.TempDir(), "session.json"))

	var events int
	store.Subscribe(func() { events++ })

	store.SetUser(models.User{Email: "member@example.com"})
	store.Clear()
	store.SetTheme(ThemeDark)

	assert.Equal(t, 3, events)
}

func TestStoreRejectsUnknownTheme(t *testing.T) {
	store := Open(filepath.Join(t.TempDir(), "session.json"))

	store.SetTheme("solarized")
	assert.Equal(t, ThemeLight, store.Theme())
}
