package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeeper/internal/kvstore"
	"notekeeper/internal/logging"
	"notekeeper/internal/models"
)

func newStore(t *testing.T) (*Store, *kvstore.MemoryStore) {
	t.Helper()
	kv := kvstore.NewMemoryStore()
	return NewStore(kv, logging.NewDiscard()), kv
}

// failingStore errors on every operation, simulating storage I/O failures.
type failingStore struct{}

var errIO = errors.New("disk on fire")

func (failingStore) Get(context.Context, string) ([]byte, error) { return nil, errIO }
func (failingStore) Set(context.Context, string, []byte) error   { return errIO }
func (failingStore) Delete(context.Context, string) error        { return errIO }

func TestRegister_UsernameUniqueness(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	assert.True(t, s.Register(ctx, "alice", "pw1"))
	assert.False(t, s.Register(ctx, "alice", "pw2"))
	assert.False(t, s.Register(ctx, "alice", "pw1"))

	// case-sensitive: a differently cased name is a different account
	assert.True(t, s.Register(ctx, "Alice", "pw1"))
}

func TestVerify_CredentialRoundTrip(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	require.True(t, s.Register(ctx, "bob", "secret"))

	assert.True(t, s.Verify(ctx, "bob", "secret"))
	assert.False(t, s.Verify(ctx, "bob", "wrong"))
	assert.False(t, s.Verify(ctx, "nobody", "x"))
}

func TestRegister_PersistedLayout(t *testing.T) {
	s, kv := newStore(t)
	ctx := context.Background()

	fixed := time.UnixMilli(1700000000000)
	s.now = func() time.Time { return fixed }

	require.True(t, s.Register(ctx, "carol", "pw"))

	// whole registry is one JSON array under the "users" key
	raw, err := kv.Get(ctx, "users")
	require.NoError(t, err)
	require.NotNil(t, raw)

	var users []models.User
	require.NoError(t, json.Unmarshal(raw, &users))
	require.Len(t, users, 1)
	assert.Equal(t, "carol", users[0].Username)
	assert.NotEqual(t, "pw", users[0].Password)
	assert.Equal(t, fixed.UnixMilli(), users[0].CreatedAt)
}

func TestSession_SetGetClear(t *testing.T) {
	s, kv := newStore(t)
	ctx := context.Background()

	assert.Equal(t, "", s.GetSession(ctx))

	require.NoError(t, s.SetSession(ctx, "alice"))
	assert.Equal(t, "alice", s.GetSession(ctx))

	// persisted as a plain string under current_user
	raw, err := kv.Get(ctx, "current_user")
	require.NoError(t, err)
	assert.Equal(t, []byte("alice"), raw)

	require.NoError(t, s.SetSession(ctx, ""))
	assert.Equal(t, "", s.GetSession(ctx))

	raw, err = kv.Get(ctx, "current_user")
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestStore_IOFailuresFlattenToFalse(t *testing.T) {
	s := NewStore(failingStore{}, logging.NewDiscard())
	ctx := context.Background()

	assert.False(t, s.Register(ctx, "alice", "pw"))
	assert.False(t, s.Verify(ctx, "alice", "pw"))
	assert.Equal(t, "", s.GetSession(ctx))
	assert.Error(t, s.SetSession(ctx, "alice"))
	assert.Error(t, s.SetSession(ctx, ""))
}

func TestRegister_CorruptRegistryFails(t *testing.T) {
	s, kv := newStore(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "users", []byte("{not json")))

	assert.False(t, s.Register(ctx, "alice", "pw"))
	assert.False(t, s.Verify(ctx, "alice", "pw"))
}
