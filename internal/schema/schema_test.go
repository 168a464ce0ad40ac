// ABOUTME: Tests for outbound schema id assignment and the inbound schema cache.
// ABOUTME: Covers sequential ids, single announcements, idempotent puts, and redefinition.

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userSchema = `{"type":"record","name":"User","fields":[{"name":"name","type":"string"}]}`

const orderSchema = `{"type":"record","name":"Order","fields":[{"name":"total","type":"double"}]}`

func TestRegistryAssignsSequentialIds(t *testing.T) {
	r := NewRegistry()

	id, announce := r.GetOrAssign(userSchema)
	assert.Equal(t, int32(1), id)
	assert.True(t, announce, "first sight of a schema must announce")

	id, announce = r.GetOrAssign(orderSchema)
	assert.Equal(t, int32(2), id)
	assert.True(t, announce)
}

func TestRegistryAnnouncesOncePerSchema(t *testing.T) {
	r := NewRegistry()

	first, announce := r.GetOrAssign(userSchema)
	require.True(t, announce)

	second, announce := r.GetOrAssign(userSchema)
	assert.Equal(t, first, second, "same schema must reuse its id")
	assert.False(t, announce, "second encoding must not re-announce")
}

func TestCachePutGet(t *testing.T) {
	c := NewCache()

	require.NoError(t, c.Put(5, []byte(userSchema)))

	s, err := c.Get(5)
	require.NoError(t, err)
	assert.Contains(t, s.String(), "User")
}

func TestCacheGetUnknownId(t *testing.T) {
	c := NewCache()

	_, err := c.Get(5)
	assert.ErrorIs(t, err, ErrUnknownSchema)
}

func TestCachePutIsIdempotent(t *testing.T) {
	c := NewCache()

	require.NoError(t, c.Put(1, []byte(userSchema)))
	assert.NoError(t, c.Put(1, []byte(userSchema)), "re-announcing the same definition is harmless")
}

func TestCachePutRejectsRedefinition(t *testing.T) {
	c := NewCache()

	require.NoError(t, c.Put(1, []byte(userSchema)))
	assert.ErrorIs(t, c.Put(1, []byte(orderSchema)), ErrSchemaRedefined)
}

func TestCachePutRejectsMalformedSchema(t *testing.T) {
	c := NewCache()

	assert.Error(t, c.Put(1, []byte(`{"type":"nope"}`)))
}
