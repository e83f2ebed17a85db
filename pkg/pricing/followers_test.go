package pricing

import (
	"Gomez-Kitchen/domain"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMembership_Follow(t *testing.T) {
	alice, bob := uuid.New(), uuid.New()

	m, err := Membership{}.Follow(alice)
	require.NoError(t, err)
	require.NotNil(t, m.Owner)
	assert.Equal(t, alice, *m.Owner)

	m, err = m.Follow(bob)
	require.NoError(t, err)
	assert.Equal(t, alice, *m.Owner)
	assert.Equal(t, []uuid.UUID{alice, bob}, m.Followers)

	_, err = m.Follow(bob)
	assert.ErrorIs(t, err, domain.ErrAlreadyFollowing)
}

func TestMembership_UnfollowOwnerPromotesNext(t *testing.T) {
	alice, bob := uuid.New(), uuid.New()
	m := Membership{Owner: &alice, Followers: []uuid.UUID{alice, bob}}

	next, err := m.Unfollow(alice)
	require.NoError(t, err)
	require.NotNil(t, next.Owner)
	assert.Equal(t, bob, *next.Owner)
	assert.Equal(t, []uuid.UUID{bob}, next.Followers)
	assert.Len(t, m.Followers, 2)
}

func TestMembership_UnfollowLastOwner(t *testing.T) {
	alice := uuid.New()
	m := Membership{Owner: &alice, Followers: []uuid.UUID{alice}}

	next, err := m.Unfollow(alice)
	require.NoError(t, err)
	assert.Nil(t, next.Owner)
	assert.Empty(t, next.Followers)
}

func TestMembership_UnfollowFollower(t *testing.T) {
	alice, bob, carol := uuid.New(), uuid.New(), uuid.New()
	m := Membership{Owner: &alice, Followers: []uuid.UUID{alice, bob, carol}}

	next, err := m.Unfollow(bob)
	require.NoError(t, err)
	assert.Equal(t, alice, *next.Owner)
	assert.Equal(t, []uuid.UUID{alice, carol}, next.Followers)

	_, err = next.Unfollow(bob)
	assert.ErrorIs(t, err, domain.ErrNotFollowing)
}

func TestMembership_Claim(t *testing.T) {
	alice, bob := uuid.New(), uuid.New()

	claimed := Membership{}.Claim(bob)
	require.NotNil(t, claimed.Owner)
	assert.Equal(t, bob, *claimed.Owner)
	assert.Equal(t, []uuid.UUID{bob}, claimed.Followers)

	owned := Membership{Owner: &alice, Followers: []uuid.UUID{alice}}
	assert.Equal(t, owned, owned.Claim(bob))
}
