package pricing

import (
	"Gomez-Kitchen/domain"

	"github.com/google/uuid"
)

// Membership is the owner and ordered followers of a shared record. The
// owner, when set, is always a follower.
type Membership struct {
	Owner     *uuid.UUID
	Followers []uuid.UUID
}

func (m Membership) IsFollower(user uuid.UUID) bool {
	return m.indexOf(user) != -1
}

func (m Membership) IsOwner(user uuid.UUID) bool {
	return m.Owner != nil && *m.Owner == user
}

func (m Membership) indexOf(user uuid.UUID) int {
	for i, f := range m.Followers {
		if f == user {
			return i
		}
	}
	return -1
}

// Follow appends user to the followers and makes them owner if the record
// has none.
func (m Membership) Follow(user uuid.UUID) (Membership, error) {
	if m.IsFollower(user) {
		return m, domain.ErrAlreadyFollowing
	}
	next := Membership{
		Owner:     m.Owner,
		Followers: append(append(make([]uuid.UUID, 0, len(m.Followers)+1), m.Followers...), user),
	}
	if next.Owner == nil {
		next.Owner = &user
	}
	return next, nil
}

// Claim makes user the owner of an ownerless record, following it if needed.
func (m Membership) Claim(user uuid.UUID) Membership {
	if m.Owner != nil {
		return m
	}
	if m.IsFollower(user) {
		return Membership{Owner: &user, Followers: m.Followers}
	}
	next, _ := m.Follow(user)
	return next
}

// Unfollow removes user. When the owner leaves, the follower at index 1
// takes over, or the record is left without an owner.
func (m Membership) Unfollow(user uuid.UUID) (Membership, error) {
	idx := m.indexOf(user)
	if idx == -1 {
		return m, domain.ErrNotFollowing
	}

	next := Membership{Owner: m.Owner}
	if m.IsOwner(user) {
		next.Owner = nil
		if len(m.Followers) > 1 {
			successor := m.Followers[1]
			if successor == user {
				successor = m.Followers[0]
			}
			next.Owner = &successor
		}
	}
	next.Followers = make([]uuid.UUID, 0, len(m.Followers)-1)
	next.Followers = append(next.Followers, m.Followers[:idx]...)
	next.Followers = append(next.Followers, m.Followers[idx+1:]...)
	return next, nil
}
