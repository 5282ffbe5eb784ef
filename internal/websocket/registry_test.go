package websocket

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRegistryJoinIsIdempotent(t *testing.T) {
	req := require.New(t)
	r := NewRoomRegistry()
	sid := uuid.New()

	r.Join(sid, "u1_u2")
	r.Join(sid, "u1_u2")
	r.Join(sid, "u1_u2")

	req.Len(r.MembersOf("u1_u2"), 1)
	req.Equal([]uuid.UUID{sid}, r.MembersOf("u1_u2"))
}

func TestRegistryLeaveAbsentIsNoop(t *testing.T) {
	req := require.New(t)
	r := NewRoomRegistry()
	sid := uuid.New()

	r.Leave(sid, "u1_u2")
	req.Empty(r.MembersOf("u1_u2"))

	r.Join(sid, "u1_u2")
	r.Leave(sid, "u1_u2")
	r.Leave(sid, "u1_u2")
	req.Empty(r.MembersOf("u1_u2"))
	req.Empty(r.Rooms(sid))
}

func TestRegistryMembersOfUnknownRoomIsEmpty(t *testing.T) {
	r := NewRoomRegistry()
	require.Empty(t, r.MembersOf("never-populated"))
}

func TestRegistryDropSessionRemovesAllMemberships(t *testing.T) {
	req := require.New(t)
	r := NewRoomRegistry()
	s1, s2 := uuid.New(), uuid.New()

	r.Join(s1, "room-a")
	r.Join(s1, "room-b")
	r.Join(s2, "room-a")

	r.DropSession(s1)

	req.Empty(r.Rooms(s1))
	req.Equal([]uuid.UUID{s2}, r.MembersOf("room-a"))
	req.Empty(r.MembersOf("room-b"))
}

func TestRegistrySessionMayBeInMultipleRooms(t *testing.T) {
	req := require.New(t)
	r := NewRoomRegistry()
	sid := uuid.New()

	r.Join(sid, "room-a")
	r.Join(sid, "room-b")

	req.ElementsMatch([]string{"room-a", "room-b"}, r.Rooms(sid))
}
