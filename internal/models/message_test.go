package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestDirectRoomIDIsSymmetric(t *testing.T) {
	req := require.New(t)
	a, b := uuid.New(), uuid.New()

	req.Equal(DirectRoomID(a, b), DirectRoomID(b, a))
	req.Contains(DirectRoomID(a, b), "_")
}

func TestDirectRoomIDIsSortedPair(t *testing.T) {
	req := require.New(t)
	a := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	b := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	want := a.String() + "_" + b.String()
	req.Equal(want, DirectRoomID(a, b))
	req.Equal(want, DirectRoomID(b, a))
}

func TestIsRoomParticipant(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	roomID := DirectRoomID(a, b)

	tests := []struct {
		name   string
		roomID string
		userID uuid.UUID
		want   bool
	}{
		{"first participant", roomID, a, true},
		{"second participant", roomID, b, true},
		{"outsider", roomID, c, false},
		{"malformed room id", "not-a-room", a, false},
		{"too many segments", roomID + "_extra", a, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsRoomParticipant(tt.roomID, tt.userID))
		})
	}
}
