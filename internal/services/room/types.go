package room

import "github.com/princengoc/unspoken-sub000/internal/models"

// CreateRoomInput contains parameters for creating a room
type CreateRoomInput struct {
	OwnerID       string
	OwnerUsername string
	TotalRounds   int
	CardsPerHand  int
	DepthFilter   models.CardDepth

	// PoolCards is the card catalog for the first round; cards deeper than
	// the depth filter are left out of the pool
	PoolCards []*models.Card
}

// CreateRoomOutput contains the created room
type CreateRoomOutput struct {
	Room *models.Room
}

// JoinRoomInput contains parameters for joining a room
type JoinRoomInput struct {
	RoomID   string
	PlayerID string
	Username string
}

// JoinRoomOutput contains the joined player
type JoinRoomOutput struct {
	Player *models.Player
}

// LeaveRoomInput contains parameters for leaving a room
type LeaveRoomInput struct {
	RoomID   string
	PlayerID string
}

// LeaveRoomOutput contains the result of leaving a room
type LeaveRoomOutput struct {
	Success bool
}

// SetOnlineInput contains parameters for updating presence
type SetOnlineInput struct {
	RoomID   string
	PlayerID string
	IsOnline bool
}

// SetOnlineOutput contains the updated player
type SetOnlineOutput struct {
	Player *models.Player
}

// StartSpeakingInput contains parameters for leaving setup
type StartSpeakingInput struct {
	RoomID      string
	RequestedBy string
}

// StartSpeakingOutput contains the room and the first speaker
type StartSpeakingOutput struct {
	Room      *models.Room
	SpeakerID string
}

// BeginSharingInput contains parameters for starting a share
type BeginSharingInput struct {
	RoomID   string
	PlayerID string
}

// BeginSharingOutput contains the updated room
type BeginSharingOutput struct {
	Room *models.Room
}

// EndSharingInput contains parameters for finishing a share
type EndSharingInput struct {
	RoomID   string
	PlayerID string
}

// EndSharingOutput contains the updated room; RoundComplete is set when no
// speaker remained and the room moved to endgame
type EndSharingOutput struct {
	Room          *models.Room
	NextSpeakerID string
	RoundComplete bool
}

// StartEncoreInput contains parameters for replaying a round
type StartEncoreInput struct {
	RoomID      string
	RequestedBy string
	DepthFilter models.CardDepth

	// PoolCards is the card catalog for the encore round
	PoolCards []*models.Card
}

// StartEncoreOutput contains the updated room
type StartEncoreOutput struct {
	Room *models.Room
}

// GetRoomStateInput contains parameters for fetching the full snapshot
type GetRoomStateInput struct {
	RoomID string
}

// GetRoomStateOutput contains the full authoritative snapshot
type GetRoomStateOutput struct {
	Snapshot *models.Snapshot
}

// CloseRoomInput contains parameters for tearing a room down
type CloseRoomInput struct {
	RoomID      string
	RequestedBy string
}

// CloseRoomOutput contains the result of tearing a room down
type CloseRoomOutput struct {
	Success bool
}
