package room

import "context"

// Service defines the interface for room lifecycle and phase operations
type Service interface {
	// CreateRoom creates a new room with its owner as the first player
	CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error)

	// JoinRoom adds a player to a room during setup
	JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error)

	// LeaveRoom removes a player from a room
	LeaveRoom(ctx context.Context, input *LeaveRoomInput) (*LeaveRoomOutput, error)

	// SetOnline updates a player's presence flag
	SetOnline(ctx context.Context, input *SetOnlineInput) (*SetOnlineOutput, error)

	// StartSpeaking moves the room from setup to speaking once every player
	// has selected a card, and picks the first speaker
	StartSpeaking(ctx context.Context, input *StartSpeakingInput) (*StartSpeakingOutput, error)

	// BeginSharing marks the active speaker as sharing their card
	BeginSharing(ctx context.Context, input *BeginSharingInput) (*BeginSharingOutput, error)

	// EndSharing finishes the active speaker's turn and rotates to the next
	// speaker, or ends the round when everyone has spoken
	EndSharing(ctx context.Context, input *EndSharingInput) (*EndSharingOutput, error)

	// StartEncore replays a new round after endgame with fresh settings
	StartEncore(ctx context.Context, input *StartEncoreInput) (*StartEncoreOutput, error)

	// GetRoomState assembles the full authoritative snapshot of a room
	GetRoomState(ctx context.Context, input *GetRoomStateInput) (*GetRoomStateOutput, error)

	// CloseRoom tears a room down and forgets its state
	CloseRoom(ctx context.Context, input *CloseRoomInput) (*CloseRoomOutput, error)
}
