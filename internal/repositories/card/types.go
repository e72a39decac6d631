package card

import "github.com/princengoc/unspoken-sub000/internal/models"

type SeedPoolInput struct {
	RoomID string
	Cards  []*models.Card
}

type DealToPlayerInput struct {
	RoomID   string
	PlayerID string
	Round    int
	Count    int
}

type DealToPlayerOutput struct {
	CardIDs []string
}

type SelectCardInput struct {
	RoomID          string
	PlayerID        string
	CardID          string
	RejectedCardIDs []string
}

type DiscardCardsInput struct {
	RoomID  string
	CardIDs []string
}

type GetCardInput struct {
	CardID string
}

type GetCardsInput struct {
	CardIDs []string
}

type GetZonesInput struct {
	RoomID string
}

type GetDealtToInput struct {
	RoomID string
}

type ClearRoomInput struct {
	RoomID string
}
