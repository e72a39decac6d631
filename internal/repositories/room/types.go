package room

import "github.com/princengoc/unspoken-sub000/internal/models"

type CreateRoomInput struct {
	Room *models.Room
}

type GetRoomInput struct {
	RoomID string
}

type SaveRoomInput struct {
	Room *models.Room
}

type DeleteRoomInput struct {
	RoomID string
}
