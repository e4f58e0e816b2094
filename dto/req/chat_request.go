package req

type CreateRoomRequest struct {
	Name   string `json:"name" validate:"required"`
	Avatar string `json:"avatar"`
}

type PostMessageRequest struct {
	Message string `json:"message" validate:"required"`
}
