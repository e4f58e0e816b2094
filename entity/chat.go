package entity

type ChatRoom struct {
	BaseEntity
	Name   string `json:"name" gorm:"type:varchar(100)"`
	Avatar string `json:"avatar" gorm:"type:varchar(16)"`

	Messages []ChatMessage `json:"-" gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE;"`
}

// ChatMessage snapshots the sender's name and avatar at write time. A later
// profile rename does not rewrite history.
type ChatMessage struct {
	BaseEntity
	RoomID     string `json:"room_id" gorm:"type:varchar(255);index;not null"`
	UserID     string `json:"user_id" gorm:"type:varchar(255);not null"`
	UserName   string `json:"user_name" gorm:"type:varchar(255)"`
	UserAvatar string `json:"user_avatar" gorm:"type:varchar(16)"`
	Message    string `json:"message" gorm:"type:TEXT"`

	Room ChatRoom `json:"-" gorm:"foreignKey:RoomID;references:ID"`
}
