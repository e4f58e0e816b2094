package entity

type User struct {
	BaseEntity
	Name         string `json:"name" gorm:"type:varchar(255)"`
	Email        string `json:"email" gorm:"unique;type:varchar(100)"`
	PasswordHash string `json:"-" gorm:"type:varchar(255)"`

	Messages  []ChatMessage   `json:"-" gorm:"foreignKey:UserID"`
	Attending []EventAttendee `json:"-" gorm:"foreignKey:UserID"`
}
