package entity

import "time"

type Event struct {
	BaseEntity
	Title       string    `json:"title" gorm:"type:varchar(255)"`
	Description string    `json:"description" gorm:"type:TEXT"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location" gorm:"type:varchar(255)"`
	Category    string    `json:"category" gorm:"type:varchar(50);index"`

	OrganizerID   string `json:"organizer_id" gorm:"type:varchar(255)"`
	OrganizerName string `json:"organizer_name" gorm:"type:varchar(255)"`

	// MaxAttendees nil means unlimited. CurrentAttendees mirrors the count of
	// EventAttendee rows; both writes happen in one transaction.
	MaxAttendees     *int `json:"max_attendees"`
	CurrentAttendees int  `json:"current_attendees" gorm:"default:0"`

	ImageURL string `json:"image_url" gorm:"type:TEXT"`
	IsActive bool   `json:"is_active" gorm:"default:true"`

	Attendees []EventAttendee `json:"-" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE;"`
}

type EventAttendee struct {
	BaseEntity
	EventID   string `json:"event_id" gorm:"type:varchar(255);not null;uniqueIndex:idx_event_user"`
	UserID    string `json:"user_id" gorm:"type:varchar(255);not null;uniqueIndex:idx_event_user"`
	UserName  string `json:"user_name" gorm:"type:varchar(255)"`
	UserEmail string `json:"user_email" gorm:"type:varchar(100)"`
}
