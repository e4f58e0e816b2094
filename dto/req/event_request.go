package req

type CreateEventRequest struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	Date         string `json:"date" validate:"required"`
	Location     string `json:"location"`
	Category     string `json:"category" validate:"required"`
	MaxAttendees *int   `json:"max_attendees" validate:"omitempty,gt=0"`
	ImageURL     string `json:"image_url"`
}
