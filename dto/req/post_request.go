package req

type CreatePostRequest struct {
	Content  string `json:"content" validate:"required"`
	Category string `json:"category"`
}
