package req

type CreateAlertRequest struct {
	Type        string `json:"type" validate:"required,oneof=sos incident suspicious"`
	Description string `json:"description" validate:"required"`
	Location    string `json:"location"`
}
