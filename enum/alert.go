package enum

type AlertType string

const (
	AlertTypeSOS        AlertType = "sos"
	AlertTypeIncident   AlertType = "incident"
	AlertTypeSuspicious AlertType = "suspicious"
)

type AlertStatus string

const (
	AlertStatusActive   AlertStatus = "active"
	AlertStatusResolved AlertStatus = "resolved"
)
