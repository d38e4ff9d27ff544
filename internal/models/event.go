package models

// AlertEvent records one alert-lifecycle transition, published best-effort
// to Kafka. Events are the only surviving trace of a resolved alert, since
// resolution deletes the alert row itself.
type AlertEvent struct {
	EventID   string `json:"event_id"`  // Unique identifier of the event
	Timestamp int64  `json:"timestamp"` // Unix timestamp (seconds)
	Operation string `json:"operation"` // alert_created, alert_recovered or pet_found
	AlertID   string `json:"alert_id"`  // Alert the event refers to, empty for composite-key resolutions
	UserID    string `json:"user_id"`   // Actor (reporter or finder)
	PetName   string `json:"pet_name"`
	PetType   string `json:"pet_type"`
	Colonia   string `json:"colonia"`
}
