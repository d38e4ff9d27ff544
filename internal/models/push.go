package models

// PushMessage is one notification addressed to a single device token,
// in the shape the push gateway accepts in its batched POST.
type PushMessage struct {
	To    string            `json:"to"`    // Device push token
	Title string            `json:"title"` // Notification title
	Body  string            `json:"body"`  // Notification body
	Sound string            `json:"sound,omitempty"`
	Data  map[string]string `json:"data,omitempty"`
}
