package models

// Option is one selectable master-data row for a dropdown/search widget.
// Code carries the secondary display value (vehicle plate, phone, etc.).
type Option struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}
