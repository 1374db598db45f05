package models

// Episode is the normalized display record for one episode of a show
type Episode struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Season int    `json:"season"`
	Number int    `json:"number"`
}
