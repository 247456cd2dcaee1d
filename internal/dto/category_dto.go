package dto

type CategoryResponse struct {
	ID     int64  `json:"id"`
	Type   int    `json:"type"`
	Name   string `json:"name"`
	Sort   int    `json:"sort"`
	Status int    `json:"status"`
}
