package model

import "time"

// Audit carries the bookkeeping columns shared by dish and set meal rows.
// CreateUser / UpdateUser hold the id of the employee that issued the request.
type Audit struct {
	CreateTime time.Time `gorm:"autoCreateTime"`
	UpdateTime time.Time `gorm:"autoUpdateTime"`
	CreateUser int64
	UpdateUser int64
}
