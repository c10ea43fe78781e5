package models

import (
	"time"
)

type Announcement struct {
	ID          int64
	Title       string
	Description string
	CreatedOn   time.Time
	UserID      int64
}
