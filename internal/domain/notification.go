package domain

import "time"

type NotificationID string

type Notification struct {
	ID        NotificationID
	UserID    UserID
	Text      string
	Read      bool
	CreatedAt time.Time
}
