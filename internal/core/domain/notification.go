package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification types produced by the marketplace flows.
const (
	NotificationInquiryReceived = "inquiry_received"
	NotificationInquiryReplied  = "inquiry_replied"
	NotificationStatusChanged   = "property_status_changed"
)

// Notification is an in-app message addressed to one user.
type Notification struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Type              string
	Message           string
	RelatedPropertyID *uuid.UUID
	IsRead            bool
	CreatedAt         time.Time
}

// PaginatedNotifications is a page of notifications plus totals. UnreadCount
// covers the whole inbox, not the page.
type PaginatedNotifications struct {
	Notifications []Notification
	TotalCount    int
	UnreadCount   int
}
