package domain

import (
	"time"

	"github.com/google/uuid"
)

// Inquiry statuses. Transitions are permissive: the recipient may set any
// of them at any time.
const (
	InquiryPending = "pending"
	InquiryReplied = "replied"
	InquiryClosed  = "closed"
)

var InquiryStatuses = []string{InquiryPending, InquiryReplied, InquiryClosed}

// Inquiry is a message from an interested user to a property owner.
type Inquiry struct {
	ID          uuid.UUID
	PropertyID  uuid.UUID
	SenderID    uuid.UUID
	RecipientID uuid.UUID
	Message     string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// InquiryWithProperty decorates an inquiry with the listing it refers to,
// for list views.
type InquiryWithProperty struct {
	Inquiry
	PropertyTitle string
	SenderName    string
	RecipientName string
}

// PaginatedInquiries is a page of inquiries plus the window-independent
// total.
type PaginatedInquiries struct {
	Inquiries  []InquiryWithProperty
	TotalCount int
}

// IsValidInquiryStatus reports whether s belongs to the closed set.
func IsValidInquiryStatus(s string) bool {
	for _, v := range InquiryStatuses {
		if v == s {
			return true
		}
	}
	return false
}
