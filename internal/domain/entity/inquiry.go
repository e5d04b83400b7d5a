package entity

import (
	"time"
)

type InquiryStatus string

const (
	InquiryPending    InquiryStatus = "pending"
	InquiryInProgress InquiryStatus = "in_progress"
	InquiryResolved   InquiryStatus = "resolved"
)

func (s InquiryStatus) Valid() bool {
	switch s {
	case InquiryPending, InquiryInProgress, InquiryResolved:
		return true
	}
	return false
}

// Inquiry is a visitor contact-form submission. Invariant: ResolvedAt is set
// if and only if Status is resolved.
type Inquiry struct {
	ID         string        `json:"id" firestore:"id"`
	Name       string        `json:"name" firestore:"name"`
	Contact    string        `json:"contact,omitempty" firestore:"contact,omitempty"`
	Subject    string        `json:"subject,omitempty" firestore:"subject,omitempty"`
	Message    string        `json:"message,omitempty" firestore:"message,omitempty"`
	ServiceTag string        `json:"service_tag,omitempty" firestore:"serviceTag,omitempty"`
	Status     InquiryStatus `json:"status" firestore:"status"`
	Response   string        `json:"response,omitempty" firestore:"response,omitempty"`
	ResolvedAt *time.Time    `json:"resolved_at,omitempty" firestore:"resolvedAt,omitempty"`
	CreatedAt  time.Time     `json:"created_at" firestore:"createdAt"`
	UpdatedAt  time.Time     `json:"updated_at" firestore:"updatedAt"`
}
