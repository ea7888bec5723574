package subscription

import "strings"

// Status mirrors the billing provider's subscription status verbatim.
type Status string

const (
	StatusActive            Status = "active"
	StatusTrialing          Status = "trialing"
	StatusCanceled          Status = "canceled"
	StatusIncomplete        Status = "incomplete"
	StatusIncompleteExpired Status = "incomplete_expired"
	StatusPastDue           Status = "past_due"
	StatusUnpaid            Status = "unpaid"
	StatusPaused            Status = "paused"
)

func ParseStatus(s string) Status {
	return Status(strings.ToLower(strings.TrimSpace(s)))
}

func (s Status) String() string {
	return string(s)
}

// GrantsPaidAccess is the single rule behind every user's paid flag.
func (s Status) GrantsPaidAccess() bool {
	return s == StatusActive || s == StatusTrialing
}
