package domain

import (
	"errors"
	"fmt"
)

// Status is a review status code as reported by the homework API.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// Homework is a single submission's review state. Read-only: produced by the
// remote API, never mutated locally.
type Homework struct {
	Name   string `json:"homework_name"`
	Status Status `json:"status"`
}

// ReviewFeed is a validated API response: submissions ordered newest first
// plus the server-reported cursor for the next poll.
type ReviewFeed struct {
	Homeworks   []Homework
	CurrentDate int64
}

var (
	ErrMissingName   = errors.New("homework has no name")
	ErrUnknownStatus = errors.New("unknown homework status")
)

var verdicts = map[Status]string{
	StatusApproved:  "Reviewed: the reviewer liked everything. Success!",
	StatusReviewing: "Submission has been taken up for review.",
	StatusRejected:  "Reviewed: the reviewer has remarks.",
}

// Interpret renders a homework record into the notification sentence.
// Pure: same record, same output.
func Interpret(h Homework) (string, error) {
	if h.Name == "" {
		return "", ErrMissingName
	}
	verdict, ok := verdicts[h.Status]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, h.Status)
	}
	return fmt.Sprintf("Status changed for submission %q. %s", h.Name, verdict), nil
}
