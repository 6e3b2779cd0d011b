package practicum

import (
	"encoding/json"

	"github.com/Xizillimax/homework-bot/internal/domain"
)

// Validate checks that a decoded payload has the shape the poll loop relies
// on and types it as a domain.ReviewFeed. Checks run in a fixed order and
// short-circuit so diagnostics stay deterministic.
func Validate(p Payload) (*domain.ReviewFeed, error) {
	if p == nil {
		return nil, newError(KindSchema, "payload is not a JSON object", nil)
	}

	rawHomeworks, ok := p["homeworks"]
	if !ok {
		return nil, newError(KindSchema, `payload has no "homeworks" key`, nil)
	}

	// json.Unmarshal treats null as a no-op for slices, so a nil result
	// means the key held null rather than a list.
	var homeworks []domain.Homework
	if err := json.Unmarshal(rawHomeworks, &homeworks); err != nil || homeworks == nil {
		return nil, newError(KindSchema, `"homeworks" is not a list of records`, err)
	}

	rawDate, ok := p["current_date"]
	if !ok {
		return nil, newError(KindSchema, `payload has no "current_date" key`, nil)
	}

	var currentDate *int64
	if err := json.Unmarshal(rawDate, &currentDate); err != nil || currentDate == nil {
		return nil, newError(KindSchema, `"current_date" is not an integer timestamp`, err)
	}

	return &domain.ReviewFeed{
		Homeworks:   homeworks,
		CurrentDate: *currentDate,
	}, nil
}
