package domain

import "math"

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// Page is a normalised 1-based page request.
type Page struct {
	Number int `json:"page"`
	Limit  int `json:"limit"`
}

// NewPage clamps limit to 1..MaxPageLimit and page to >= 1, capping page so
// that Offset never overflows.
func NewPage(number, limit int) Page {
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	if number < 1 {
		number = 1
	}
	if maxNumber := math.MaxInt / limit; number > maxNumber {
		number = maxNumber
	}
	return Page{Number: number, Limit: limit}
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// Pages returns the number of pages needed for total items.
func (p Page) Pages(total int64) int {
	if p.Limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(p.Limit) - 1) / int64(p.Limit))
}
