package models

import (
	"math"
	"strconv"
	"time"
)

// PageLink is one entry of a pager
type PageLink struct {
	Number  int
	URL     string
	Current bool
}

// Pagination describes where a page sits in a paged listing
type Pagination struct {
	CurrentPage int
	TotalPages  int
	Pages       []PageLink
	PrevURL     string
	NextURL     string
}

// TotalPages returns ceil(total/pageSize); zero entries means zero pages
func TotalPages(total int64, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	size := int64(pageSize)
	return int((total + size - 1) / size)
}

// UnixSeconds converts a time to fractional unix seconds as stored in the database
func UnixSeconds(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/float64(time.Second)
}

// FromUnixSeconds converts fractional unix seconds back to a time
func FromUnixSeconds(seconds float64) time.Time {
	whole, frac := math.Modf(seconds)
	return time.Unix(int64(whole), int64(math.Round(frac*1e9)))
}

// FormatUnixSeconds renders a time as fractional unix seconds, suitable as a sort key
func FormatUnixSeconds(t time.Time) string {
	return strconv.FormatFloat(UnixSeconds(t), 'f', -1, 64)
}
