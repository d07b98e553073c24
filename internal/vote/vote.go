// Package vote holds the data shape of a vote on a proposed change. Nothing
// creates, tallies or expires votes yet.
package vote

import "time"

// Vote counts yes/no ballots split by player category.
type Vote struct {
	ID        uint64
	CasualYes uint64
	CasualNo  uint64
	CompYes   uint64
	CompNo    uint64
	// EndTime is when voting closes and the result is final.
	EndTime time.Time
}

// New returns an empty vote that closes at end.
func New(id uint64, end time.Time) *Vote {
	return &Vote{ID: id, EndTime: end}
}

// Total returns the yes and no counts across both categories.
func (v *Vote) Total() (yes, no uint64) {
	return v.CasualYes + v.CompYes, v.CasualNo + v.CompNo
}

// Closed reports whether voting has ended at now.
func (v *Vote) Closed(now time.Time) bool {
	return !now.Before(v.EndTime)
}
