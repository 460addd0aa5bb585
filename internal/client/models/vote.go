// Package models holds the client-side domain types of the poll: the
// authenticated User, the Vote records and the aggregate Stats derived
// from them.
package models

import (
	"fmt"
	"sort"
	"strings"
)

// Question is the single poll question every vote answers.
const Question = "Est-ce que François Bayrou nous manque ?"

// Choice is one of the two poll answers.
type Choice string

const (
	ChoiceOui Choice = "Oui"
	ChoiceNon Choice = "Non"
)

func (c Choice) Valid() bool {
	return c == ChoiceOui || c == ChoiceNon
}

// ParseChoice accepts "oui"/"non" in any letter case.
func ParseChoice(s string) (Choice, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "oui":
		return ChoiceOui, nil
	case "non":
		return ChoiceNon, nil
	}
	return "", fmt.Errorf("invalid choice %q, expected %s or %s", s, ChoiceOui, ChoiceNon)
}

// Vote is an immutable ballot. UserID holds the voter's email and Timestamp
// is the server-side creation time in unix seconds.
type Vote struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Choice    Choice `json:"choice"`
	Timestamp int64  `json:"_ts"`
}

// SortNewestFirst orders votes by Timestamp descending. Ties keep their
// relative order.
func SortNewestFirst(votes []Vote) {
	sort.SliceStable(votes, func(i, j int) bool {
		return votes[i].Timestamp > votes[j].Timestamp
	})
}

// PrependLatest returns a new slice with v placed in front of votes.
//
// The result stays sorted newest-first only if v.Timestamp is at least the
// largest timestamp already present. That holds when v was just created by
// the server and the server clock is monotonic; nothing here re-checks it.
func PrependLatest(votes []Vote, v Vote) []Vote {
	out := make([]Vote, 0, len(votes)+1)
	out = append(out, v)
	return append(out, votes...)
}

// FindVote returns the first vote cast by email.
func FindVote(votes []Vote, email string) (Vote, bool) {
	for _, v := range votes {
		if v.UserID == email {
			return v, true
		}
	}
	return Vote{}, false
}
