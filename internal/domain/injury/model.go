package injury

import (
	"strings"
	"time"
)

type Status string

const (
	StatusOut          Status = "OUT"
	StatusDoubtful     Status = "DOUBTFUL"
	StatusQuestionable Status = "QUESTIONABLE"
	StatusProbable     Status = "PROBABLE"
	StatusActive       Status = "ACTIVE"
)

type Availability string

const (
	Available   Availability = "available"
	Unavailable Availability = "unavailable"
)

type rule struct {
	availability Availability
	applyImpact  bool
}

// Questionable players stay in the lineup but their impact is not applied.
var rules = map[Status]rule{
	StatusOut:          {availability: Unavailable, applyImpact: true},
	StatusDoubtful:     {availability: Unavailable, applyImpact: true},
	StatusQuestionable: {availability: Available, applyImpact: false},
	StatusProbable:     {availability: Available, applyImpact: true},
	StatusActive:       {availability: Available, applyImpact: true},
}

// NormalizeStatus folds a provider status string onto the closed Status set.
// Anything containing OUT is OUT, day-to-day is QUESTIONABLE, unknown is ACTIVE.
func NormalizeStatus(raw string) Status {
	upper := strings.ToUpper(strings.TrimSpace(raw))
	switch {
	case strings.Contains(upper, "OUT"):
		return StatusOut
	case strings.Contains(upper, "DAY-TO-DAY"), strings.Contains(upper, "DAY TO DAY"):
		return StatusQuestionable
	}
	if _, ok := rules[Status(upper)]; ok {
		return Status(upper)
	}
	return StatusActive
}

// RawEntry is one injured athlete as reported by the injury provider.
type RawEntry struct {
	PlayerName string
	Status     string
	Date       string
}

// Record is a RawEntry resolved against the availability rules.
type Record struct {
	PlayerName   string       `json:"player_name"`
	RawStatus    string       `json:"espn_status"`
	Status       Status       `json:"status"`
	Availability Availability `json:"model_status"`
	ApplyImpact  bool         `json:"apply_impact"`
	Date         string       `json:"injury_date,omitempty"`
}

func Resolve(entry RawEntry) Record {
	status := NormalizeStatus(entry.Status)
	r := rules[status]
	return Record{
		PlayerName:   entry.PlayerName,
		RawStatus:    entry.Status,
		Status:       status,
		Availability: r.availability,
		ApplyImpact:  r.applyImpact,
		Date:         entry.Date,
	}
}

// Report is the injury picture for one team at one point in time.
type Report struct {
	Team      string    `json:"team"`
	Timestamp time.Time `json:"timestamp"`
	Records   []Record  `json:"injuries"`
}
