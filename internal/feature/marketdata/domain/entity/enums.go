package entity

import (
	"fmt"
	"strings"
)

// Timespan is the size of an aggregate time window.
type Timespan string

const (
	TimespanMinute  Timespan = "minute"
	TimespanHour    Timespan = "hour"
	TimespanDay     Timespan = "day"
	TimespanWeek    Timespan = "week"
	TimespanMonth   Timespan = "month"
	TimespanQuarter Timespan = "quarter"
	TimespanYear    Timespan = "year"
)

// Timespans lists every recognized timespan in ascending size.
var Timespans = []Timespan{
	TimespanMinute,
	TimespanHour,
	TimespanDay,
	TimespanWeek,
	TimespanMonth,
	TimespanQuarter,
	TimespanYear,
}

// ParseTimespan normalizes a caller token ("DAY" or "day") to a Timespan.
// The result is not checked; use Valid.
func ParseTimespan(s string) Timespan {
	return Timespan(strings.ToLower(strings.TrimSpace(s)))
}

// Valid reports whether t is one of the seven recognized timespans.
func (t Timespan) Valid() bool {
	for _, v := range Timespans {
		if t == v {
			return true
		}
	}
	return false
}

// Token returns the upstream path token.
func (t Timespan) Token() string {
	return string(t)
}

// SortOrder is the ordering of aggregate results by time.
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

// ParseSortOrder accepts ASCENDING/DESCENDING as well as asc/desc.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ASCENDING", "ASC":
		return Ascending, nil
	case "DESCENDING", "DESC":
		return Descending, nil
	}
	return Ascending, fmt.Errorf("unknown sort order %q", s)
}

// IsAscending reports whether results are requested oldest first.
func (s SortOrder) IsAscending() bool {
	return s != Descending
}

// Token returns the upstream query token.
func (s SortOrder) Token() string {
	if s.IsAscending() {
		return "asc"
	}
	return "desc"
}

func (s SortOrder) String() string {
	if s.IsAscending() {
		return "ASCENDING"
	}
	return "DESCENDING"
}

// OptionType distinguishes call and put contracts.
type OptionType int

const (
	Call OptionType = iota
	Put

	// UnknownOptionType is what ParseOptionType yields for an unrecognized token.
	UnknownOptionType OptionType = -1
)

// ParseOptionType accepts CALL/PUT as well as C/P.
func ParseOptionType(s string) (OptionType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CALL", "C":
		return Call, nil
	case "PUT", "P":
		return Put, nil
	}
	return UnknownOptionType, fmt.Errorf("unknown option type %q", s)
}

// Valid reports whether o is a call or a put.
func (o OptionType) Valid() bool {
	return o == Call || o == Put
}

// IsCall reports whether the contract is a call.
func (o OptionType) IsCall() bool {
	return o != Put
}

// Code returns the single letter used in option identifiers.
func (o OptionType) Code() string {
	if o.IsCall() {
		return "C"
	}
	return "P"
}

func (o OptionType) String() string {
	if o.IsCall() {
		return "CALL"
	}
	return "PUT"
}
