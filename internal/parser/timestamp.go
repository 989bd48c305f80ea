package parser

import (
	"strconv"
	"strings"
)

// Timestamp notations accepted in match notes:
//
//	15:30   clock, minutes:seconds
//	23      bare minutes
//	23'     apostrophe-suffixed minutes
//	45+2    stoppage time, 45+2 total minutes
//
// All forms convert to integer seconds. An unparseable token yields
// ok=false, which the caller treats as a validation failure, not an error.

// ParseClock converts a "MM:SS" token to seconds.
func ParseClock(token string) (int, bool) {
	mins, secs, found := strings.Cut(token, ":")
	if !found {
		return 0, false
	}
	m, err := strconv.Atoi(mins)
	if err != nil || m < 0 {
		return 0, false
	}
	s, err := strconv.Atoi(secs)
	if err != nil || s < 0 || s > 59 {
		return 0, false
	}
	return m*60 + s, true
}

// ParseMinutes converts a minute token to seconds. The token may carry a
// stoppage-time suffix: "45+2" reads as 47 minutes. A trailing apostrophe
// is tolerated.
func ParseMinutes(token string) (int, bool) {
	token = strings.TrimSuffix(token, "'")

	base, extra, stoppage := strings.Cut(token, "+")
	m, err := strconv.Atoi(base)
	if err != nil || m < 0 {
		return 0, false
	}
	if stoppage {
		e, err := strconv.Atoi(extra)
		if err != nil || e < 0 {
			return 0, false
		}
		m += e
	}
	return m * 60, true
}
