package core

import (
	"fmt"
	"regexp"
	"strconv"
)

var eventNamePattern = regexp.MustCompile(`(?i)Event\s+(\d+)\s+(\d{4})`)

// EventCode converts a free-text event name like "Event 10 2025" into the
// short code used in filenames and exports ("E1025"). Unrecognised names map
// to "E0000".
func EventCode(eventName string) string {
	m := eventNamePattern.FindStringSubmatch(eventName)
	if m == nil {
		return "E0000"
	}
	num, err := strconv.Atoi(m[1])
	if err != nil {
		return "E0000"
	}
	return fmt.Sprintf("E%02d%s", num, m[2][2:])
}
