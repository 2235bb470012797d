package games

import (
	"strings"

	"github.com/preston-bernstein/nhl-ticker-service/internal/payload"
)

// LiveLabel composes a short clock label such as "P2 08:41", "OT 3:21",
// "INT" or "SO" from whatever clock and period fields the entry carries.
// It returns "" when nothing usable is present.
func LiveLabel(entry payload.Object) string {
	clock := payload.ObjectAt(entry, "clock")

	timeLeft := truthyString(clock, "timeRemaining", "timeRemainingInPeriod")
	if timeLeft == "" {
		timeLeft = truthyString(entry, "timeRemaining", "timeRemainingInPeriod")
	}

	descriptor := payload.ObjectAt(entry, "periodDescriptor")
	period, hasPeriod := firstTruthy(descriptor, "number", "periodNumber")
	if !hasPeriod {
		period, hasPeriod = firstTruthy(entry, "period", "currentPeriod")
	}
	periodType, _ := firstTruthy(descriptor, "periodType", "type")
	if periodType == nil {
		periodType, _ = firstTruthy(entry, "periodType")
	}

	intermission, ok := entry["inIntermission"]
	if !ok || intermission == nil {
		intermission = clock["inIntermission"]
	}
	if b, ok := intermission.(bool); ok && b {
		return "INT"
	}

	switch strings.ToUpper(payload.Text(periodType)) {
	case "SO", "SHOOTOUT":
		return "SO"
	case "OT", "OVERTIME":
		return withTime("OT", timeLeft)
	}

	if hasPeriod {
		if p := payload.Text(period); isDigits(p) {
			return withTime("P"+p, timeLeft)
		}
	}
	return timeLeft
}

func withTime(prefix, timeLeft string) string {
	if timeLeft == "" {
		return prefix
	}
	return prefix + " " + timeLeft
}

// truthyString returns the first truthy value among keys, trimmed, when it is a string.
func truthyString(obj payload.Object, keys ...string) string {
	v, ok := firstTruthy(obj, keys...)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

func firstTruthy(obj payload.Object, keys ...string) (any, bool) {
	for _, key := range keys {
		if v := obj[key]; payload.Truthy(v) {
			return v, true
		}
	}
	return nil, false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
