package attendance

import (
	"strings"
	"time"
)

// Session records are stored under attendance/{groupId}/{YYYYMMDD}/{HH_MM}.
// Dates and time slots travel as 2006-01-02 / 15:04 in the API and are
// folded into path-safe keys here.

func dateKey(date string) (string, bool) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", false
	}
	return t.Format("20060102"), true
}

func slotKey(slot string) (string, bool) {
	t, err := time.Parse("15:04", slot)
	if err != nil {
		return "", false
	}
	return strings.ReplaceAll(t.Format("15:04"), ":", "_"), true
}

func displayDate(key string) string {
	t, err := time.Parse("20060102", key)
	if err != nil {
		return key
	}
	return t.Format("2006-01-02")
}

func displaySlot(key string) string {
	return strings.ReplaceAll(key, "_", ":")
}
