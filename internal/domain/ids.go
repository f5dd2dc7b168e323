package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TimestampID returns the millisecond Unix timestamp of t as a decimal string.
// Two calls within the same millisecond collide; see UniqueTimestampID.
func TimestampID(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

// UniqueTimestampID returns a timestamp id for t that is not in taken,
// advancing one millisecond at a time until a free value is found.
func UniqueTimestampID(t time.Time, taken func(id string) bool) string {
	ms := t.UnixMilli()
	for {
		id := strconv.FormatInt(ms, 10)
		if taken == nil || !taken(id) {
			return id
		}
		ms++
	}
}

// AttachmentID returns a timestamp id with a nine character random suffix.
func AttachmentID(t time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return TimestampID(t) + suffix
}
