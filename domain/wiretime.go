package domain

import (
	"fmt"
	"time"
)

// Gateways exchange timestamps as compact UTC strings, millisecond
// precision, no separators: yyyyMMddHHmmssSSS.
const wireTimeSeconds = "20060102150405"

func FormatWireTime(t time.Time) string {
	t = t.UTC()
	return t.Format(wireTimeSeconds) + fmt.Sprintf("%03d", t.Nanosecond()/int(time.Millisecond))
}

func ParseWireTime(value string) (time.Time, error) {
	if len(value) != len(wireTimeSeconds)+3 {
		return time.Time{}, fmt.Errorf("invalid wire time %q", value)
	}
	base, err := time.ParseInLocation(wireTimeSeconds, value[:len(wireTimeSeconds)], time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	var millis int
	if _, err := fmt.Sscanf(value[len(wireTimeSeconds):], "%03d", &millis); err != nil {
		return time.Time{}, fmt.Errorf("invalid wire time %q: %w", value, err)
	}
	return base.Add(time.Duration(millis) * time.Millisecond), nil
}
