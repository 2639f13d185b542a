// Package coords converts raw latitude/longitude text, in decimal degrees or
// degrees-minutes-seconds with a hemisphere letter, into signed decimal degrees.
package coords

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrInvalidCoordinateFormat reports text that matches no recognized
	// coordinate grammar. Always recoverable by re-prompting.
	ErrInvalidCoordinateFormat = errors.New("invalid coordinate format")

	// ErrCoordinateRange reports a coordinate that parsed cleanly but lies
	// outside the domain for its role.
	ErrCoordinateRange = errors.New("coordinate out of range")
)

// Role identifies which coordinate a raw value stands for. Range validation
// depends on it: latitudes must lie in [-90, 90], longitudes in [-180, 180].
type Role string

const (
	RoleLatitude  Role = "latitude"
	RoleLongitude Role = "longitude"
)

// dmsRe accepts forms like `68° 00' 38"N`, `N 68 0 38`, and `110 degrees 0' 38" W`.
// The hemisphere letter may lead or trail; minutes and seconds default to zero.
var dmsRe = regexp.MustCompile(`(?i)^\s*([NSEW])?\s*(\d{1,3}(?:\.\d+)?)\s*(?:°|º|degrees)?(?:\s*(\d{1,2}(?:\.\d+)?)\s*['′]?)?(?:\s*(\d{1,2}(?:\.\d+)?)\s*["″”]?)?\s*([NSEW])?\s*$`)

// dmsPunctuation marks text that cannot be a plain decimal value.
var dmsPunctuation = regexp.MustCompile(`[°º'′"″”]|degrees|[NSEW]`)

// Parse converts raw coordinate text to signed decimal degrees. Plain signed
// decimals pass through; anything carrying DMS punctuation or a hemisphere
// letter goes through the DMS grammar.
func Parse(raw string, role Role) (float64, error) {
	if dmsPunctuation.MatchString(strings.ToUpper(raw)) {
		return ParseDMS(raw, role)
	}
	return ParseDecimal(raw, role)
}

// ParseDecimal converts a plain signed decimal-degree string. Stray DMS
// punctuation is an error here: the caller explicitly requested decimal mode.
func ParseDecimal(raw string, role Role) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if dmsPunctuation.MatchString(strings.ToUpper(trimmed)) {
		return 0, fmt.Errorf("%w: %q contains DMS notation in decimal mode", ErrInvalidCoordinateFormat, raw)
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a decimal degree value", ErrInvalidCoordinateFormat, raw)
	}
	return value, validateRange(value, role)
}

// ParseDMS converts a DMS string with a leading or trailing hemisphere letter.
// S and W negate the magnitude.
func ParseDMS(raw string, role Role) (float64, error) {
	m := dmsRe.FindStringSubmatch(raw)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCoordinateFormat, raw)
	}

	hemisphere := strings.ToUpper(m[1])
	if hemisphere == "" {
		hemisphere = strings.ToUpper(m[5])
	} else if m[5] != "" {
		return 0, fmt.Errorf("%w: %q has two hemisphere letters", ErrInvalidCoordinateFormat, raw)
	}

	degrees, minutes, seconds, err := sexagesimalParts(m[2], m[3], m[4])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidCoordinateFormat, raw, err)
	}

	// Degrees magnitude bounds differ by role: 90 for latitude, 180 for longitude.
	limit := 90.0
	if role == RoleLongitude {
		limit = 180.0
	}
	if degrees > limit {
		return 0, fmt.Errorf("%w: %s degrees must be between 0 and %.0f, got %g", ErrCoordinateRange, role, limit, degrees)
	}

	value := degrees + minutes/60 + seconds/3600
	switch hemisphere {
	case "S", "W":
		value = -value
	}
	return value, validateRange(value, role)
}

// sexagesimalParts converts the captured degree/minute/second fields, treating
// absent minutes and seconds as zero.
func sexagesimalParts(d, m, s string) (degrees, minutes, seconds float64, err error) {
	degrees, err = strconv.ParseFloat(d, 64)
	if err != nil {
		return 0, 0, 0, err
	}
	if m != "" {
		if minutes, err = strconv.ParseFloat(m, 64); err != nil {
			return 0, 0, 0, err
		}
	}
	if s != "" {
		if seconds, err = strconv.ParseFloat(s, 64); err != nil {
			return 0, 0, 0, err
		}
	}
	if minutes >= 60 || seconds >= 60 {
		return 0, 0, 0, errors.New("minutes and seconds must be below 60")
	}
	return degrees, minutes, seconds, nil
}

func validateRange(value float64, role Role) error {
	switch role {
	case RoleLatitude:
		if value < -90 || value > 90 {
			return fmt.Errorf("%w: latitude must be between -90 and 90, got %g", ErrCoordinateRange, value)
		}
	case RoleLongitude:
		if value < -180 || value > 180 {
			return fmt.Errorf("%w: longitude must be between -180 and 180, got %g", ErrCoordinateRange, value)
		}
	default:
		return fmt.Errorf("%w: unknown coordinate role %q", ErrInvalidCoordinateFormat, role)
	}
	return nil
}
