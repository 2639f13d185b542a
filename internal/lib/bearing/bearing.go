// Package bearing parses the three bearing notations used in land
// descriptions into a single canonical azimuth, measured in degrees
// clockwise from true north and normalized into [0, 360).
//
// Recognized grammars:
//
//  1. Quadrant decimal: a cardinal letter plus a decimal offset from that
//     quadrant's baseline, e.g. "W 10" (270 + 10 = 280).
//  2. Quadrant DMS: a single leading or trailing cardinal letter with a
//     sexagesimal magnitude, e.g. `N 68° 00' 38"`.
//  3. Land-survey quadrant bearing: two cardinal letters bracketing a DMS
//     magnitude, e.g. `N 45° 30' 00" E`, read as "from due north, turn
//     45°30' toward east".
//
// An interior space between the magnitude and a second cardinal letter
// selects grammar 3; otherwise the single-letter grammars apply, with a bare
// decimal number meaning grammar 1.
package bearing

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidBearingFormat reports a bearing spec that matches none of the
// recognized grammars. Always recoverable by re-prompting.
var ErrInvalidBearingFormat = errors.New("invalid bearing format")

// surveyRe matches land-survey notation: start letter N/S, DMS magnitude,
// then a space and the turn letter E/W.
var surveyRe = regexp.MustCompile(`(?i)^\s*([NS])\s*(\d{1,3}(?:\.\d+)?)\s*(?:°|º|degrees)?(?:\s*(\d{1,2}(?:\.\d+)?)\s*['′]?)?(?:\s*(\d{1,2}(?:\.\d+)?)\s*["″”]?)?\s+([EW])\s*$`)

// quadRe matches the single-letter grammars: one cardinal letter, leading or
// trailing, with a decimal or DMS magnitude.
var quadRe = regexp.MustCompile(`(?i)^\s*([NSEW])?\s*(\d{1,3}(?:\.\d+)?)\s*(?:°|º|degrees)?(?:\s*(\d{1,2}(?:\.\d+)?)\s*['′]?)?(?:\s*(\d{1,2}(?:\.\d+)?)\s*["″”]?)?\s*([NSEW])?\s*$`)

// Parse converts a raw bearing spec into an azimuth in [0, 360).
func Parse(spec string) (float64, error) {
	if m := surveyRe.FindStringSubmatch(spec); m != nil {
		return parseSurvey(spec, m)
	}
	if m := quadRe.FindStringSubmatch(spec); m != nil {
		return parseQuadrant(spec, m)
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidBearingFormat, spec)
}

// parseSurvey applies the land-survey mapping: the first letter is the
// baseline, the second the direction of turn.
//
//	(N,E) → magnitude    (N,W) → 360 − magnitude
//	(S,E) → 180 − magnitude    (S,W) → 180 + magnitude
func parseSurvey(spec string, m []string) (float64, error) {
	magnitude, err := magnitudeOf(m[2], m[3], m[4])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidBearingFormat, spec, err)
	}

	start := strings.ToUpper(m[1])
	turn := strings.ToUpper(m[5])
	var azimuth float64
	switch {
	case start == "N" && turn == "E":
		azimuth = magnitude
	case start == "N" && turn == "W":
		azimuth = 360 - magnitude
	case start == "S" && turn == "E":
		azimuth = 180 - magnitude
	case start == "S" && turn == "W":
		azimuth = 180 + magnitude
	default:
		return 0, fmt.Errorf("%w: %q: invalid start/turn combination", ErrInvalidBearingFormat, spec)
	}
	return normalize(azimuth), nil
}

// parseQuadrant applies the quadrant-baseline mapping shared by grammars 1
// and 2: N → magnitude, S → 180 + magnitude, E → 90 + magnitude,
// W → 270 + magnitude.
func parseQuadrant(spec string, m []string) (float64, error) {
	letter := strings.ToUpper(m[1])
	if letter == "" {
		letter = strings.ToUpper(m[5])
	} else if m[5] != "" {
		// Two letters without a separating space is neither grammar.
		return 0, fmt.Errorf("%w: %q", ErrInvalidBearingFormat, spec)
	}

	magnitude, err := magnitudeOf(m[2], m[3], m[4])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidBearingFormat, spec, err)
	}

	var azimuth float64
	switch letter {
	case "N", "":
		azimuth = magnitude
	case "S":
		azimuth = 180 + magnitude
	case "E":
		azimuth = 90 + magnitude
	case "W":
		azimuth = 270 + magnitude
	}
	return normalize(azimuth), nil
}

// magnitudeOf builds the decimal magnitude from degree/minute/second fields.
// Missing minutes and seconds default to zero, so a bare decimal offset
// (grammar 1) takes the same path.
func magnitudeOf(d, m, s string) (float64, error) {
	degrees, err := strconv.ParseFloat(d, 64)
	if err != nil {
		return 0, err
	}
	var minutes, seconds float64
	if m != "" {
		if minutes, err = strconv.ParseFloat(m, 64); err != nil {
			return 0, err
		}
	}
	if s != "" {
		if seconds, err = strconv.ParseFloat(s, 64); err != nil {
			return 0, err
		}
	}
	if minutes >= 60 || seconds >= 60 {
		return 0, errors.New("minutes and seconds must be below 60")
	}
	return degrees + minutes/60 + seconds/3600, nil
}

// normalize folds an azimuth into [0, 360) by repeated addition or
// subtraction. Plain modulo would mishandle negative values.
func normalize(azimuth float64) float64 {
	for azimuth >= 360 {
		azimuth -= 360
	}
	for azimuth < 0 {
		azimuth += 360
	}
	return azimuth
}
