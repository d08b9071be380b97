package telemetry

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var ErrMalformedTLE = errors.New("malformed TLE line")

const (
	earthGM    = 398600.4418 // km^3/s^2
	sceneScale = 2 / EarthRadiusKm
	tleLineLen = 63
)

// OrbitalElements are the line 2 fields of a two-line element set.
type OrbitalElements struct {
	Inclination  float64 // radians
	RAAN         float64 // radians
	Eccentricity float64
	ArgPerigee   float64 // radians
	MeanAnomaly  float64 // radians
	MeanMotion   float64 // revolutions per day
}

// ParseTLELine2 reads the fixed-column orbital elements of TLE line 2.
func ParseTLELine2(line string) (OrbitalElements, error) {
	if len(line) < tleLineLen {
		return OrbitalElements{}, fmt.Errorf("%w: line 2 has %d columns, need %d", ErrMalformedTLE, len(line), tleLineLen)
	}

	var el OrbitalElements
	fields := []struct {
		dst     *float64
		from    int
		to      int
		prefix  string
		radians bool
	}{
		{&el.Inclination, 8, 16, "", true},
		{&el.RAAN, 17, 25, "", true},
		{&el.Eccentricity, 26, 33, "0.", false},
		{&el.ArgPerigee, 34, 42, "", true},
		{&el.MeanAnomaly, 43, 51, "", true},
		{&el.MeanMotion, 52, 63, "", false},
	}
	for _, f := range fields {
		raw := f.prefix + strings.TrimSpace(line[f.from:f.to])
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return OrbitalElements{}, fmt.Errorf("%w: columns %d-%d: %w", ErrMalformedTLE, f.from, f.to, err)
		}
		if f.radians {
			v = v * math.Pi / 180
		}
		*f.dst = v
	}

	if el.MeanMotion <= 0 {
		return OrbitalElements{}, fmt.Errorf("%w: mean motion must be positive", ErrMalformedTLE)
	}
	return el, nil
}

// PositionFromTLE approximates where the object described by TLE line 2 is at
// the given instant, in scene units where the Earth radius is 2. It treats the
// orbit as a circle of radius a(1-e) and is only meant for visualisation.
func PositionFromTLE(line2 string, at time.Time) ([3]float64, error) {
	el, err := ParseTLELine2(line2)
	if err != nil {
		return [3]float64{}, err
	}

	seconds := float64(at.UnixNano()) / float64(time.Second)
	n := el.MeanMotion * 2 * math.Pi / 86400 // rad/s
	m := el.MeanAnomaly + n*seconds

	a := math.Cbrt(earthGM / (n * n))
	r := a * (1 - el.Eccentricity)

	x := r*math.Cos(m)*math.Cos(el.RAAN) - r*math.Sin(m)*math.Sin(el.RAAN)*math.Cos(el.Inclination)
	y := r * math.Sin(m) * math.Sin(el.Inclination)
	z := r*math.Cos(m)*math.Sin(el.RAAN) + r*math.Sin(m)*math.Cos(el.RAAN)*math.Cos(el.Inclination)

	return [3]float64{x * sceneScale, y * sceneScale, z * sceneScale}, nil
}
