package telemetry

import (
	"fmt"
	"math"
	"math/rand/v2"
	"orbital/internal/metrics"
	"time"
)

const (
	EarthRadiusKm      = 6371.0
	TrackedDebrisCount = 34000

	DefaultDebrisLimit = 100
	DefaultAltitudeMin = 400.0
	DefaultAltitudeMax = 2000.0

	positionScale = 100.0
)

var TimeNow = time.Now

type DebrisType string

const (
	DebrisSatellite  DebrisType = "satellite"
	DebrisRocketBody DebrisType = "rocket_body"
	DebrisFragment   DebrisType = "fragment"
	DebrisUnknown    DebrisType = "unknown"
)

type DebrisStatus string

const (
	DebrisActive   DebrisStatus = "active"
	DebrisInactive DebrisStatus = "inactive"
	DebrisDecayed  DebrisStatus = "decayed"
)

var (
	debrisTypes = []DebrisType{DebrisSatellite, DebrisRocketBody, DebrisFragment, DebrisUnknown}
	countries   = []string{"USA", "Russia", "China", "ESA", "Japan", "India", "Unknown"}
)

type DebrisObject struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Position     [3]float64   `json:"position"`
	Velocity     [3]float64   `json:"velocity"`
	Size         float64      `json:"size"` // meters
	Mass         float64      `json:"mass"` // kilograms
	Type         DebrisType   `json:"type"`
	LaunchDate   time.Time    `json:"launchDate"`
	Country      string       `json:"country"`
	Apogee       float64      `json:"apogee"`
	Perigee      float64      `json:"perigee"`
	Inclination  float64      `json:"inclination"`
	Period       float64      `json:"period"`
	Eccentricity float64      `json:"eccentricity"`
	RCS          float64      `json:"rcs"` // radar cross section
	Status       DebrisStatus `json:"status"`
	LastUpdate   time.Time    `json:"lastUpdate"`
}

type DebrisQuery struct {
	Limit       int
	AltitudeMin float64
	AltitudeMax float64
}

type DebrisField struct {
	Objects     []DebrisObject
	TotalCount  int
	LastUpdated time.Time
}

// RandomSource supplies uniform draws to the generator.
type RandomSource interface {
	Float64() float64
	IntN(n int) int
}

type systemRandom struct{}

func (systemRandom) Float64() float64 { return rand.Float64() }
func (systemRandom) IntN(n int) int   { return rand.IntN(n) }

// Generator produces synthetic debris fields. It keeps no state between calls.
type Generator struct {
	rnd RandomSource
}

// NewGenerator returns a generator drawing from rnd, or from the global
// math/rand/v2 source when rnd is nil. Seeded sources are not safe for
// concurrent use.
func NewGenerator(rnd RandomSource) *Generator {
	if rnd == nil {
		rnd = systemRandom{}
	}
	return &Generator{rnd: rnd}
}

// DebrisField draws query.Limit independent debris objects with altitudes in
// [AltitudeMin, AltitudeMax). TotalCount is the catalogue size, not the limit.
func (g *Generator) DebrisField(query DebrisQuery) DebrisField {
	query = query.withDefaults()
	now := TimeNow().UTC()

	objects := make([]DebrisObject, 0, query.Limit)
	for i := range query.Limit {
		objects = append(objects, g.debrisObject(i+1, query, now))
	}
	metrics.ObserveDebrisGenerated(len(objects))

	return DebrisField{
		Objects:     objects,
		TotalCount:  TrackedDebrisCount,
		LastUpdated: now,
	}
}

func (g *Generator) debrisObject(seq int, query DebrisQuery, now time.Time) DebrisObject {
	altitude := query.AltitudeMin + g.rnd.Float64()*(query.AltitudeMax-query.AltitudeMin)
	inclination := g.rnd.Float64() * 180
	longitude := g.rnd.Float64()*360 - 180
	latitude := (g.rnd.Float64() - 0.5) * 180

	debrisType := debrisTypes[g.rnd.IntN(len(debrisTypes))]
	size, mass := g.sizeAndMass()

	return DebrisObject{
		ID:           fmt.Sprintf("DEBRIS-%06d", seq),
		Name:         debrisName(debrisType, seq),
		Position:     cartesian(latitude, longitude, EarthRadiusKm+altitude, positionScale),
		Velocity:     [3]float64{g.jitter(0.1), g.jitter(0.1), g.jitter(0.1)},
		Size:         size,
		Mass:         mass,
		Type:         debrisType,
		LaunchDate:   g.launchDate(),
		Country:      countries[g.rnd.IntN(len(countries))],
		Apogee:       altitude + g.rnd.Float64()*100,
		Perigee:      altitude - g.rnd.Float64()*50,
		Inclination:  inclination,
		Period:       90 + (altitude/100)*10,
		Eccentricity: g.rnd.Float64() * 0.1,
		RCS:          size * size * math.Pi,
		Status:       g.status(),
		LastUpdate:   now,
	}
}

// sizeAndMass picks a tier with a single draw: 70% small (1-10 cm),
// 20% medium (10 cm - 1 m), 10% large (1-11 m).
func (g *Generator) sizeAndMass() (float64, float64) {
	tier := g.rnd.Float64()
	switch {
	case tier < 0.7:
		return 0.01 + g.rnd.Float64()*0.09, 0.1 + g.rnd.Float64()*5
	case tier < 0.9:
		return 0.1 + g.rnd.Float64()*0.9, 5 + g.rnd.Float64()*100
	default:
		return 1 + g.rnd.Float64()*10, 100 + g.rnd.Float64()*5000
	}
}

func (g *Generator) status() DebrisStatus {
	draw := g.rnd.Float64()
	switch {
	case draw < 0.1:
		return DebrisActive
	case draw < 0.8:
		return DebrisInactive
	default:
		return DebrisDecayed
	}
}

func (g *Generator) launchDate() time.Time {
	year := 2000 + g.rnd.IntN(24)
	month := time.Month(1 + g.rnd.IntN(12))
	day := 1 + g.rnd.IntN(28)
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func (g *Generator) jitter(width float64) float64 {
	return (g.rnd.Float64() - 0.5) * width
}

func debrisName(t DebrisType, seq int) string {
	switch t {
	case DebrisSatellite:
		return fmt.Sprintf("SAT-%d", seq)
	case DebrisRocketBody:
		return fmt.Sprintf("RB-%d", seq)
	default:
		return fmt.Sprintf("FRAG-%d", seq)
	}
}

// cartesian converts geographic degrees and a radius in km to scaled x, y, z.
func cartesian(latDeg, lonDeg, radius, scale float64) [3]float64 {
	lat := latDeg * math.Pi / 180
	lon := lonDeg * math.Pi / 180
	return [3]float64{
		radius * math.Cos(lat) * math.Cos(lon) / scale,
		radius * math.Cos(lat) * math.Sin(lon) / scale,
		radius * math.Sin(lat) / scale,
	}
}

func (q DebrisQuery) withDefaults() DebrisQuery {
	if q.Limit <= 0 {
		q.Limit = DefaultDebrisLimit
	}
	if q.AltitudeMin == 0 && q.AltitudeMax == 0 {
		q.AltitudeMin, q.AltitudeMax = DefaultAltitudeMin, DefaultAltitudeMax
	}
	if q.AltitudeMax < q.AltitudeMin {
		q.AltitudeMin, q.AltitudeMax = q.AltitudeMax, q.AltitudeMin
	}
	return q
}
