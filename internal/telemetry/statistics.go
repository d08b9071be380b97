package telemetry

import "time"

type AltitudeBands struct {
	LEO int `json:"leo"` // 200-2000 km
	MEO int `json:"meo"` // 2000-35786 km
	GEO int `json:"geo"` // 35786 km and above
}

type SizeBands struct {
	Large  int `json:"large"`  // >10 cm
	Medium int `json:"medium"` // 1-10 cm, estimated
	Small  int `json:"small"`  // <1 cm, estimated
}

type Statistics struct {
	TotalObjects       int           `json:"totalObjects"`
	TrackableObjects   int           `json:"trackableObjects"`
	ActiveSatellites   int           `json:"activeSatellites"`
	InactiveSatellites int           `json:"inactiveSatellites"`
	RocketBodies       int           `json:"rocketBodies"`
	Fragments          int           `json:"fragments"`
	ByAltitude         AltitudeBands `json:"byAltitude"`
	BySize             SizeBands     `json:"bySize"`
	CollisionRisk      string        `json:"collisionRisk"`
	LastUpdate         time.Time     `json:"lastUpdate"`
}

// Statistics returns the published debris population figures.
func (g *Generator) Statistics() Statistics {
	return Statistics{
		TotalObjects:       TrackedDebrisCount,
		TrackableObjects:   25000,
		ActiveSatellites:   8800,
		InactiveSatellites: 3000,
		RocketBodies:       2900,
		Fragments:          19300,
		ByAltitude: AltitudeBands{
			LEO: 28000,
			MEO: 4500,
			GEO: 1500,
		},
		BySize: SizeBands{
			Large:  25000,
			Medium: 500000,
			Small:  100000000,
		},
		CollisionRisk: "moderate",
		LastUpdate:    TimeNow().UTC(),
	}
}
