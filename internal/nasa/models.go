package nasa

type TLE struct {
	SatelliteID int    `json:"satelliteId"`
	Name        string `json:"name"`
	Line1       string `json:"line1"`
	Line2       string `json:"line2"`
	Epoch       string `json:"epoch"`
}

type ISSPosition struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  float64 `json:"altitude"` // km
	Timestamp int64   `json:"timestamp"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type EarthImagery struct {
	Identifier          string      `json:"identifier"`
	Caption             string      `json:"caption"`
	Image               string      `json:"image"`
	Date                string      `json:"date"`
	CentroidCoordinates Coordinates `json:"centroid_coordinates"`
}

// ImageryQuery narrows an imagery lookup. Coordinates are only sent when both
// are present.
type ImageryQuery struct {
	Lat  *float64
	Lon  *float64
	Date string
}

type issNowResponse struct {
	Message     string `json:"message"`
	Timestamp   int64  `json:"timestamp"`
	ISSPosition struct {
		Latitude  string `json:"latitude"`
		Longitude string `json:"longitude"`
	} `json:"iss_position"`
}

type tleResult struct {
	tles []TLE
	err  error
}
