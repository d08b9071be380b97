package payload

import (
	"net/url"
	"orbital/internal/nasa"
	"orbital/internal/telemetry"

	"github.com/jellydator/validation"
)

const (
	MaxDebrisLimit    = 1000
	MaxSatelliteIDs   = 10
	maxAltitudeKm     = 100000
	imageryDateLayout = "2006-01-02"
)

type DebrisQuery struct {
	Limit       string
	AltitudeMin string
	AltitudeMax string
}

func NewDebrisQuery(values url.Values) DebrisQuery {
	return DebrisQuery{
		Limit:       values.Get("limit"),
		AltitudeMin: values.Get("altitudeMin"),
		AltitudeMax: values.Get("altitudeMax"),
	}
}

func (d DebrisQuery) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Limit,
			validation.Match(positiveInt),
			validation.By(intAtMost(MaxDebrisLimit))),
		validation.Field(&d.AltitudeMin, validation.By(floatBetween(0, maxAltitudeKm))),
		validation.Field(&d.AltitudeMax, validation.By(floatBetween(0, maxAltitudeKm))),
	)
}

// ToTelemetry converts the query. A single altitude bound is completed with
// the default for the other one.
func (d DebrisQuery) ToTelemetry() telemetry.DebrisQuery {
	query := telemetry.DebrisQuery{Limit: atoi(d.Limit)}
	if d.AltitudeMin == "" && d.AltitudeMax == "" {
		return query
	}

	query.AltitudeMin = telemetry.DefaultAltitudeMin
	query.AltitudeMax = telemetry.DefaultAltitudeMax
	if d.AltitudeMin != "" {
		query.AltitudeMin = parseFloat(d.AltitudeMin)
	}
	if d.AltitudeMax != "" {
		query.AltitudeMax = parseFloat(d.AltitudeMax)
	}
	return query
}

type TLEQuery struct {
	SatelliteIDs []string
}

func NewTLEQuery(values url.Values) TLEQuery {
	return TLEQuery{SatelliteIDs: values["satelliteId"]}
}

func (t TLEQuery) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.SatelliteIDs,
			validation.Length(0, MaxSatelliteIDs),
			validation.Each(validation.Match(positiveInt))),
	)
}

func (t TLEQuery) IDs() []int {
	ids := make([]int, 0, len(t.SatelliteIDs))
	for _, id := range t.SatelliteIDs {
		ids = append(ids, atoi(id))
	}
	return ids
}

type ImageryQuery struct {
	Lat  string
	Lon  string
	Date string
}

func NewImageryQuery(values url.Values) ImageryQuery {
	return ImageryQuery{
		Lat:  values.Get("lat"),
		Lon:  values.Get("lon"),
		Date: values.Get("date"),
	}
}

func (i ImageryQuery) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Lat, validation.By(floatBetween(-90, 90))),
		validation.Field(&i.Lon, validation.By(floatBetween(-180, 180))),
		validation.Field(&i.Date, validation.By(dateLayout(imageryDateLayout))),
	)
}

func (i ImageryQuery) ToNASA() nasa.ImageryQuery {
	query := nasa.ImageryQuery{Date: i.Date}
	if i.Lat != "" {
		lat := parseFloat(i.Lat)
		query.Lat = &lat
	}
	if i.Lon != "" {
		lon := parseFloat(i.Lon)
		query.Lon = &lon
	}
	return query
}
