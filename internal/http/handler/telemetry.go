package handler

import (
	"net/http"
	"orbital/internal/http/payload"
	"orbital/internal/nasa"
	"orbital/internal/telemetry"

	"go.uber.org/zap"
)

var (
	GetDebris       = "GET /api/nasa/debris"
	GetStatistics   = "GET /api/nasa/statistics"
	GetISS          = "GET /api/nasa/iss"
	GetTLE          = "GET /api/nasa/tle"
	GetEarthImagery = "GET /api/nasa/earth-imagery"
)

// TrackedTLE is an element set together with the position derived from it.
type TrackedTLE struct {
	nasa.TLE
	Position *[3]float64 `json:"position,omitempty"`
}

type TelemetryHandler struct {
	responder
	telemetry TelemetryService
	spaceData SpaceDataClient
}

func NewTelemetryHandler(logger *zap.SugaredLogger, telemetryService TelemetryService, spaceData SpaceDataClient) *TelemetryHandler {
	return &TelemetryHandler{
		responder: responder{logs: logger},
		telemetry: telemetryService,
		spaceData: spaceData,
	}
}

func (h *TelemetryHandler) HandleDebris(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	query := payload.NewDebrisQuery(r.URL.Query())
	if err := query.Validate(); err != nil {
		h.badRequest(w, "Failed to fetch debris data", err, GetDebris, requestId)
		return
	}

	field := h.telemetry.DebrisField(query.ToTelemetry())

	h.respond(w, DebrisResponse{
		Response:    Response{Success: true, Data: field.Objects},
		TotalCount:  field.TotalCount,
		LastUpdated: field.LastUpdated,
	}, http.StatusOK, requestId)
}

func (h *TelemetryHandler) HandleStatistics(w http.ResponseWriter, r *http.Request) {
	h.ok(w, h.telemetry.Statistics(), requestID(r))
}

func (h *TelemetryHandler) HandleISS(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	pos, err := h.spaceData.ISSPosition(r.Context())
	if err != nil {
		h.fail(w, "Failed to fetch ISS position", err, GetISS, requestId)
		return
	}

	h.ok(w, pos, requestId)
}

// HandleTLE proxies element sets and attaches a current scene position to
// every set whose second line parses. A partial upstream failure still fails
// the request.
func (h *TelemetryHandler) HandleTLE(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	query := payload.NewTLEQuery(r.URL.Query())
	if err := query.Validate(); err != nil {
		h.badRequest(w, "Failed to fetch TLE data", err, GetTLE, requestId)
		return
	}

	tles, err := h.spaceData.TLE(r.Context(), query.IDs()...)
	if err != nil {
		h.fail(w, "Failed to fetch TLE data", err, GetTLE, requestId)
		return
	}

	now := telemetry.TimeNow()
	tracked := make([]TrackedTLE, 0, len(tles))
	for _, tle := range tles {
		item := TrackedTLE{TLE: tle}
		pos, err := telemetry.PositionFromTLE(tle.Line2, now)
		if err != nil {
			h.logs.Warnw("skipping position for unparsable element set",
				"error", err,
				"satellite_id", tle.SatelliteID,
				"handler", GetTLE,
				"request_id", requestId)
		} else {
			item.Position = &pos
		}
		tracked = append(tracked, item)
	}

	h.ok(w, tracked, requestId)
}

func (h *TelemetryHandler) HandleEarthImagery(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	query := payload.NewImageryQuery(r.URL.Query())
	if err := query.Validate(); err != nil {
		h.badRequest(w, "Failed to fetch Earth imagery", err, GetEarthImagery, requestId)
		return
	}

	images, err := h.spaceData.EarthImagery(r.Context(), query.ToNASA())
	if err != nil {
		h.fail(w, "Failed to fetch Earth imagery", err, GetEarthImagery, requestId)
		return
	}

	h.ok(w, images, requestId)
}

// Register wires the telemetry and space data routes into mux.
func (h *TelemetryHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc(GetDebris, h.HandleDebris)
	mux.HandleFunc(GetStatistics, h.HandleStatistics)
	mux.HandleFunc(GetISS, h.HandleISS)
	mux.HandleFunc(GetTLE, h.HandleTLE)
	mux.HandleFunc(GetEarthImagery, h.HandleEarthImagery)
}
