package nasa

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"orbital/internal/metrics"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/ratelimit"
)

// ErrUpstream wraps every failure talking to a space data API.
var ErrUpstream = errors.New("upstream request failed")

// ISSAltitudeKm is the mean ISS altitude reported with every position fix.
const ISSAltitudeKm = 408.0

const maxBodyBytes = 4 << 20

type Config struct {
	BaseURL        string
	APIKey         string
	ISSPositionURL string
}

// Client proxies the NASA open APIs and the open-notify ISS feed. Every
// outgoing request first takes a token from the shared limiter.
type Client struct {
	http    HTTPClient
	limiter ratelimit.Limiter
	config  Config
}

func NewClient(httpClient HTTPClient, limiter ratelimit.Limiter, config Config) *Client {
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	return &Client{
		http:    httpClient,
		limiter: limiter,
		config:  config,
	}
}

func (c *Client) ISSPosition(ctx context.Context) (pos ISSPosition, err error) {
	defer observe("iss_position", &err)()

	var raw issNowResponse
	if err = c.getJSON(ctx, c.config.ISSPositionURL, &raw); err != nil {
		return ISSPosition{}, err
	}

	lat, err := strconv.ParseFloat(raw.ISSPosition.Latitude, 64)
	if err != nil {
		return ISSPosition{}, fmt.Errorf("%w: parse latitude %q: %w", ErrUpstream, raw.ISSPosition.Latitude, err)
	}
	lon, err := strconv.ParseFloat(raw.ISSPosition.Longitude, 64)
	if err != nil {
		return ISSPosition{}, fmt.Errorf("%w: parse longitude %q: %w", ErrUpstream, raw.ISSPosition.Longitude, err)
	}

	return ISSPosition{
		Latitude:  lat,
		Longitude: lon,
		Altitude:  ISSAltitudeKm,
		Timestamp: raw.Timestamp,
	}, nil
}

// TLE returns element sets for the given catalogue numbers, or the upstream
// default listing when none are given. Satellites are fetched concurrently;
// the ones that succeed are returned alongside the joined errors of the rest.
func (c *Client) TLE(ctx context.Context, satelliteIDs ...int) (tles []TLE, err error) {
	defer observe("tle", &err)()

	if len(satelliteIDs) == 0 {
		return c.fetchTLE(ctx, c.endpoint("/tle", nil))
	}

	results := make([]tleResult, len(satelliteIDs))

	var wg sync.WaitGroup
	for i, id := range satelliteIDs {
		wg.Add(1)
		go func(i, id int) {
			defer wg.Done()
			found, err := c.fetchTLE(ctx, c.endpoint("/tle/"+strconv.Itoa(id), nil))
			if err != nil {
				err = fmt.Errorf("fetching satellite %d: %w", id, err)
			}
			results[i] = tleResult{tles: found, err: err}
		}(i, id)
	}
	wg.Wait()

	var aggrErr error
	for _, result := range results {
		if result.err != nil {
			aggrErr = errors.Join(aggrErr, result.err)
			continue
		}
		tles = append(tles, result.tles...)
	}

	return tles, aggrErr
}

func (c *Client) EarthImagery(ctx context.Context, query ImageryQuery) (images []EarthImagery, err error) {
	defer observe("earth_imagery", &err)()

	params := url.Values{}
	if query.Lat != nil && query.Lon != nil {
		params.Set("lat", strconv.FormatFloat(*query.Lat, 'f', -1, 64))
		params.Set("lon", strconv.FormatFloat(*query.Lon, 'f', -1, 64))
	}
	if query.Date != "" {
		params.Set("date", query.Date)
	}

	var body json.RawMessage
	if err = c.getJSON(ctx, c.endpoint("/planetary/earth/imagery", params), &body); err != nil {
		return nil, err
	}

	return decodeOneOrMany[EarthImagery](body)
}

func (c *Client) fetchTLE(ctx context.Context, endpoint string) ([]TLE, error) {
	var body json.RawMessage
	if err := c.getJSON(ctx, endpoint, &body); err != nil {
		return nil, err
	}
	return decodeOneOrMany[TLE](body)
}

func (c *Client) endpoint(path string, params url.Values) string {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.config.APIKey)
	return c.config.BaseURL + path + "?" + params.Encode()
}

func (c *Client) getJSON(ctx context.Context, endpoint string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %w", ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")

	c.limiter.Take()

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s responded %s", ErrUpstream, req.URL.Host, resp.Status)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(target); err != nil {
		return fmt.Errorf("%w: decode response: %w", ErrUpstream, err)
	}
	return nil
}

// decodeOneOrMany accepts either a JSON array of T or a single T object.
func decodeOneOrMany[T any](body json.RawMessage) ([]T, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var many []T
		if err := json.Unmarshal(trimmed, &many); err != nil {
			return nil, fmt.Errorf("%w: decode list: %w", ErrUpstream, err)
		}
		return many, nil
	}

	var one T
	if err := json.Unmarshal(trimmed, &one); err != nil {
		return nil, fmt.Errorf("%w: decode object: %w", ErrUpstream, err)
	}
	return []T{one}, nil
}

func observe(operation string, err *error) func() {
	started := time.Now()
	return func() {
		metrics.ObserveUpstream(operation, *err, started)
	}
}
