package treasury_client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"mbspricer/internal/domain"
)

const DefaultBaseUrl = "https://www.ustreasuryyieldcurve.com/api/v1"

// maxLookbackDays bounds the walk backwards from weekends and market
// holidays, which publish as all-null snapshots.
const maxLookbackDays = 7

var snapshotYieldKeys = []string{
	"yield_1m",
	"yield_2m",
	"yield_3m",
	"yield_4m",
	"yield_6m",
	"yield_1y",
	"yield_2y",
	"yield_3y",
	"yield_5y",
	"yield_7y",
	"yield_10y",
	"yield_20y",
	"yield_30y",
}

type Client struct {
	HttpClient *http.Client
	BaseUrl    string
	Cache      Cache
}

func NewClient(baseUrl string, cache Cache) *Client {
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}
	if cache == nil {
		cache = NewMemoryCache()
	}
	return &Client{
		HttpClient: http.DefaultClient,
		BaseUrl:    baseUrl,
		Cache:      cache,
	}
}

func interestRateMonthsFromApi(in string) (int, error) {
	cleaned := strings.Replace(in, "yield_", "", 1)
	if len(cleaned) < 2 {
		return 0, fmt.Errorf("malformed yield key %q", in)
	}
	unit := cleaned[len(cleaned)-1]
	months, err := strconv.Atoi(cleaned[:len(cleaned)-1])
	if err != nil {
		return 0, fmt.Errorf("malformed yield key %q: %w", in, err)
	}

	if unit == 'y' {
		months *= 12
	}

	return months, nil
}

func (c *Client) getSnapshot(ctx context.Context, date time.Time) ([]byte, error) {
	tStr := date.Format(time.DateOnly)

	if out, ok := c.Cache.Get(tStr); ok {
		return []byte(out), nil
	}

	url := fmt.Sprintf("%s/yield_curve_snapshot?date=%s&offset=0", c.BaseUrl, tStr)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode != 200 {
		return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
	}

	// cache write failures are non-fatal
	_ = c.Cache.Set(tStr, string(responseBytes))

	return responseBytes, nil
}

func (c *Client) ratesOnDay(ctx context.Context, date time.Time) (map[int]float64, error) {
	responseBytes, err := c.getSnapshot(ctx, date)
	if err != nil {
		return nil, err
	}

	responseBody := []map[string]interface{}{}
	if err := json.Unmarshal(responseBytes, &responseBody); err != nil {
		return nil, fmt.Errorf("failed to parse yield curve snapshot: %w", err)
	}

	out := map[int]float64{}
	for _, row := range responseBody {
		for _, field := range snapshotYieldKeys {
			v, ok := row[field]
			if !ok || v == nil {
				continue
			}
			pct, ok := v.(float64)
			if !ok {
				return nil, fmt.Errorf("unexpected type %T for %s", v, field)
			}
			months, err := interestRateMonthsFromApi(field)
			if err != nil {
				return nil, err
			}
			out[months] = pct / 100
		}
	}

	return out, nil
}

// GetYieldCurveOnDay returns the treasury yield curve for the given
// date. Dates without published rates fall back to the most recent
// prior day, up to maxLookbackDays.
func (c *Client) GetYieldCurveOnDay(ctx context.Context, date time.Time) (*domain.InterestRateMap, error) {
	for attempt := 0; attempt <= maxLookbackDays; attempt++ {
		rates, err := c.ratesOnDay(ctx, date.AddDate(0, 0, -attempt))
		if err != nil {
			return nil, err
		}
		if len(rates) > 0 {
			return &domain.InterestRateMap{Rates: rates}, nil
		}
	}

	return nil, fmt.Errorf("no published rates within %d days of %s", maxLookbackDays, date.Format(time.DateOnly))
}
