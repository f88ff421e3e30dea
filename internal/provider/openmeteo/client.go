package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.open-meteo.com"

// Client fetches the current ambient temperature used by the goal
// calculator's weather adjustment.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

type forecastResponse struct {
	Current struct {
		Temperature2M *float64 `json:"temperature_2m"`
	} `json:"current"`
}

func (c *Client) CurrentTemperature(ctx context.Context, latitude, longitude float64) (float64, error) {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}

	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(latitude, 'f', 4, 64))
	query.Set("longitude", strconv.FormatFloat(longitude, 'f', 4, 64))
	query.Set("current", "temperature_2m")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/v1/forecast?"+query.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("create open-meteo request: %w", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("execute open-meteo request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("read open-meteo response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("open-meteo request failed with status %d", resp.StatusCode)
	}

	var parsed forecastResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return 0, fmt.Errorf("decode open-meteo response: %w", err)
	}
	if parsed.Current.Temperature2M == nil {
		return 0, fmt.Errorf("open-meteo response missing current temperature")
	}
	return *parsed.Current.Temperature2M, nil
}
