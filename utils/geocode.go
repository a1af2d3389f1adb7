package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"
)

var geocodeClient = &http.Client{Timeout: 5 * time.Second}

func nominatimBaseURL() string {
	if v := os.Getenv("NOMINATIM_BASE_URL"); v != "" {
		return v
	}
	return "https://nominatim.openstreetmap.org"
}

// ReverseGeocode resolves coordinates to a human-readable address via the
// nominatim reverse endpoint. Lookup failure is not an error: the caller
// always gets a usable location string, falling back to the raw coordinate
// pair.
func ReverseGeocode(ctx context.Context, lat, lon float64) string {
	fallback := fmt.Sprintf("%v, %v", lat, lon)

	endpoint := fmt.Sprintf("%s/reverse?format=json&lat=%s&lon=%s",
		nominatimBaseURL(),
		url.QueryEscape(fmt.Sprintf("%v", lat)),
		url.QueryEscape(fmt.Sprintf("%v", lon)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fallback
	}
	// nominatim usage policy requires an identifying UA
	req.Header.Set("User-Agent", "ecocollect-api")

	resp, err := geocodeClient.Do(req)
	if err != nil {
		return fallback
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fallback
	}

	var body struct {
		DisplayName string `json:"display_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.DisplayName == "" {
		return fallback
	}
	return body.DisplayName
}
