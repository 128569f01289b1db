package amap

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// fixLonLatOrder swaps a coordinate pair that looks latitude-first.
// Within amap's coverage latitude never exceeds 60 while longitude
// always does, so "39.92,116.41" is almost certainly a swapped pair.
func fixLonLatOrder(location string) string {
	parts := strings.Split(location, ",")
	if len(parts) != 2 {
		return location
	}
	a, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	b, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		return location
	}
	if a < b && b > 60 {
		return fmt.Sprintf("%s,%s", parts[1], parts[0])
	}
	return location
}

// ReverseGeocode resolves a "lon,lat" coordinate into a formatted
// address, correcting latitude-first input first.
func (c *Client) ReverseGeocode(ctx context.Context, location string) (string, error) {
	params := url.Values{}
	params.Set("location", fixLonLatOrder(location))
	params.Set("extensions", "base")
	params.Set("output", "JSON")

	var resp struct {
		v3Envelope
		Regeocode struct {
			FormattedAddress Strs `json:"formatted_address"`
		} `json:"regeocode"`
	}
	if err := c.getJSON(ctx, V3, "/geocode/regeo", params, &resp); err != nil {
		return "", err
	}
	if err := resp.Err(); err != nil {
		return "", err
	}
	return resp.Regeocode.FormattedAddress.Join(""), nil
}

// IPLocate resolves an IP address (or the caller's own when empty) to
// a province and city.
func (c *Client) IPLocate(ctx context.Context, ip string) (province, city string, err error) {
	params := url.Values{}
	if ip != "" {
		params.Set("ip", ip)
	}

	var resp struct {
		v3Envelope
		Province Strs `json:"province"`
		City     Strs `json:"city"`
	}
	if err := c.getJSON(ctx, V3, "/ip", params, &resp); err != nil {
		return "", "", err
	}
	if err := resp.Err(); err != nil {
		return "", "", err
	}
	return resp.Province.Join(""), resp.City.Join(""), nil
}
