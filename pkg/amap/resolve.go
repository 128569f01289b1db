package amap

import (
	"context"
	"net/url"
	"regexp"
	"strings"
)

// coordPattern matches a bare "lon,lat" pair of signed decimals.
// Deliberately permissive: any two comma-separated numbers qualify, so
// an input like "5,10" is taken as an already-resolved coordinate.
// Downstream consumers rely on this matching, so it stays as-is.
var coordPattern = regexp.MustCompile(`^-?\d+(\.\d+)?,-?\d+(\.\d+)?$`)

// Location is a resolved place: a "lon,lat" coordinate, the
// administrative region code when known, and a display name. A failed
// resolution has an empty Coordinate and keeps the raw input as Name.
type Location struct {
	Coordinate string
	AdminCode  string
	Name       string
}

// Resolved reports whether the location carries a usable coordinate.
func (l Location) Resolved() bool {
	return l.Coordinate != ""
}

// IsCoordinate reports whether s is a bare "lon,lat" pair.
func IsCoordinate(s string) bool {
	return coordPattern.MatchString(strings.TrimSpace(s))
}

// ResolveLocation turns free-form input (coordinate literal, address or
// POI name) into a Location. Attempts run strictly in order and the
// first success wins: coordinate literal, geocoding, POI keyword
// search. A transport or envelope fault at any step counts as a
// non-match for that step and the next fallback is tried
// unconditionally. When every attempt fails the returned Location is
// unresolved and carries the input as its Name.
func (c *Client) ResolveLocation(ctx context.Context, input, city string) Location {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Location{}
	}
	if coordPattern.MatchString(trimmed) {
		return Location{Coordinate: trimmed, Name: input}
	}

	attempts := []func(context.Context, string, string) (Location, bool){
		c.resolveByGeocode,
		c.resolveByPOI,
	}
	for _, attempt := range attempts {
		if loc, ok := attempt(ctx, input, city); ok {
			return loc
		}
	}
	return Location{Name: input}
}

// resolveByGeocode asks the geocoding endpoint for the input as an
// address and takes the first match.
func (c *Client) resolveByGeocode(ctx context.Context, input, city string) (Location, bool) {
	params := url.Values{}
	params.Set("address", input)
	params.Set("output", "JSON")
	if city != "" {
		params.Set("city", city)
	}

	var resp struct {
		v3Envelope
		Geocodes []struct {
			Location         string `json:"location"`
			Adcode           string `json:"adcode"`
			FormattedAddress string `json:"formatted_address"`
		} `json:"geocodes"`
	}
	if err := c.getJSON(ctx, V3, "/geocode/geo", params, &resp); err != nil {
		c.logger.Debug("geocode attempt failed", "input", input, "error", err)
		return Location{}, false
	}
	if resp.Err() != nil || len(resp.Geocodes) == 0 {
		return Location{}, false
	}

	g := resp.Geocodes[0]
	if g.Location == "" {
		return Location{}, false
	}
	return Location{Coordinate: g.Location, AdminCode: g.Adcode, Name: g.FormattedAddress}, true
}

// resolveByPOI falls back to a single-result POI keyword search.
func (c *Client) resolveByPOI(ctx context.Context, input, city string) (Location, bool) {
	params := url.Values{}
	params.Set("keywords", input)
	params.Set("offset", "1")
	if city != "" {
		params.Set("city", city)
		params.Set("citylimit", "true")
	} else {
		params.Set("citylimit", "false")
	}

	var resp struct {
		v3Envelope
		POIs []struct {
			Location string `json:"location"`
			Adcode   string `json:"adcode"`
			Name     string `json:"name"`
		} `json:"pois"`
	}
	if err := c.getJSON(ctx, V3, "/place/text", params, &resp); err != nil {
		c.logger.Debug("poi fallback failed", "input", input, "error", err)
		return Location{}, false
	}
	if resp.Err() != nil || len(resp.POIs) == 0 {
		return Location{}, false
	}

	p := resp.POIs[0]
	if p.Location == "" {
		return Location{}, false
	}
	return Location{Coordinate: p.Location, AdminCode: p.Adcode, Name: p.Name}, true
}
