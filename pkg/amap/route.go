package amap

import (
	"context"
	"net/url"
	"strconv"
)

// TravelMode is a normalized travel mode.
type TravelMode string

const (
	ModeDriving   TravelMode = "driving"
	ModeWalking   TravelMode = "walking"
	ModeTransit   TravelMode = "transit"
	ModeBicycling TravelMode = "bicycling"
)

// DefaultTransitCity is used when a transit request names no city.
const DefaultTransitCity = "北京"

// drivingStrategy pins the upstream routing preference for driving.
const drivingStrategy = "10"

// modeAliases maps every accepted spelling onto its canonical mode.
// Canonical names map to themselves, so normalization is total and
// idempotent over the known set.
var modeAliases = map[string]TravelMode{
	"driving":   ModeDriving,
	"car":       ModeDriving,
	"walking":   ModeWalking,
	"walk":      ModeWalking,
	"bicycling": ModeBicycling,
	"bike":      ModeBicycling,
	"ride":      ModeBicycling,
	"cycling":   ModeBicycling,
	"transit":   ModeTransit,
	"bus":       ModeTransit,
	"subway":    ModeTransit,
}

// ResolveMode normalizes a user-supplied mode, applying aliases. An
// unknown value is a terminal UnsupportedModeError naming the input.
func ResolveMode(mode string) (TravelMode, error) {
	if m, ok := modeAliases[mode]; ok {
		return m, nil
	}
	return "", &UnsupportedModeError{Mode: mode}
}

// routeSpec describes how one travel mode maps onto the upstream API.
type routeSpec struct {
	version APIVersion
	path    string
}

// routeTable is the dispatch table over the full TravelMode set.
var routeTable = map[TravelMode]routeSpec{
	ModeDriving:   {V3, "/direction/driving"},
	ModeWalking:   {V3, "/direction/walking"},
	ModeTransit:   {V3, "/direction/transit/integrated"},
	ModeBicycling: {V4, "/direction/bicycling"},
}

// Step is one raw navigation instruction of a Path. Road, Action and
// AssistantAction tolerate amap's empty-array stand-ins.
type Step struct {
	Instruction     string `json:"instruction"`
	Road            Strs   `json:"road"`
	Distance        Num    `json:"distance"`
	Action          Strs   `json:"action"`
	AssistantAction Strs   `json:"assistant_action"`
}

// Path is one driving/walking/bicycling route. TrafficLights, Tolls and
// Restriction are only populated for driving responses.
type Path struct {
	Duration      Num    `json:"duration"`
	Distance      Num    `json:"distance"`
	TrafficLights Num    `json:"traffic_lights"`
	Tolls         Num    `json:"tolls"`
	Restriction   Num    `json:"restriction"`
	Steps         []Step `json:"steps"`
}

// Stop is a named transit stop.
type Stop struct {
	Name string `json:"name"`
}

// Busline is one bus or subway line serving a transit segment.
type Busline struct {
	Name          string `json:"name"`
	DepartureStop Stop   `json:"departure_stop"`
	ArrivalStop   Stop   `json:"arrival_stop"`
	NumStops      Num    `json:"num_stops"`
}

// BusSegment carries the candidate lines for a bus leg.
type BusSegment struct {
	Buslines []Busline `json:"buslines"`
}

// RailwaySegment is a railway leg.
type RailwaySegment struct {
	Name          string `json:"name"`
	DepartureStop Stop   `json:"departure_stop"`
	ArrivalStop   Stop   `json:"arrival_stop"`
}

// WalkSegment is a walking leg.
type WalkSegment struct {
	Distance Num `json:"distance"`
}

// Segment is one leg of a transit plan. At most one variant is
// meaningfully populated; upstream keeps empty objects for the rest, so
// consumers must check the variant's own discriminating field.
type Segment struct {
	Bus     *BusSegment     `json:"bus,omitempty"`
	Railway *RailwaySegment `json:"railway,omitempty"`
	Walking *WalkSegment    `json:"walking,omitempty"`
}

// Transit is one ranked public-transit plan.
type Transit struct {
	Duration        Num       `json:"duration"`
	Cost            Num       `json:"cost"`
	WalkingDistance Num       `json:"walking_distance"`
	Segments        []Segment `json:"segments"`
}

// RouteResult is the normalized outcome of a route request across both
// response envelopes.
type RouteResult struct {
	Mode     TravelMode
	Path     *Path     // driving/walking/bicycling; nil when no route exists
	Transits []Transit // transit only; upstream ranking order preserved
}

// PlanRoute dispatches a route request for two resolved locations. The
// mode must already be normalized via ResolveMode. An empty upstream
// path list is a no-route result (nil Path), not an error.
func (c *Client) PlanRoute(ctx context.Context, origin, destination Location, mode TravelMode, city string, strategy int) (*RouteResult, error) {
	spec, ok := routeTable[mode]
	if !ok {
		return nil, &UnsupportedModeError{Mode: string(mode)}
	}

	params := url.Values{}
	params.Set("origin", origin.Coordinate)
	params.Set("destination", destination.Coordinate)
	if spec.version == V3 {
		params.Set("output", "JSON")
		params.Set("extensions", "all")
	}
	switch mode {
	case ModeDriving:
		params.Set("strategy", drivingStrategy)
	case ModeTransit:
		if city == "" {
			city = DefaultTransitCity
		}
		params.Set("city", city)
		params.Set("cityd", city)
		params.Set("strategy", strconv.Itoa(strategy))
	}

	c.logger.Debug("dispatching route request", "mode", mode, "version", spec.version, "path", spec.path)

	switch {
	case spec.version == V4:
		var resp struct {
			v4Envelope
			Data struct {
				Paths []Path `json:"paths"`
			} `json:"data"`
		}
		if err := c.getJSON(ctx, V4, spec.path, params, &resp); err != nil {
			return nil, err
		}
		if err := resp.Err(); err != nil {
			return nil, err
		}
		res := &RouteResult{Mode: mode}
		if len(resp.Data.Paths) > 0 {
			res.Path = &resp.Data.Paths[0]
		}
		return res, nil

	case mode == ModeTransit:
		var resp struct {
			v3Envelope
			Route struct {
				Transits []Transit `json:"transits"`
			} `json:"route"`
		}
		if err := c.getJSON(ctx, V3, spec.path, params, &resp); err != nil {
			return nil, err
		}
		if err := resp.Err(); err != nil {
			return nil, err
		}
		return &RouteResult{Mode: mode, Transits: resp.Route.Transits}, nil

	default:
		var resp struct {
			v3Envelope
			Route struct {
				Paths []Path `json:"paths"`
			} `json:"route"`
		}
		if err := c.getJSON(ctx, V3, spec.path, params, &resp); err != nil {
			return nil, err
		}
		if err := resp.Err(); err != nil {
			return nil, err
		}
		res := &RouteResult{Mode: mode}
		if len(resp.Route.Paths) > 0 {
			res.Path = &resp.Route.Paths[0]
		}
		return res, nil
	}
}
