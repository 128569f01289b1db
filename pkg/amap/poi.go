package amap

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

const (
	// DefaultRadius is the proximity search radius in meters.
	DefaultRadius = 3000

	// DefaultLimit is the result count requested from search endpoints.
	DefaultLimit = 10
)

// SearchMode discriminates the four POI search styles.
type SearchMode int

const (
	// SearchNone means no qualifying parameter was supplied.
	SearchNone SearchMode = iota

	// SearchID looks up a single POI by its amap id.
	SearchID

	// SearchPolygon searches for keywords inside a polygon.
	SearchPolygon

	// SearchAround searches for keywords around a center point.
	SearchAround

	// SearchText is a plain keyword search, optionally city-limited.
	SearchText
)

// SearchQuery carries the raw poi_search parameters.
type SearchQuery struct {
	Keywords string
	City     string
	Center   string
	Radius   int
	Polygon  string
	ID       string
	Limit    int
}

// Mode selects the active search mode from which parameters are
// present, applying the fixed priority id > polygon > around > text.
// Exactly one mode is active per query.
func (q SearchQuery) Mode() SearchMode {
	switch {
	case q.ID != "":
		return SearchID
	case q.Polygon != "":
		return SearchPolygon
	case q.Center != "":
		return SearchAround
	case q.Keywords != "":
		return SearchText
	default:
		return SearchNone
	}
}

// Label returns the human-readable mode tag used in result headers.
func (q SearchQuery) Label() string {
	switch q.Mode() {
	case SearchID:
		return fmt.Sprintf("ID查询(%s)", q.ID)
	case SearchPolygon:
		return "多边形区域搜索"
	case SearchAround:
		return fmt.Sprintf("周边%d米", q.radius())
	case SearchText:
		city := q.City
		if city == "" {
			city = "全国"
		}
		return fmt.Sprintf("城市(%s)", city)
	}
	return "未知"
}

func (q SearchQuery) radius() int {
	if q.Radius <= 0 {
		return DefaultRadius
	}
	return q.Radius
}

func (q SearchQuery) limit() int {
	if q.Limit <= 0 {
		return DefaultLimit
	}
	return q.Limit
}

// POI is one point-of-interest result. Several fields tolerate amap's
// habit of returning empty arrays for absent values. Distance is only
// populated by proximity searches.
type POI struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Address  Strs   `json:"address"`
	Tel      Strs   `json:"tel"`
	Distance Num    `json:"distance"`
	BizExt   BizExt `json:"biz_ext"`
}

// SearchPOI issues the request for the mode selected by q and returns
// the raw result list in upstream ranking order. Parameter-combination
// errors are detected before any network traffic.
func (c *Client) SearchPOI(ctx context.Context, q SearchQuery) ([]POI, error) {
	params := url.Values{}
	params.Set("output", "json")
	params.Set("extensions", "all")

	var path string
	switch q.Mode() {
	case SearchID:
		path = "/place/detail"
		params.Set("id", q.ID)

	case SearchPolygon:
		if q.Keywords == "" {
			return nil, &ParameterError{Message: "多边形搜索需要 keywords。"}
		}
		path = "/place/polygon"
		params.Set("polygon", q.Polygon)
		params.Set("keywords", q.Keywords)
		params.Set("offset", strconv.Itoa(q.limit()))
		params.Set("page", "1")

	case SearchAround:
		if q.Keywords == "" {
			return nil, &ParameterError{Message: "周边搜索需要 keywords。"}
		}
		path = "/place/around"
		params.Set("location", q.Center)
		params.Set("keywords", q.Keywords)
		params.Set("radius", strconv.Itoa(q.radius()))
		params.Set("sortrule", "distance")
		params.Set("offset", strconv.Itoa(q.limit()))
		params.Set("page", "1")

	case SearchText:
		path = "/place/text"
		params.Set("keywords", q.Keywords)
		params.Set("offset", strconv.Itoa(q.limit()))
		params.Set("page", "1")
		if q.City != "" {
			params.Set("city", q.City)
			params.Set("citylimit", "true")
		}

	default:
		return nil, &ParameterError{Message: "请至少提供 keywords, center, polygon 或 poi_id 其中之一。"}
	}

	c.logger.Debug("dispatching poi search", "mode", q.Label(), "path", path)

	var resp struct {
		v3Envelope
		POIs []POI `json:"pois"`
	}
	if err := c.getJSON(ctx, V3, path, params, &resp); err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}
	return resp.POIs, nil
}
