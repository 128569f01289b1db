package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amaptools/amapmcp/pkg/amap"
)

const poiListJSON = `{
	"status": "1",
	"info": "OK",
	"pois": [
		{
			"id": "B000A7BD6C",
			"name": "星巴克(望京店)",
			"type": "餐饮服务;咖啡厅;星巴克咖啡",
			"address": "阜通东大街6号",
			"tel": "010-12345678",
			"distance": "850",
			"biz_ext": {"rating": "4.5", "cost": "45.00"}
		},
		{
			"id": "B000A7BD6D",
			"name": "星巴克(国贸店)",
			"type": "餐饮服务;咖啡厅",
			"address": [],
			"tel": [],
			"biz_ext": {"rating": [], "cost": []}
		}
	]
}`

func TestHandlePoiSearchNoKey(t *testing.T) {
	f := newFakeUpstream()
	r := newKeylessRegistry(t, f)

	res, err := r.HandlePoiSearch(context.Background(), callReq("poi_search", map[string]any{
		"keywords": "咖啡",
	}))
	require.NoError(t, err)
	assert.Equal(t, "❌ 错误: 未配置 AMAP_API_KEY。", resultText(t, res))
	assert.Zero(t, f.requestCount())
}

func TestHandlePoiSearchNoParameters(t *testing.T) {
	f := newFakeUpstream()
	r := newTestRegistry(t, f)

	res, err := r.HandlePoiSearch(context.Background(), callReq("poi_search", map[string]any{}))
	require.NoError(t, err)
	assert.Equal(t, "❌ 错误: 请至少提供 keywords, center, polygon 或 poi_id 其中之一。", resultText(t, res))
	assert.Zero(t, f.requestCount())
}

func TestHandlePoiSearchAroundRequiresKeywords(t *testing.T) {
	f := newFakeUpstream()
	r := newTestRegistry(t, f)

	res, err := r.HandlePoiSearch(context.Background(), callReq("poi_search", map[string]any{
		"center": "116.48,39.99",
	}))
	require.NoError(t, err)
	assert.Equal(t, "❌ 错误: 周边搜索需要 keywords。", resultText(t, res))
}

func TestHandlePoiSearchIDTakesPriority(t *testing.T) {
	f := newFakeUpstream()
	f.responses["/place/detail"] = poiListJSON
	r := newTestRegistry(t, f)

	res, err := r.HandlePoiSearch(context.Background(), callReq("poi_search", map[string]any{
		"poi_id":   "B000A7BD6C",
		"keywords": "咖啡",
		"center":   "116.48,39.99",
		"polygon":  "116.4,39.9|116.5,39.9|116.5,40.0",
	}))
	require.NoError(t, err)

	assert.Equal(t, []string{"/place/detail"}, f.paths)
	assert.Equal(t, "B000A7BD6C", f.query("id"))
	assert.Contains(t, resultText(t, res), "🔍 [ID查询(B000A7BD6C)] 找到 2 个结果:")
}

func TestHandlePoiSearchAroundDefaults(t *testing.T) {
	f := newFakeUpstream()
	f.responses["/place/around"] = poiListJSON
	r := newTestRegistry(t, f)

	res, err := r.HandlePoiSearch(context.Background(), callReq("poi_search", map[string]any{
		"keywords": "咖啡",
		"center":   "116.48,39.99",
	}))
	require.NoError(t, err)

	assert.Equal(t, []string{"/place/around"}, f.paths)
	assert.Equal(t, "116.48,39.99", f.query("location"))
	assert.Equal(t, "3000", f.query("radius"))
	assert.Equal(t, "distance", f.query("sortrule"))
	assert.Equal(t, "10", f.query("offset"))
	assert.Contains(t, resultText(t, res), "🔍 [周边3000米] 找到 2 个结果:")
}

func TestHandlePoiSearchTextRendering(t *testing.T) {
	f := newFakeUpstream()
	f.responses["/place/text"] = poiListJSON
	r := newTestRegistry(t, f)

	res, err := r.HandlePoiSearch(context.Background(), callReq("poi_search", map[string]any{
		"keywords": "星巴克",
		"city":     "北京",
	}))
	require.NoError(t, err)

	assert.Equal(t, "北京", f.query("city"))
	assert.Equal(t, "true", f.query("citylimit"))

	out := resultText(t, res)
	assert.Contains(t, out, "🔍 [城市(北京)] 找到 2 个结果:")
	assert.Contains(t, out, "1. **星巴克(望京店)** (📏 距中心 850米)")
	assert.Contains(t, out, "📍 阜通东大街6号")
	assert.Contains(t, out, "🏷️ 餐饮服务 | 🆔 B000A7BD6C | 📞 010-12345678")
	assert.Contains(t, out, "⭐ 评分: 4.5分 | 💰 人均: ¥45.00")

	// The second POI carries empty-array placeholders everywhere.
	assert.Contains(t, out, "2. **星巴克(国贸店)**\n   📍 无地址")
	assert.NotContains(t, strings.Split(out, "2. ")[1], "⭐")
}

func TestHandlePoiSearchEmptyResults(t *testing.T) {
	f := newFakeUpstream()
	f.responses["/place/text"] = `{"status":"1","info":"OK","pois":[]}`
	r := newTestRegistry(t, f)

	res, err := r.HandlePoiSearch(context.Background(), callReq("poi_search", map[string]any{
		"keywords": "不存在的店xyz",
	}))
	require.NoError(t, err)
	assert.Equal(t, "⚠️ 在[城市(全国)]未找到相关结果。", resultText(t, res))
}

func TestHandlePoiSearchBusinessError(t *testing.T) {
	f := newFakeUpstream()
	f.responses["/place/text"] = `{"status":"0","info":"INVALID_USER_KEY"}`
	r := newTestRegistry(t, f)

	res, err := r.HandlePoiSearch(context.Background(), callReq("poi_search", map[string]any{
		"keywords": "咖啡",
	}))
	require.NoError(t, err)
	assert.Equal(t, "❌ 高德API错误: INVALID_USER_KEY", resultText(t, res))
}

func TestFormatPOIListNameFallback(t *testing.T) {
	out := formatPOIList("城市(全国)", []amap.POI{{ID: "X1"}})
	assert.Contains(t, out, "1. **未知**")
	assert.Contains(t, out, "📍 无地址")
}

func TestIsRating(t *testing.T) {
	assert.True(t, isRating("4.5"))
	assert.True(t, isRating("5"))
	assert.False(t, isRating(""))
	assert.False(t, isRating("好评"))
	assert.False(t, isRating("4.5分"))
}
