package tools

import (
	"errors"
	"fmt"

	"github.com/amaptools/amapmcp/pkg/amap"
)

// noKeyText is the immediate response when no API key is configured;
// no upstream traffic is attempted.
const noKeyText = "Error: No API Key"

// routeErrorText renders a route planning failure as agent-facing text.
func routeErrorText(err error) string {
	var be *amap.BusinessError
	var me *amap.UnsupportedModeError
	switch {
	case errors.As(err, &me):
		return fmt.Sprintf("不支持的模式: %s", me.Mode)
	case errors.As(err, &be):
		return fmt.Sprintf("API错误: %s", be.Message)
	default:
		return fmt.Sprintf("Request Error: %s", err)
	}
}

// poiErrorText renders a POI search failure as agent-facing text.
func poiErrorText(err error) string {
	var pe *amap.ParameterError
	var te *amap.TransportError
	var be *amap.BusinessError
	switch {
	case errors.As(err, &pe):
		return fmt.Sprintf("❌ 错误: %s", pe.Message)
	case errors.As(err, &te):
		if te.StatusCode != 0 {
			return fmt.Sprintf("❌ HTTP请求失败: %d", te.StatusCode)
		}
		return fmt.Sprintf("❌ 运行异常: %s", te.Detail)
	case errors.As(err, &be):
		return fmt.Sprintf("❌ 高德API错误: %s", be.Message)
	default:
		return fmt.Sprintf("❌ 运行异常: %s", err)
	}
}
