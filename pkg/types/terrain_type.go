// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import (
	"fmt"
	"strings"
)

// TerrainType 定义地形格子的类型
type TerrainType int

const (
	// TerrainFairway 球道
	TerrainFairway TerrainType = iota
	// TerrainRough 长草区
	TerrainRough
	// TerrainSand 沙坑
	TerrainSand
	// TerrainWater 水障碍
	TerrainWater
	// TerrainGreen 果岭（球洞前的短草区）
	TerrainGreen
	// TerrainHole 球洞所在格子
	TerrainHole
)

// AllTerrainTypes 按声明顺序列出全部地形类型
var AllTerrainTypes = []TerrainType{
	TerrainFairway,
	TerrainRough,
	TerrainSand,
	TerrainWater,
	TerrainGreen,
	TerrainHole,
}

// String 返回地形类型的字符串表示（同时用作配置文件中的键名）
func (t TerrainType) String() string {
	switch t {
	case TerrainFairway:
		return "fairway"
	case TerrainRough:
		return "rough"
	case TerrainSand:
		return "sand"
	case TerrainWater:
		return "water"
	case TerrainGreen:
		return "green"
	case TerrainHole:
		return "hole"
	default:
		return "unknown"
	}
}

// IsHazard 返回该地形是否为障碍（球不能停留，需要回退到安全位置）
func (t TerrainType) IsHazard() bool {
	return t == TerrainWater
}

// ParseTerrainType 将配置中的地形名称解析为 TerrainType
//
// 参数:
//   - name: 地形名称（不区分大小写），如 "fairway"、"SAND"
//
// 返回:
//   - TerrainType: 解析结果
//   - error: 名称未知时返回错误
func ParseTerrainType(name string) (TerrainType, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, t := range AllTerrainTypes {
		if t.String() == normalized {
			return t, nil
		}
	}
	return TerrainFairway, fmt.Errorf("unknown terrain type: %q", name)
}
