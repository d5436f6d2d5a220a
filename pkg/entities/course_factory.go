package entities

import (
	"math"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/decker502/golf/pkg/components"
	"github.com/decker502/golf/pkg/types"
)

// 地形与标准杆
const (
	// heightStepPixels 相邻格子之间的最大高度变化（随机量居中后乘以该值）
	heightStepPixels = 10.0

	// pixelsPerStrokeGuess 生成时粗略估算标准杆使用的每杆距离
	pixelsPerStrokeGuess = 200.0

	// greenTilesBeforeHole 球洞前的果岭格子数
	greenTilesBeforeHole = 2

	// 地形概率分档（百分比，左闭右开累计）
	waterMaxPercentage = 10
	sandMaxPercentage  = 25
	roughMaxPercentage = 35
)

// 空中障碍物
const (
	minObstaclesPerHole = 1
	maxObstaclesPerHole = 3

	obstacleMinHeightPixels = 30.0
	obstacleMaxHeightPixels = 60.0
	obstacleWidthRatio      = 0.6

	// minTilesForObstacles 格子数少于此值时不生成障碍物
	minTilesForObstacles = 6

	// 障碍物避开开头的球座格子和末尾的果岭/球洞格子
	obstacleFirstTileIndex   = 2
	obstacleReservedEndTiles = 4

	obstacleTopClearancePixels    = 20.0
	obstacleBottomClearancePixels = 40.0
)

var courseLogger = log.WithPrefix("CourseGenerator")

// GenerateSingleHole 随机生成一个球洞
//
// 相同种子的 rng 产生完全相同的球场。随机数的消耗顺序固定：
// 先抽取球洞位置，然后每个格子依次抽取高度变化和地形（果岭/球洞格子不抽地形），
// 最后抽取障碍物数量以及每个障碍物的格子、高度和位置。
//
// 参数:
//   - rng: 随机数来源
//   - tileCount: 格子数量
//   - tileWidth: 格子宽度（像素）
//   - baseGroundY: 基准地面高度（像素）
//   - maxHeightOffset: 地面相对基准高度的最大偏移（像素）
//
// 返回:
//   - *components.GolfCourse: 生成的球洞
func GenerateSingleHole(rng *rand.Rand, tileCount int, tileWidth, baseGroundY, maxHeightOffset float64) *components.GolfCourse {
	holeIndex := pickHoleIndex(rng, tileCount)
	greenStart := max(1, holeIndex-greenTilesBeforeHole)
	greenEnd := holeIndex - 1

	tiles := make([]components.TerrainTile, 0, tileCount)
	currentX := 0.0
	heightOffset := 0.0

	for i := 0; i < tileCount; i++ {
		heightOffset += (rng.Float64() - 0.5) * heightStepPixels
		heightOffset = math.Max(-maxHeightOffset, math.Min(maxHeightOffset, heightOffset))

		var terrain types.TerrainType
		switch {
		case i == holeIndex:
			terrain = types.TerrainHole
		case i >= greenStart && i <= greenEnd:
			terrain = types.TerrainGreen
		default:
			terrain = randomTerrain(rng)
		}

		tiles = append(tiles, components.NewTerrainTile(currentX, currentX+tileWidth, baseGroundY+heightOffset, terrain))
		currentX += tileWidth
	}

	teeX := tileWidth * components.TeeOffsetRatio
	cupX := float64(holeIndex)*tileWidth + tileWidth*0.5
	holeLength := math.Max(0, cupX-teeX)
	parGuess := int(math.Max(components.MinPar, math.Round(holeLength/pixelsPerStrokeGuess)))

	obstacles := generateAirObstacles(rng, tiles, maxHeightOffset, tileWidth)

	courseLogger.Debug("generated hole",
		"tiles", tileCount, "hole", holeIndex, "length", holeLength,
		"parGuess", parGuess, "obstacles", len(obstacles))

	return components.NewGolfCourse(tiles, obstacles, parGuess)
}

// pickHoleIndex 在后半段 [n/2, n-2] 中选择球洞格子
func pickHoleIndex(rng *rand.Rand, tileCount int) int {
	minIndex := tileCount / 2
	maxIndex := tileCount - 2
	return minIndex + rng.Intn(max(1, maxIndex-minIndex+1))
}

// randomTerrain 按固定概率抽取普通格子的地形
func randomTerrain(rng *rand.Rand) types.TerrainType {
	roll := rng.Intn(100)
	switch {
	case roll < waterMaxPercentage:
		return types.TerrainWater
	case roll < sandMaxPercentage:
		return types.TerrainSand
	case roll < roughMaxPercentage:
		return types.TerrainRough
	default:
		return types.TerrainFairway
	}
}

// generateAirObstacles 在球座与球洞之间的格子上方放置 1~3 个障碍物
// 竖直可用区间不合法（下限不低于上限）的障碍物直接跳过
func generateAirObstacles(rng *rand.Rand, tiles []components.TerrainTile, maxHeightOffset, tileWidth float64) []components.AirObstacle {
	if len(tiles) < minTilesForObstacles {
		return nil
	}

	count := minObstaclesPerHole + rng.Intn(maxObstaclesPerHole-minObstaclesPerHole+1)
	lastIndex := len(tiles) - 1

	obstacles := make([]components.AirObstacle, 0, count)
	for i := 0; i < count; i++ {
		tileIndex := obstacleFirstTileIndex + rng.Intn(max(1, lastIndex-obstacleReservedEndTiles))
		tile := tiles[tileIndex]

		width := tileWidth * obstacleWidthRatio
		centerX := tile.CenterX()

		topLimit := tile.GroundCenterY - maxHeightOffset - obstacleTopClearancePixels
		bottomLimit := tile.GroundCenterY - obstacleBottomClearancePixels
		if bottomLimit <= topLimit {
			courseLogger.Debug("skipping obstacle with empty band", "tile", tileIndex,
				"top", topLimit, "bottom", bottomLimit)
			continue
		}

		height := obstacleMinHeightPixels + rng.Float64()*(obstacleMaxHeightPixels-obstacleMinHeightPixels)
		top := topLimit + rng.Float64()*(bottomLimit-topLimit-height)
		top = math.Max(top, topLimit)

		obstacles = append(obstacles, components.NewAirObstacle(
			centerX-width*0.5,
			centerX+width*0.5,
			top,
			top+height,
		))
	}
	return obstacles
}
