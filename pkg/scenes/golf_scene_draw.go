package scenes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/decker502/golf/pkg/components"
	"github.com/decker502/golf/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	skyColor      = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	obstacleColor = color.RGBA{R: 110, G: 110, B: 120, A: 255}
	ballColor     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	flagColor     = color.RGBA{R: 220, G: 30, B: 30, A: 255}
	poleColor     = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	cupColor      = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	guideColor    = color.RGBA{R: 255, G: 255, B: 0, A: 200}
	hudBackground = color.RGBA{R: 0, G: 0, B: 0, A: 120}
)

// terrainColors 每种地形的填充颜色
var terrainColors = map[types.TerrainType]color.RGBA{
	types.TerrainFairway: {R: 70, G: 160, B: 60, A: 255},
	types.TerrainRough:   {R: 40, G: 110, B: 40, A: 255},
	types.TerrainSand:    {R: 220, G: 200, B: 130, A: 255},
	types.TerrainWater:   {R: 40, G: 90, B: 200, A: 255},
	types.TerrainGreen:   {R: 110, G: 200, B: 90, A: 255},
	types.TerrainHole:    {R: 110, G: 200, B: 90, A: 255},
}

// 绘制尺寸
const (
	flagPoleHeight = 50.0
	flagWidth      = 18.0
	flagHeight     = 12.0
	cupHalfWidth   = 5.0

	guideMinLength   = 20.0
	guidePowerFactor = 0.6

	hudLineHeight = 16
)

// Draw 绘制球场、球和 HUD
func (s *GolfScene) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)

	course := s.session.Course()
	if course == nil {
		return
	}

	s.drawTiles(screen, course)
	s.drawFlag(screen, course.HoleTile())
	s.drawObstacles(screen, course.Obstacles())
	s.drawBall(screen)
	if s.phase == phaseAiming && s.showGuide {
		s.drawAimGuide(screen)
	}
	s.drawHUD(screen)
}

// visible 判断世界坐标区间 [left, right) 是否与镜头相交
func (s *GolfScene) visible(left, right float64) bool {
	screenLeft := s.camera.WorldToScreenX(left)
	screenRight := s.camera.WorldToScreenX(right)
	return screenRight > 0 && screenLeft < s.windowWidth
}

func (s *GolfScene) drawTiles(screen *ebiten.Image, course *components.GolfCourse) {
	for _, tile := range course.Tiles() {
		if !s.visible(tile.StartX, tile.EndX) {
			continue
		}
		x := s.camera.WorldToScreenX(tile.StartX)
		vector.DrawFilledRect(screen,
			float32(x), float32(tile.GroundCenterY),
			float32(tile.Width()), float32(s.windowHeight-tile.GroundCenterY),
			terrainColors[tile.Type], false)
	}
}

// drawFlag 在球洞格子中央画球洞和旗杆
func (s *GolfScene) drawFlag(screen *ebiten.Image, hole components.TerrainTile) {
	if !s.visible(hole.StartX, hole.EndX) {
		return
	}
	cx := float32(s.camera.WorldToScreenX(hole.CenterX()))
	ground := float32(hole.GroundCenterY)

	vector.DrawFilledRect(screen, cx-cupHalfWidth, ground, cupHalfWidth*2, 4, cupColor, false)
	vector.StrokeLine(screen, cx, ground, cx, ground-flagPoleHeight, 2, poleColor, false)
	vector.DrawFilledRect(screen, cx, ground-flagPoleHeight, flagWidth, flagHeight, flagColor, false)
}

func (s *GolfScene) drawObstacles(screen *ebiten.Image, obstacles []components.AirObstacle) {
	for _, o := range obstacles {
		if !s.visible(o.Left, o.Right) {
			continue
		}
		vector.DrawFilledRect(screen,
			float32(s.camera.WorldToScreenX(o.Left)), float32(o.Top),
			float32(o.Width()), float32(o.Height()),
			obstacleColor, false)
	}
}

func (s *GolfScene) drawBall(screen *ebiten.Image) {
	ball := s.session.Ball()
	vector.DrawFilledCircle(screen,
		float32(s.camera.WorldToScreenX(ball.X())), float32(ball.Y()),
		float32(ball.Radius()), ballColor, true)
}

// drawAimGuide 沿出球方向画一条长度随力度变化的线
func (s *GolfScene) drawAimGuide(screen *ebiten.Image) {
	ball := s.session.Ball()
	length := guideMinLength + s.power*guidePowerFactor
	theta := s.angle * math.Pi / 180

	x0 := s.camera.WorldToScreenX(ball.X())
	y0 := ball.Y()
	x1 := x0 + length*math.Cos(theta)
	y1 := y0 - length*math.Sin(theta)
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 2, guideColor, true)
}

func (s *GolfScene) drawHUD(screen *ebiten.Image) {
	lines := s.hudLines()
	vector.DrawFilledRect(screen, 0, 0, float32(s.windowWidth), float32(len(lines)*hudLineHeight+8), hudBackground, false)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 10, 4+i*hudLineHeight)
	}
}

// hudLines 生成 HUD 文本
func (s *GolfScene) hudLines() []string {
	session := s.session

	best := "-"
	if relative, ok := session.BestRelativeToPar(); ok {
		best = formatRelative(relative)
	}

	lines := []string{
		fmt.Sprintf("Hole %d/%d   Par %d   Strokes %d   Round %s   Best %s",
			session.HoleNumber(), session.HolesPerRound(), session.Par(), session.Strokes(),
			formatRelative(session.RelativeToPar()), best),
		fmt.Sprintf("Club %s   Angle %.0f   Power %.0f   Lie %s",
			s.club, s.angle, s.power, session.Course().TileAtX(session.Ball().X()).Type),
		"[1/2/3] club  [<-/->] angle  [up/down] power  [space] shoot  [N] next  [R] new round  [G] guide",
	}
	if s.message != "" {
		lines = append(lines, s.message)
	}
	return lines
}
