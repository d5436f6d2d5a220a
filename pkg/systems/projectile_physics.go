package systems

import (
	"math"

	"github.com/decker502/golf/pkg/components"
	"github.com/decker502/golf/pkg/config"
)

// minSinDoubleAngle sin(2θ) 不超过此值时视为无法产生前向射程（θ 接近 0° 或 90°）
const minSinDoubleAngle = 1e-9

// ProjectilePhysics 球的逐帧弹道模拟
//
// 不持有任何随时间变化的状态：每次调用只读取传入的球、地形和 dt，
// 并原地修改球。所有调校常量来自 config.PhysicsConfig。
type ProjectilePhysics struct {
	cfg config.PhysicsConfig
}

// NewProjectilePhysics 创建弹道模拟
//
// 参数:
//   - cfg: 物理参数（重力、反弹、摩擦、障碍物阻尼）
//
// 返回:
//   - *ProjectilePhysics: 弹道模拟实例
func NewProjectilePhysics(cfg config.PhysicsConfig) *ProjectilePhysics {
	return &ProjectilePhysics{cfg: cfg}
}

// Gravity 返回基础重力加速度
func (p *ProjectilePhysics) Gravity() float64 {
	return p.cfg.Gravity
}

// UpdateBallWithTerrain 推进一帧
//
// 流程:
//  1. 球静止时直接返回 false，不做任何修改
//  2. 上升阶段（vy < 0）使用上升重力倍率，否则使用下降倍率
//  3. 显式欧拉积分一步
//  4. 到达或穿过地面时贴地，竖直速度超过阈值则按恢复系数反弹，
//     否则竖直速度清零并按地形摩擦衰减水平速度，低于停球速度时停球
//
// 参数:
//   - ball: 球（原地修改）
//   - tile: 球下方的地形格子
//   - groundY: 球心接触地面时的 Y（通常为地面高度减去半径）
//   - dt: 时间步长（秒）
//
// 返回:
//   - bool: 本帧结束后球是否仍在运动
func (p *ProjectilePhysics) UpdateBallWithTerrain(ball *components.GolfBall, tile components.TerrainTile, groundY, dt float64) bool {
	if !ball.IsMoving() {
		return false
	}

	multiplier := p.cfg.DescentGravityMultiplier
	if ball.VelocityY() < 0 {
		multiplier = p.cfg.AscentGravityMultiplier
	}
	ball.UpdateFreeFlight(dt, p.cfg.Gravity*multiplier)

	if ball.Y() < groundY {
		return true
	}

	ball.SnapToGround(groundY)

	vy := ball.VelocityY()
	if math.Abs(vy) > p.cfg.BounceThreshold {
		ball.SetVelocityY(-vy * p.cfg.BounceRestitution)
		return true
	}

	ball.SetVelocityY(0)
	vx := ball.VelocityX() * p.cfg.RollFrictionFor(tile.Type)
	ball.SetVelocityX(vx)
	if math.Abs(vx) < p.cfg.StopSpeed {
		ball.Stop()
		return false
	}
	return true
}

// ComputeInitialSpeed 由目标平地射程反求出球速度
//
// 无阻力射程公式 range = v²·sin(2θ)/g 的逆运算。
//
// 参数:
//   - targetRange: 目标射程（像素）
//   - angleDegrees: 出球角（度）
//
// 返回:
//   - float64: 出球速度 px/s；sin(2θ) <= 0 或射程不为正时返回 0，表示瞄准无效
func (p *ProjectilePhysics) ComputeInitialSpeed(targetRange, angleDegrees float64) float64 {
	sin2 := math.Sin(2 * degreesToRadians(angleDegrees))
	if sin2 <= minSinDoubleAngle || targetRange <= 0 {
		return 0
	}
	return math.Sqrt(targetRange * p.cfg.Gravity / sin2)
}

// HandleAirObstacleCollisions 处理球与空中障碍物的碰撞
//
// 对每个障碍物取矩形上离球心最近的点，距离平方不超过半径平方即视为碰撞。
// 最近点落在上/下边且球心位于该边外侧时为竖直碰撞：竖直速度反向，两个分量都乘以阻尼；
// 其余情况为侧向碰撞：水平速度反向，两个分量都乘以阻尼。
// 每帧只处理按顺序第一个发生碰撞的障碍物。
//
// 参数:
//   - ball: 球（原地修改速度）
//   - obstacles: 障碍物列表
//
// 返回:
//   - bool: 是否发生了碰撞
func (p *ProjectilePhysics) HandleAirObstacleCollisions(ball *components.GolfBall, obstacles []components.AirObstacle) bool {
	x, y := ball.Position()
	radius := ball.Radius()
	damping := p.cfg.ObstacleDamping

	for _, obstacle := range obstacles {
		closestX, closestY := obstacle.ClosestPoint(x, y)
		dx := x - closestX
		dy := y - closestY
		if dx*dx+dy*dy > radius*radius {
			continue
		}

		vx, vy := ball.Velocity()
		if isVerticalContact(obstacle, y, closestY) {
			ball.SetVelocity(vx*damping, -vy*damping)
		} else {
			ball.SetVelocity(-vx*damping, vy*damping)
		}
		return true
	}
	return false
}

// isVerticalContact 最近点在上边且球心不低于上边，或最近点在下边且球心不高于下边
func isVerticalContact(obstacle components.AirObstacle, centerY, closestY float64) bool {
	if closestY == obstacle.Top && centerY <= obstacle.Top {
		return true
	}
	return closestY == obstacle.Bottom && centerY >= obstacle.Bottom
}

// ComputeMaximumHeightOffsetForCourse 计算球场生成时允许的地面起伏上限
//
// 取挖起杆满力度、球道球位、最大出球角时的顶点高度 H = v²·sin²θ / (2g)，
// 乘以安全系数，并且不低于配置的下限。没有挖起杆时直接返回下限。
//
// 参数:
//   - wedge: 挖起杆
//   - course: 球场参数（出球角、安全系数、下限）
//   - maxPower: 最大力度百分比
//   - fairwayMultiplier: 球道地形系数
//
// 返回:
//   - float64: 地面起伏上限（像素）
func (p *ProjectilePhysics) ComputeMaximumHeightOffsetForCourse(
	wedge *components.GolfClub,
	course config.CourseConfig,
	maxPower, fairwayMultiplier float64,
) float64 {
	if wedge == nil {
		return course.MinHeightOffsetPixels
	}

	wedgeRange := wedge.ComputeShot(components.ShotContext{
		PowerPercentage:           maxPower,
		TerrainDistanceMultiplier: fairwayMultiplier,
	}).ExpectedHorizontalRangePixels

	speed := p.ComputeInitialSpeed(wedgeRange, course.EnvelopeAngleDegrees)
	sinTheta := math.Sin(degreesToRadians(course.EnvelopeAngleDegrees))
	apex := speed * speed * sinTheta * sinTheta / (2 * p.cfg.Gravity)

	return math.Max(course.MinHeightOffsetPixels, apex*course.HeightSafetyFactor)
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
