package components

// GolfBall 高尔夫球的运动状态（世界坐标，像素）
//
// 球由当前这一洞的会话持有，物理函数通过指针原地修改它。
// 静止时（moving == false）速度视为无意义，只有 Stop/Reset 系列方法保证清零。
type GolfBall struct {
	radius float64

	x, y   float64 // 球心位置
	vx, vy float64 // 速度 px/s，vy < 0 表示向上

	safeX, safeY float64 // 最近一次合法停球位置

	moving bool
}

// NewGolfBall 在指定位置创建静止的球，安全位置初始化为该位置
//
// 参数:
//   - x, y: 初始球心位置
//   - radius: 半径（像素）
func NewGolfBall(x, y, radius float64) *GolfBall {
	return &GolfBall{
		radius: radius,
		x:      x,
		y:      y,
		safeX:  x,
		safeY:  y,
	}
}

// MarkSafePosition 将当前位置记为安全位置
// 只应在球静止于非障碍地形时调用
func (b *GolfBall) MarkSafePosition() {
	b.safeX = b.x
	b.safeY = b.y
}

// ResetToSafePosition 回到安全位置并停止运动
func (b *GolfBall) ResetToSafePosition() {
	b.x = b.safeX
	b.y = b.safeY
	b.Stop()
}

// ResetToTee 放到球座位置并停止运动
// 安全位置同时更新为球座，新一洞开始时不会回到上一洞的位置
func (b *GolfBall) ResetToTee(teeX, teeY float64) {
	b.x = teeX
	b.y = teeY
	b.Stop()
	b.MarkSafePosition()
}

// Launch 以给定速度分量发射
func (b *GolfBall) Launch(vx, vy float64) {
	b.vx = vx
	b.vy = vy
	b.moving = true
}

// UpdateFreeFlight 在竖直加速度下推进一步（显式欧拉积分）
//
// 参数:
//   - dt: 时间步长（秒）
//   - verticalAccel: 竖直加速度 px/s²（向下为正）
func (b *GolfBall) UpdateFreeFlight(dt, verticalAccel float64) {
	if !b.moving {
		return
	}
	b.vy += verticalAccel * dt
	b.x += b.vx * dt
	b.y += b.vy * dt
}

// SnapToGround 把球心放到地面接触高度，不改变速度
func (b *GolfBall) SnapToGround(groundY float64) {
	b.y = groundY
}

// Stop 停止运动并清零速度
func (b *GolfBall) Stop() {
	b.moving = false
	b.vx = 0
	b.vy = 0
}

// SetVelocity 设置速度分量，不改变运动标志
func (b *GolfBall) SetVelocity(vx, vy float64) {
	b.vx = vx
	b.vy = vy
}

// SetVelocityX 设置水平速度
func (b *GolfBall) SetVelocityX(vx float64) { b.vx = vx }

// SetVelocityY 设置竖直速度
func (b *GolfBall) SetVelocityY(vy float64) { b.vy = vy }

// Position 返回球心位置
func (b *GolfBall) Position() (float64, float64) { return b.x, b.y }

// X 返回球心 X
func (b *GolfBall) X() float64 { return b.x }

// Y 返回球心 Y
func (b *GolfBall) Y() float64 { return b.y }

// Velocity 返回速度分量
func (b *GolfBall) Velocity() (float64, float64) { return b.vx, b.vy }

// VelocityX 返回水平速度
func (b *GolfBall) VelocityX() float64 { return b.vx }

// VelocityY 返回竖直速度
func (b *GolfBall) VelocityY() float64 { return b.vy }

// SafePosition 返回安全位置
func (b *GolfBall) SafePosition() (float64, float64) { return b.safeX, b.safeY }

// Radius 返回半径
func (b *GolfBall) Radius() float64 { return b.radius }

// IsMoving 返回是否在运动
func (b *GolfBall) IsMoving() bool { return b.moving }
