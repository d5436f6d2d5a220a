package systems

import (
	"math"
)

const (
	// followThresholdRatio 球在屏幕上的 X 不超过窗口宽度的 40%
	followThresholdRatio = 0.4

	// arriveDistance 平移动画距离目标小于此值时视为到达
	arriveDistance = 5.0
)

// CameraSystem 管理水平镜头
//
// 两种工作方式：
//   - Follow: 立即跟随球，球越过阈值后镜头向右推进，球回到镜头左侧时向左回退
//   - MoveTo + Update: 以固定速度平移到目标位置（如开球前预览球洞）
//
// 镜头 X 始终限制在 [0, 球场终点 - 窗口宽度] 内。
type CameraSystem struct {
	x           float64
	windowWidth float64
	courseEndX  float64

	targetX     float64
	speed       float64
	isAnimating bool
}

// NewCameraSystem 创建镜头系统
//
// 参数:
//   - windowWidth: 窗口宽度（逻辑像素）
func NewCameraSystem(windowWidth float64) *CameraSystem {
	return &CameraSystem{windowWidth: windowWidth}
}

// Reset 新球洞开始时调用：记录球场终点并回到原点
func (cs *CameraSystem) Reset(courseEndX float64) {
	cs.courseEndX = courseEndX
	cs.x = 0
	cs.targetX = 0
	cs.isAnimating = false
}

// X 返回镜头左边缘的世界 X
func (cs *CameraSystem) X() float64 {
	return cs.x
}

// maxX 镜头允许的最大 X，球场比窗口窄时为 0
func (cs *CameraSystem) maxX() float64 {
	return math.Max(0, cs.courseEndX-cs.windowWidth)
}

func (cs *CameraSystem) clampX(x float64) float64 {
	return math.Max(0, math.Min(cs.maxX(), x))
}

// Follow 跟随球
// 会打断正在进行的平移动画
func (cs *CameraSystem) Follow(ballX float64) {
	cs.isAnimating = false

	threshold := cs.windowWidth * followThresholdRatio
	relative := ballX - cs.x
	if relative > threshold || relative < 0 {
		cs.x = ballX - threshold
	}
	cs.x = cs.clampX(cs.x)
}

// MoveTo 以指定速度平移到目标位置
//
// 参数:
//   - targetX: 目标 X（世界坐标，会被限制在合法范围内）
//   - speed: 移动速度（像素/秒）
func (cs *CameraSystem) MoveTo(targetX, speed float64) {
	cs.targetX = cs.clampX(targetX)
	cs.speed = speed
	cs.isAnimating = true
}

// Update 推进平移动画
func (cs *CameraSystem) Update(dt float64) {
	if !cs.isAnimating {
		return
	}

	distance := cs.targetX - cs.x
	if math.Abs(distance) < arriveDistance {
		cs.x = cs.targetX
		cs.isAnimating = false
		return
	}

	step := cs.speed * dt
	if step >= math.Abs(distance) {
		cs.x = cs.targetX
		cs.isAnimating = false
		return
	}
	cs.x = cs.clampX(cs.x + math.Copysign(step, distance))
}

// StopAnimation 停止平移动画并立即到达目标
func (cs *CameraSystem) StopAnimation() {
	if !cs.isAnimating {
		return
	}
	cs.isAnimating = false
	cs.x = cs.targetX
}

// IsAnimating 返回是否正在平移
func (cs *CameraSystem) IsAnimating() bool {
	return cs.isAnimating
}

// WorldToScreenX 世界 X 转换为屏幕 X
func (cs *CameraSystem) WorldToScreenX(worldX float64) float64 {
	return worldX - cs.x
}
