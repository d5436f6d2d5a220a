package systems

import (
	"math"
	"testing"

	"github.com/decker502/golf/pkg/components"
	"github.com/decker502/golf/pkg/config"
	"github.com/decker502/golf/pkg/types"
	"pgregory.net/rapid"
)

func newTestPhysics() *ProjectilePhysics {
	return NewProjectilePhysics(config.DefaultGolfConfig().Physics)
}

func flatTile(terrain types.TerrainType) components.TerrainTile {
	return components.NewTerrainTile(0, 10000, 300, terrain)
}

// TestUpdateBallWithTerrain_AtRestIsNoop 静止的球不受任何 dt 影响
func TestUpdateBallWithTerrain_AtRestIsNoop(t *testing.T) {
	physics := newTestPhysics()

	rapid.Check(t, func(t *rapid.T) {
		dt := rapid.Float64Range(0, 10).Draw(t, "dt")
		vx := rapid.Float64Range(-500, 500).Draw(t, "vx")
		vy := rapid.Float64Range(-500, 500).Draw(t, "vy")

		ball := components.NewGolfBall(100, 200, 6)
		ball.SetVelocity(vx, vy)

		if physics.UpdateBallWithTerrain(ball, flatTile(types.TerrainFairway), 294, dt) {
			t.Fatalf("expected false for a ball at rest")
		}
		if x, y := ball.Position(); x != 100 || y != 200 {
			t.Fatalf("position changed: (%v, %v)", x, y)
		}
		if gx, gy := ball.Velocity(); gx != vx || gy != vy {
			t.Fatalf("velocity changed: (%v, %v)", gx, gy)
		}
	})
}

// TestUpdateBallWithTerrain_ShotComesToRest 发射后反复推进直到停球
func TestUpdateBallWithTerrain_ShotComesToRest(t *testing.T) {
	physics := newTestPhysics()
	tile := flatTile(types.TerrainFairway)
	const groundY = 294.0

	ball := components.NewGolfBall(0, groundY, 6)
	ball.Launch(100, -200)

	steps := 0
	for physics.UpdateBallWithTerrain(ball, tile, groundY, 1.0/120) {
		steps++
		if steps > 100000 {
			t.Fatal("ball never stopped")
		}
	}

	if vx := ball.VelocityX(); vx != 0 && math.Abs(vx) >= 10 {
		t.Errorf("expected final vx below stop speed, got %v", vx)
	}
	if ball.Y() != groundY {
		t.Errorf("expected ball at ground %v, got %v", groundY, ball.Y())
	}
	if ball.IsMoving() {
		t.Error("ball should not be moving")
	}
	if ball.X() <= 0 {
		t.Errorf("ball should have travelled forward, x = %v", ball.X())
	}
}

func TestUpdateBallWithTerrain_GroundContact(t *testing.T) {
	physics := newTestPhysics()
	const dt = 0.01
	const groundY = 294.0

	t.Run("fast landing bounces", func(t *testing.T) {
		ball := components.NewGolfBall(0, groundY-1, 6)
		ball.Launch(50, 200)

		if !physics.UpdateBallWithTerrain(ball, flatTile(types.TerrainFairway), groundY, dt) {
			t.Fatal("bouncing ball should keep moving")
		}
		want := -(200 + 420*1.2*dt) * 0.35
		if math.Abs(ball.VelocityY()-want) > 1e-9 {
			t.Errorf("expected vy = %v, got %v", want, ball.VelocityY())
		}
		if ball.Y() != groundY {
			t.Errorf("expected snap to ground, got y = %v", ball.Y())
		}
		if ball.VelocityX() != 50 {
			t.Errorf("bounce should not change vx, got %v", ball.VelocityX())
		}
	})

	t.Run("ascent uses lighter gravity", func(t *testing.T) {
		ball := components.NewGolfBall(0, 100, 6)
		ball.Launch(0, -100)
		physics.UpdateBallWithTerrain(ball, flatTile(types.TerrainFairway), groundY, dt)

		want := -100 + 420*0.8*dt
		if math.Abs(ball.VelocityY()-want) > 1e-9 {
			t.Errorf("expected vy = %v, got %v", want, ball.VelocityY())
		}
	})

	frictionTests := []struct {
		terrain  types.TerrainType
		friction float64
	}{
		{types.TerrainFairway, 0.96},
		{types.TerrainHole, 0.96},
		{types.TerrainRough, 0.90},
		{types.TerrainSand, 0.80},
		{types.TerrainGreen, 0.92},
	}
	for _, tt := range frictionTests {
		t.Run("rolling on "+tt.terrain.String(), func(t *testing.T) {
			ball := components.NewGolfBall(0, groundY, 6)
			ball.Launch(100, 0)

			if !physics.UpdateBallWithTerrain(ball, flatTile(tt.terrain), groundY, dt) {
				t.Fatal("rolling ball above stop speed should keep moving")
			}
			if ball.VelocityY() != 0 {
				t.Errorf("expected vy = 0 while rolling, got %v", ball.VelocityY())
			}
			if want := 100 * tt.friction; math.Abs(ball.VelocityX()-want) > 1e-9 {
				t.Errorf("expected vx = %v, got %v", want, ball.VelocityX())
			}
		})
	}

	t.Run("slow roll stops", func(t *testing.T) {
		ball := components.NewGolfBall(0, groundY, 6)
		ball.Launch(10, 0)

		if physics.UpdateBallWithTerrain(ball, flatTile(types.TerrainSand), groundY, dt) {
			t.Fatal("expected the ball to stop")
		}
		if vx, vy := ball.Velocity(); vx != 0 || vy != 0 {
			t.Errorf("expected zero velocity, got (%v, %v)", vx, vy)
		}
	})
}

func TestComputeInitialSpeed(t *testing.T) {
	physics := newTestPhysics()

	tests := []struct {
		name  string
		rng   float64
		angle float64
		zero  bool
	}{
		{"zero range", 0, 45, true},
		{"negative range", -10, 45, true},
		{"vertical shot", 1000, 90, true},
		{"flat shot", 1000, 0, true},
		{"backwards angle", 1000, 120, true},
		{"forty five degrees", 1000, 45, false},
		{"shallow angle", 200, 15, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := physics.ComputeInitialSpeed(tt.rng, tt.angle)
			if tt.zero {
				if v != 0 {
					t.Errorf("expected sentinel 0, got %v", v)
				}
				return
			}
			if v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
				t.Fatalf("expected positive finite speed, got %v", v)
			}
			back := v * v * math.Sin(2*tt.angle*math.Pi/180) / 420
			if math.Abs(back-tt.rng) > 1e-6*tt.rng {
				t.Errorf("range round trip = %v, want %v", back, tt.rng)
			}
		})
	}
}

// TestComputeInitialSpeed_FlightRoundTrip 按反求的速度在恒定重力下积分，落地点回到目标射程
func TestComputeInitialSpeed_FlightRoundTrip(t *testing.T) {
	physics := newTestPhysics()
	g := physics.Gravity()

	rapid.Check(t, func(t *rapid.T) {
		target := rapid.Float64Range(20, 400).Draw(t, "range")
		angle := rapid.Float64Range(10, 80).Draw(t, "angle")

		v := physics.ComputeInitialSpeed(target, angle)
		theta := angle * math.Pi / 180

		ball := components.NewGolfBall(0, 0, 1)
		ball.Launch(v*math.Cos(theta), -v*math.Sin(theta))

		const dt = 1e-3
		prevX, prevY := ball.Position()
		for {
			ball.UpdateFreeFlight(dt, g)
			x, y := ball.Position()
			if y >= 0 {
				landing := prevX + (x-prevX)*(-prevY)/(y-prevY)
				if math.Abs(landing-target) > 1+0.005*target {
					t.Fatalf("landing %v, want %v", landing, target)
				}
				return
			}
			prevX, prevY = x, y
		}
	})
}

func TestHandleAirObstacleCollisions(t *testing.T) {
	physics := newTestPhysics()
	obstacle := components.NewAirObstacle(100, 140, 50, 80)

	tests := []struct {
		name           string
		x, y           float64
		vx, vy         float64
		wantCollided   bool
		wantVX, wantVY float64
	}{
		{"center on top edge moving down", 120, 50, 30, 100, true, 18, -60},
		{"touching top from above", 120, 45, 30, 100, true, 18, -60},
		{"touching bottom from below", 120, 84, 20, -100, true, 12, 60},
		{"approaching from left middle", 95, 65, 100, 10, true, -60, 6},
		{"approaching from right middle", 145, 65, -100, 10, true, 60, 6},
		{"clear of obstacle", 120, 30, 30, 100, false, 30, 100},
		{"near corner but outside radius", 95, 45, 50, 50, false, 50, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := components.NewGolfBall(tt.x, tt.y, 6)
			ball.Launch(tt.vx, tt.vy)

			got := physics.HandleAirObstacleCollisions(ball, []components.AirObstacle{obstacle})
			if got != tt.wantCollided {
				t.Fatalf("collided = %v, want %v", got, tt.wantCollided)
			}
			vx, vy := ball.Velocity()
			if math.Abs(vx-tt.wantVX) > 1e-9 || math.Abs(vy-tt.wantVY) > 1e-9 {
				t.Errorf("velocity = (%v, %v), want (%v, %v)", vx, vy, tt.wantVX, tt.wantVY)
			}
		})
	}
}

func TestHandleAirObstacleCollisions_FirstHitOnly(t *testing.T) {
	physics := newTestPhysics()
	obstacles := []components.AirObstacle{
		components.NewAirObstacle(100, 140, 50, 80),
		components.NewAirObstacle(110, 130, 40, 60),
	}

	ball := components.NewGolfBall(120, 50, 6)
	ball.Launch(10, 100)

	if !physics.HandleAirObstacleCollisions(ball, obstacles) {
		t.Fatal("expected a collision")
	}
	// 只处理一次：vy 翻转一次并衰减一次
	if vy := ball.VelocityY(); math.Abs(vy+60) > 1e-9 {
		t.Errorf("expected single resolution vy = -60, got %v", vy)
	}
}

// TestHandleAirObstacleCollisions_SignFlips 竖直碰撞翻转 vy，侧向碰撞翻转 vx
func TestHandleAirObstacleCollisions_SignFlips(t *testing.T) {
	physics := newTestPhysics()
	obstacle := components.NewAirObstacle(100, 140, 50, 80)

	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Float64Range(101, 139).Draw(t, "x")
		vx := rapid.Float64Range(-200, 200).Draw(t, "vx")
		vy := rapid.Float64Range(1, 300).Draw(t, "vy")

		ball := components.NewGolfBall(x, 50, 6)
		ball.Launch(vx, vy)
		physics.HandleAirObstacleCollisions(ball, []components.AirObstacle{obstacle})
		if ball.VelocityY() >= 0 {
			t.Fatalf("top contact should send the ball upward, vy = %v", ball.VelocityY())
		}

		y := rapid.Float64Range(51, 79).Draw(t, "y")
		speed := rapid.Float64Range(1, 300).Draw(t, "speed")
		ball = components.NewGolfBall(96, y, 6)
		ball.Launch(speed, vy)
		physics.HandleAirObstacleCollisions(ball, []components.AirObstacle{obstacle})
		if ball.VelocityX() >= 0 {
			t.Fatalf("left contact should send the ball back, vx = %v", ball.VelocityX())
		}
	})
}

func TestComputeMaximumHeightOffsetForCourse(t *testing.T) {
	physics := newTestPhysics()
	cfg := config.DefaultGolfConfig()
	wedge := components.NewWedge("Wedge", cfg.Clubs.Wedge.BaseDistancePixels, cfg.Clubs.WedgeBonus)

	got := physics.ComputeMaximumHeightOffsetForCourse(wedge, cfg.Course, 100, 1.0)

	// H = R·tanθ / 4，R = 154，θ = 70°
	want := 154 * math.Tan(70*math.Pi/180) / 4 * cfg.Course.HeightSafetyFactor
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("ComputeMaximumHeightOffsetForCourse() = %v, want %v", got, want)
	}

	if got := physics.ComputeMaximumHeightOffsetForCourse(nil, cfg.Course, 100, 1.0); got != cfg.Course.MinHeightOffsetPixels {
		t.Errorf("expected floor without wedge, got %v", got)
	}

	tiny := components.NewWedge("Wedge", 1, 1)
	if got := physics.ComputeMaximumHeightOffsetForCourse(tiny, cfg.Course, 100, 1.0); got != cfg.Course.MinHeightOffsetPixels {
		t.Errorf("expected floor for a tiny wedge, got %v", got)
	}
}
