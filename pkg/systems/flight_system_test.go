package systems

import (
	"testing"

	"github.com/decker502/golf/pkg/components"
	"github.com/decker502/golf/pkg/config"
	"github.com/decker502/golf/pkg/types"
)

func newTestFlightSystem() *FlightSystem {
	return NewFlightSystem(NewProjectilePhysics(config.DefaultGolfConfig().Physics))
}

func TestFlightSystem_RestHandling(t *testing.T) {
	// [0,40) fairway, [40,80) water, [80,120) hole
	course := newStripCourse(types.TerrainFairway, types.TerrainWater, types.TerrainHole)

	tests := []struct {
		name       string
		x          float64
		want       RestKind
		wantSafeAt float64 // 停球后球所在的 X
	}{
		{"fairway becomes safe position", 30, RestSafe, -1},
		{"water returns to checkpoint", 60, RestWater, 10},
		{"hole tile completes", 100, RestHole, -1},
		{"past course end is out of bounds", 130, RestOutOfBounds, 10},
		{"before course start is out of bounds", -5, RestOutOfBounds, 10},
	}

	fs := newTestFlightSystem()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := components.NewGolfBall(10, 294, 6)
			moveBallTo(ball, tt.x)
			ball.Launch(5, 0)

			result := fs.Step(ball, course, 1.0/60)
			if !result.Stopped || result.Moving {
				t.Fatalf("expected the ball to stop, got %+v", result)
			}
			if result.Rest != tt.want {
				t.Fatalf("rest = %v, want %v", result.Rest, tt.want)
			}

			if tt.wantSafeAt >= 0 {
				if ball.X() != tt.wantSafeAt {
					t.Errorf("expected ball reset to x = %v, got %v", tt.wantSafeAt, ball.X())
				}
				return
			}
			if tt.want == RestSafe {
				sx, sy := ball.SafePosition()
				if sx != ball.X() || sy != ball.Y() {
					t.Errorf("safe position (%v, %v) should match ball (%v, %v)", sx, sy, ball.X(), ball.Y())
				}
			}
		})
	}
}

func TestFlightSystem_PastHoleReturnsToCheckpoint(t *testing.T) {
	// [0,40) fairway, [40,80) hole, [80,160) fairway
	course := newStripCourse(types.TerrainFairway, types.TerrainHole, types.TerrainFairway, types.TerrainFairway)
	fs := newTestFlightSystem()

	for _, x := range []float64{80, 100, 159} {
		ball := components.NewGolfBall(10, 294, 6)
		moveBallTo(ball, x)
		ball.Launch(5, 0)

		result := fs.Step(ball, course, 1.0/60)
		if !result.Stopped {
			t.Fatalf("x=%v: expected the ball to stop, got %+v", x, result)
		}
		if result.Rest != RestPastHole {
			t.Errorf("x=%v: rest = %v, want %v", x, result.Rest, RestPastHole)
		}
		if ball.X() != 10 {
			t.Errorf("x=%v: expected reset to the checkpoint at 10, got %v", x, ball.X())
		}
		if sx, _ := ball.SafePosition(); sx != 10 {
			t.Errorf("x=%v: safe position moved to %v", x, sx)
		}
	}

	// 球洞格子的右边界之前仍然算进洞
	ball := components.NewGolfBall(10, 294, 6)
	moveBallTo(ball, 79.5)
	ball.Launch(5, 0)
	if result := fs.Step(ball, course, 1.0/60); result.Rest != RestHole {
		t.Errorf("x=79.5: rest = %v, want %v", result.Rest, RestHole)
	}
}

func TestFlightSystem_StepAtRest(t *testing.T) {
	fs := newTestFlightSystem()
	course := newStripCourse(types.TerrainFairway, types.TerrainHole)
	ball := components.NewGolfBall(10, 294, 6)

	if result := fs.Step(ball, course, 1.0/60); result != (StepResult{}) {
		t.Errorf("expected zero result for a ball at rest, got %+v", result)
	}
}

func TestFlightSystem_UsesTileGround(t *testing.T) {
	tiles := []components.TerrainTile{
		components.NewTerrainTile(0, 40, 300, types.TerrainFairway),
		components.NewTerrainTile(40, 80, 280, types.TerrainFairway),
	}
	course := components.NewGolfCourse(tiles, nil, 3)
	fs := newTestFlightSystem()

	ball := components.NewGolfBall(10, 294, 6)
	moveBallTo(ball, 60)
	ball.Launch(5, 0)

	result := fs.Step(ball, course, 1.0/60)
	if result.Tile.StartX != 40 {
		t.Errorf("expected tile at 40, got %v", result.Tile.StartX)
	}
	if ball.Y() != 274 {
		t.Errorf("expected ball on raised ground 274, got %v", ball.Y())
	}
}

func TestFlightSystem_ObstacleCollision(t *testing.T) {
	tiles := []components.TerrainTile{components.NewTerrainTile(0, 400, 300, types.TerrainFairway)}
	obstacles := []components.AirObstacle{components.NewAirObstacle(100, 140, 100, 140)}
	course := components.NewGolfCourse(tiles, obstacles, 3)
	fs := newTestFlightSystem()

	ball := components.NewGolfBall(10, 294, 6)
	placeBall(ball, 95, 124)
	ball.Launch(100, 0)

	result := fs.Step(ball, course, 1.0/60)
	if !result.Collided {
		t.Fatal("expected a collision with the obstacle")
	}
	if ball.VelocityX() >= 0 {
		t.Errorf("lateral hit should reverse vx, got %v", ball.VelocityX())
	}
	if !result.Moving {
		t.Error("ball in the air should keep moving")
	}
}

func TestRestKind_IsPenalty(t *testing.T) {
	for _, kind := range []RestKind{RestWater, RestOutOfBounds, RestPastHole} {
		if !kind.IsPenalty() {
			t.Errorf("%v should be a penalty", kind)
		}
	}
	for _, kind := range []RestKind{RestNone, RestSafe, RestHole} {
		if kind.IsPenalty() {
			t.Errorf("%v should not be a penalty", kind)
		}
	}
}

func TestRestKind_String(t *testing.T) {
	kinds := map[RestKind]string{
		RestNone:        "none",
		RestSafe:        "safe",
		RestHole:        "hole",
		RestWater:       "water",
		RestOutOfBounds: "out-of-bounds",
		RestPastHole:    "past-hole",
		RestKind(99):    "unknown",
	}
	for kind, want := range kinds {
		if got := kind.String(); got != want {
			t.Errorf("RestKind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}
