package systems

import (
	"math"
	"testing"
)

// TestCameraSystem_Follow 测试镜头跟随球
func TestCameraSystem_Follow(t *testing.T) {
	cs := NewCameraSystem(800)
	cs.Reset(1200) // 最大 X = 400

	steps := []struct {
		name  string
		ballX float64
		want  float64
	}{
		{"ball near tee keeps origin", 100, 0},
		{"ball at threshold keeps origin", 320, 0},
		{"ball past threshold pushes camera", 500, 180},
		{"ball inside view does not pull back", 300, 180},
		{"far ball clamps to course end", 1150, 400},
		{"ball reset behind the view pulls back", 100, 0},
	}

	for _, step := range steps {
		cs.Follow(step.ballX)
		if got := cs.X(); math.Abs(got-step.want) > 1e-9 {
			t.Errorf("%s: camera X = %v, want %v", step.name, got, step.want)
		}
	}
}

func TestCameraSystem_ShortCourse(t *testing.T) {
	cs := NewCameraSystem(800)
	cs.Reset(600)

	cs.Follow(550)
	if cs.X() != 0 {
		t.Errorf("course narrower than the window should keep X = 0, got %v", cs.X())
	}
}

// TestCameraSystem_MoveTo 测试平移动画
func TestCameraSystem_MoveTo(t *testing.T) {
	cs := NewCameraSystem(800)
	cs.Reset(1200)

	cs.MoveTo(1000, 300) // 目标被限制到 400
	if !cs.IsAnimating() {
		t.Fatal("expected animation to start")
	}

	cs.Update(0.5)
	if got := cs.X(); math.Abs(got-150) > 1e-9 {
		t.Errorf("after 0.5s expected X = 150, got %v", got)
	}

	cs.Update(1.0)
	if got := cs.X(); got != 400 {
		t.Errorf("expected arrival at 400, got %v", got)
	}
	if cs.IsAnimating() {
		t.Error("animation should have finished")
	}

	cs.MoveTo(0, 100)
	cs.StopAnimation()
	if cs.X() != 0 || cs.IsAnimating() {
		t.Errorf("StopAnimation should jump to target, got X = %v animating = %v", cs.X(), cs.IsAnimating())
	}
}

func TestCameraSystem_FollowInterruptsAnimation(t *testing.T) {
	cs := NewCameraSystem(800)
	cs.Reset(1200)
	cs.MoveTo(400, 100)

	cs.Follow(10)
	if cs.IsAnimating() {
		t.Error("Follow should cancel the pan")
	}
	if cs.WorldToScreenX(10) != 10 {
		t.Errorf("expected screen X 10, got %v", cs.WorldToScreenX(10))
	}
}
