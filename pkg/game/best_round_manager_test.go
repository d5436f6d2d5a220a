package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时 HOME 下打开 gdata 管理器
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()

	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return gdataManager
}

// TestBestRoundManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestBestRoundManagerNilGdata(t *testing.T) {
	bm := NewBestRoundManager(nil)

	if _, ok := bm.Best(); ok {
		t.Fatal("expected no record initially")
	}

	improved, err := bm.Submit(BestRound{RelativeToPar: 2, Strokes: 14, Par: 12, Holes: 3})
	if err != nil {
		t.Fatalf("Submit() error in degraded mode: %v", err)
	}
	if !improved {
		t.Error("first round should always be a new best")
	}
	if best, ok := bm.Best(); !ok || best != 2 {
		t.Errorf("Best() = %d, %v; want 2, true", best, ok)
	}
}

func TestBestRoundManagerSubmit(t *testing.T) {
	bm := NewBestRoundManager(nil)

	rounds := []struct {
		relative int
		improved bool
		best     int
	}{
		{3, true, 3},
		{5, false, 3},
		{3, false, 3}, // 平局不刷新
		{-1, true, -1},
		{0, false, -1},
	}

	for i, r := range rounds {
		improved, err := bm.Submit(BestRound{RelativeToPar: r.relative})
		if err != nil {
			t.Fatalf("round %d: Submit() error: %v", i, err)
		}
		if improved != r.improved {
			t.Errorf("round %d: improved = %v, want %v", i, improved, r.improved)
		}
		if best, _ := bm.Best(); best != r.best {
			t.Errorf("round %d: best = %d, want %d", i, best, r.best)
		}
	}
}

// TestBestRoundManagerPersistence 测试记录能跨实例加载
func TestBestRoundManagerPersistence(t *testing.T) {
	gdataManager := openTestGdata(t, "test_golf_best_round")

	bm1 := NewBestRoundManager(gdataManager)
	if _, ok := bm1.Best(); ok {
		t.Fatal("expected empty store")
	}
	if _, err := bm1.Submit(BestRound{RelativeToPar: -2, Strokes: 10, Par: 12, Holes: 3}); err != nil {
		t.Fatalf("Submit() error: %v", err)
	}

	bm2 := NewBestRoundManager(gdataManager)
	record := bm2.Record()
	if record == nil {
		t.Fatal("expected a persisted record")
	}
	want := BestRound{RelativeToPar: -2, Strokes: 10, Par: 12, Holes: 3}
	if *record != want {
		t.Errorf("loaded record = %+v, want %+v", *record, want)
	}

	// 更差的成绩不会覆盖已保存的记录
	if improved, _ := bm2.Submit(BestRound{RelativeToPar: 4}); improved {
		t.Error("worse round should not replace the record")
	}
	bm3 := NewBestRoundManager(gdataManager)
	if best, _ := bm3.Best(); best != -2 {
		t.Errorf("expected persisted best -2, got %d", best)
	}
}

// TestBestRoundManagerCorruptRecord 损坏的记录以空记录启动
func TestBestRoundManagerCorruptRecord(t *testing.T) {
	gdataManager := openTestGdata(t, "test_golf_best_round_corrupt")

	if err := gdataManager.SaveObjectProp(bestRoundObject, bestRoundProperty, []byte("relativeToPar: [oops")); err != nil {
		t.Fatalf("failed to write corrupt record: %v", err)
	}

	bm := NewBestRoundManager(gdataManager)
	if _, ok := bm.Best(); ok {
		t.Error("corrupt record should be ignored")
	}
	if err := bm.Load(); err == nil {
		t.Error("Load() should report the corrupt record")
	}
}
