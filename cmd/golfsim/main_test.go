package main

import (
	"strings"
	"testing"

	"github.com/decker502/golf/pkg/components"
	"github.com/decker502/golf/pkg/config"
	"github.com/decker502/golf/pkg/game"
	"github.com/decker502/golf/pkg/types"
)

func TestTileMap(t *testing.T) {
	terrains := []types.TerrainType{
		types.TerrainFairway, types.TerrainRough, types.TerrainSand,
		types.TerrainWater, types.TerrainGreen, types.TerrainHole,
	}
	tiles := make([]components.TerrainTile, len(terrains))
	for i, terrain := range terrains {
		start := float64(i) * 40
		tiles[i] = components.NewTerrainTile(start, start+40, 300, terrain)
	}
	obstacles := []components.AirObstacle{components.NewAirObstacle(88, 112, 200, 240)}
	course := components.NewGolfCourse(tiles, obstacles, 3)

	lines := strings.Split(tileMap(course), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "    #" {
		t.Errorf("obstacle line = %q, want %q", lines[0], "    #")
	}
	if lines[1] != "  .,s~gH" {
		t.Errorf("terrain line = %q, want %q", lines[1], "  .,s~gH")
	}
}

func TestPlayRound(t *testing.T) {
	for _, seed := range []int64{4, 24} {
		cfg := config.DefaultGolfConfig()
		session := game.NewSession(cfg, seed, nil)

		if err := playRound(session, 15); err != nil {
			t.Fatalf("seed %d: playRound() error: %v", seed, err)
		}
		if !session.IsRoundComplete() {
			t.Errorf("seed %d: round should be complete", seed)
		}
		if got := len(session.Results()); got != cfg.Round.HolesPerRound {
			t.Errorf("seed %d: %d holes played, want %d", seed, got, cfg.Round.HolesPerRound)
		}
	}
}
