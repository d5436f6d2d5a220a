// golfsim 无窗口运行高尔夫模拟
//
// 为指定种子生成球洞，打印地形图和标准杆，然后按会话的试打建议自动打完一个回合。
//
// 用法:
//
//	go run ./cmd/golfsim -seed 42 -holes 3 -verbose
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/decker502/golf/pkg/components"
	"github.com/decker502/golf/pkg/config"
	"github.com/decker502/golf/pkg/game"
	"github.com/decker502/golf/pkg/types"
)

const (
	// frameDt 与试打使用的步长一致，实际击球结果与建议相同
	frameDt = 1.0 / 60.0

	// maxFramesPerShot 单次击球的最大帧数，防止意外的死循环
	maxFramesPerShot = 60 * 120
)

var (
	seed       = flag.Int64("seed", 1, "随机种子")
	holes      = flag.Int("holes", 0, "每回合球洞数（0 表示使用配置）")
	maxShots   = flag.Int("max-shots", 12, "每洞最多击球次数，超过后放弃该回合")
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "高尔夫配置文件路径（默认使用内置配置）")
)

func main() {
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg := config.DefaultGolfConfig()
	if *configPath != "" {
		loaded, err := config.LoadGolfConfig(*configPath)
		if err != nil {
			log.Fatal("配置加载失败", "err", err)
		}
		cfg = loaded
	}
	if *holes > 0 {
		cfg.Round.HolesPerRound = *holes
	}

	session := game.NewSession(cfg, *seed, game.NewBestRoundManager(nil))
	if err := playRound(session, *maxShots); err != nil {
		fmt.Fprintf(os.Stderr, "round abandoned: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nRound: %d strokes, par %d (%+d)\n",
		session.TotalStrokes(), session.TotalPar(), session.RelativeToPar())
}

// playRound 自动打完一个回合
func playRound(session *game.Session, shotLimit int) error {
	session.StartRound()
	for {
		course := session.Course()
		fmt.Printf("\nHole %d  par %d  length %.0fpx\n", session.HoleNumber(), session.Par(), course.HoleLengthPixels())
		fmt.Println(tileMap(course))

		if err := playHole(session, shotLimit); err != nil {
			return err
		}
		fmt.Printf("  holed in %d (par %d)\n", session.Strokes(), session.Par())

		err := session.AdvanceHole()
		if errors.Is(err, game.ErrRoundComplete) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// playHole 反复击球直到进洞或超过击球上限
func playHole(session *game.Session, shotLimit int) error {
	for shots := 0; !session.IsHoleComplete(); shots++ {
		if shots >= shotLimit {
			return fmt.Errorf("hole %d not finished after %d shots", session.HoleNumber(), shotLimit)
		}

		plan, err := session.SuggestShot()
		if err != nil {
			return fmt.Errorf("failed to plan shot: %w", err)
		}
		outcome, err := session.Shoot(plan.Club, plan.Angle, plan.Power)
		if err != nil {
			return fmt.Errorf("failed to shoot: %w", err)
		}
		if outcome.Reset {
			fmt.Printf("  shot %d: lie in %s, ball returned\n", shots+1, outcome.Terrain)
			continue
		}

		for frame := 0; frame < maxFramesPerShot; frame++ {
			result := session.Update(frameDt)
			if !result.Stopped {
				continue
			}
			fmt.Printf("  shot %d: %-6s angle %2.0f power %3.0f -> x=%4.0f %s (%s)\n",
				shots+1, plan.Club, plan.Angle, plan.Power, session.Ball().X(), result.Tile.Type, result.Rest)
			break
		}
	}
	return nil
}

// terrainSymbols 地形图使用的字符
var terrainSymbols = map[types.TerrainType]byte{
	types.TerrainFairway: '.',
	types.TerrainRough:   ',',
	types.TerrainSand:    's',
	types.TerrainWater:   '~',
	types.TerrainGreen:   'g',
	types.TerrainHole:    'H',
}

// tileMap 返回两行文本：每个格子的地形字符，以及上方有障碍物的格子标记
func tileMap(course *components.GolfCourse) string {
	tiles := course.Tiles()
	terrain := make([]byte, len(tiles))
	obstacles := []byte(strings.Repeat(" ", len(tiles)))

	for i, tile := range tiles {
		terrain[i] = terrainSymbols[tile.Type]
		for _, o := range course.Obstacles() {
			if o.Right > tile.StartX && o.Left < tile.EndX {
				obstacles[i] = '#'
			}
		}
	}
	return "  " + strings.TrimRight(string(obstacles), " ") + "\n  " + string(terrain)
}
