package game

import (
	"github.com/decker502/golf/pkg/components"
	"github.com/decker502/golf/pkg/systems"
	"github.com/decker502/golf/pkg/types"
)

const (
	// planFrameDt 试打使用的步长，调用方按同样的步长推进时结果完全一致
	planFrameDt = 1.0 / 60.0

	// planMaxFrames 单次试打的最大帧数
	planMaxFrames = 60 * 120

	// planPowerStep 候选力度的步长（百分比）
	planPowerStep = 5.0
)

var (
	planClubs  = []types.ClubType{types.ClubPutter, types.ClubWedge, types.ClubDriver}
	planAngles = []float64{15, 30, 45, 60}
)

// ShotPlan 建议的击球参数及试打结果
type ShotPlan struct {
	Club  types.ClubType
	Angle float64
	Power float64
	Rest  systems.RestKind // 试打的停球分类，没有可用候选时为 RestNone
	RestX float64          // 试打的停球位置
}

// SuggestShot 为当前球位挑选击球参数
//
// 按推杆、挖起杆、一号木的顺序，对几个出球角和按 5% 递增的力度逐一试打：
// 用球的副本以 1/60 秒步长模拟到停球。第一组能停在球洞格子上的参数直接返回；
// 否则返回停在球洞之前、离球洞最近的一组。罚杆结果不参与选择，
// 所有候选都罚杆时退回最小力度的推杆。
//
// 返回:
//   - ShotPlan: 建议参数
//   - error: ErrNoActiveHole、ErrHoleComplete 或 systems.ErrBallMoving
func (s *Session) SuggestShot() (ShotPlan, error) {
	if s.course == nil {
		return ShotPlan{}, ErrNoActiveHole
	}
	if s.holeComplete {
		return ShotPlan{}, ErrHoleComplete
	}
	if s.ball.IsMoving() {
		return ShotPlan{}, systems.ErrBallMoving
	}

	shot := s.cfg.Shot
	angle, power := s.ClampAim(planAngles[0], shot.MinPower)
	best := ShotPlan{Club: types.ClubPutter, Angle: angle, Power: power, Rest: systems.RestNone, RestX: s.ball.X()}
	found := false

	for _, kind := range planClubs {
		club := s.clubs[kind]
		if club == nil {
			continue
		}
		for _, a := range planAngles {
			for p := shot.MinPower; p <= shot.MaxPower; p += planPowerStep {
				angle, power := s.ClampAim(a, p)
				rest, x, ok := s.trialShot(club, angle, power)
				if !ok {
					continue
				}

				plan := ShotPlan{Club: kind, Angle: angle, Power: power, Rest: rest, RestX: x}
				if rest == systems.RestHole {
					s.logger.Debug("shot plan holes out", "club", kind, "angle", angle, "power", power)
					return plan, nil
				}
				if rest == systems.RestSafe && (!found || x > best.RestX) {
					best = plan
					found = true
				}
			}
		}
	}

	s.logger.Debug("shot plan", "club", best.Club, "angle", best.Angle, "power", best.Power,
		"rest", best.Rest, "restX", best.RestX)
	return best, nil
}

// trialShot 用球的副本模拟一次击球
// 返回停球分类和停球后球的 X；水障碍球位、瞄准无效或超过帧数上限时 ok 为 false
func (s *Session) trialShot(club *components.GolfClub, angle, power float64) (rest systems.RestKind, x float64, ok bool) {
	trial := *s.ball
	outcome, err := s.shots.PerformShot(&trial, s.course, club, angle, power)
	if err != nil || outcome.Reset {
		return systems.RestNone, 0, false
	}

	for frame := 0; frame < planMaxFrames; frame++ {
		result := s.flight.Step(&trial, s.course, planFrameDt)
		if result.Stopped {
			return result.Rest, trial.X(), true
		}
	}
	return systems.RestNone, 0, false
}
