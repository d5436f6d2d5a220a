package entities

import (
	"github.com/decker502/golf/pkg/components"
	"github.com/decker502/golf/pkg/config"
	"github.com/decker502/golf/pkg/types"
)

// NewClubSet 根据配置创建一整套球杆
//
// 参数:
//   - cfg: 球杆配置
//
// 返回:
//   - map[types.ClubType]*components.GolfClub: 按球杆类型索引的球杆，包含 Driver/Wedge/Putter
func NewClubSet(cfg config.ClubsConfig) map[types.ClubType]*components.GolfClub {
	return map[types.ClubType]*components.GolfClub{
		types.ClubDriver: components.NewDriver(cfg.Driver.DisplayName, cfg.Driver.BaseDistancePixels),
		types.ClubWedge:  components.NewWedge(cfg.Wedge.DisplayName, cfg.Wedge.BaseDistancePixels, cfg.WedgeBonus),
		types.ClubPutter: components.NewPutter(cfg.Putter.DisplayName, cfg.Putter.BaseDistancePixels, cfg.PutterCapPixels),
	}
}
