package game

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// BestRound 最佳回合记录
// 以相对标准杆的杆数比较，越小越好
type BestRound struct {
	RelativeToPar int `yaml:"relativeToPar"` // 总杆数 - 总标准杆
	Strokes       int `yaml:"strokes"`       // 总杆数
	Par           int `yaml:"par"`           // 总标准杆
	Holes         int `yaml:"holes"`         // 球洞数
}

// 存储路径常量
const (
	bestRoundObject   = "records"
	bestRoundProperty = "best"
)

// BestRoundManager 最佳回合管理器
// 负责最佳回合记录的加载、比较和保存
type BestRoundManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	best         *BestRound     // 当前最佳记录，nil 表示还没有完成过回合
	logger       *log.Logger
}

// NewBestRoundManager 创建最佳回合管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存记录）
//
// 返回：
//   - *BestRoundManager: 管理器实例；加载失败时以空记录启动并记录警告
func NewBestRoundManager(gdataManager *gdata.Manager) *BestRoundManager {
	bm := &BestRoundManager{
		gdataManager: gdataManager,
		logger:       log.WithPrefix("BestRoundManager"),
	}

	if err := bm.Load(); err != nil {
		bm.logger.Warn("failed to load best round, starting empty", "err", err)
	}
	return bm
}

// Load 从 gdata 加载最佳记录
//
// gdataManager 为 nil 或记录不存在时清空内存记录
//
// 返回：
//   - error: 读取或反序列化失败时返回错误
func (bm *BestRoundManager) Load() error {
	bm.best = nil

	if bm.gdataManager == nil {
		return nil
	}
	if !bm.gdataManager.ObjectPropExists(bestRoundObject, bestRoundProperty) {
		return nil
	}

	data, err := bm.gdataManager.LoadObjectProp(bestRoundObject, bestRoundProperty)
	if err != nil {
		return fmt.Errorf("failed to load best round: %w", err)
	}

	var record BestRound
	if err := yaml.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("failed to unmarshal best round: %w", err)
	}

	bm.best = &record
	bm.logger.Debug("best round loaded", "relativeToPar", record.RelativeToPar)
	return nil
}

// Best 返回最佳的相对标准杆杆数
//
// 返回：
//   - int: 相对标准杆杆数
//   - bool: 是否存在记录
func (bm *BestRoundManager) Best() (int, bool) {
	if bm.best == nil {
		return 0, false
	}
	return bm.best.RelativeToPar, true
}

// Record 返回完整的最佳记录（副本），没有记录时返回 nil
func (bm *BestRoundManager) Record() *BestRound {
	if bm.best == nil {
		return nil
	}
	record := *bm.best
	return &record
}

// Submit 提交一个完成的回合
//
// 没有记录或新成绩更好（相对标准杆更小）时更新并保存。
// 保存失败时内存记录仍然更新。
//
// 参数：
//   - round: 完成的回合
//
// 返回：
//   - bool: 是否刷新了最佳记录
//   - error: 保存失败时返回错误
func (bm *BestRoundManager) Submit(round BestRound) (bool, error) {
	if bm.best != nil && round.RelativeToPar >= bm.best.RelativeToPar {
		return false, nil
	}

	bm.best = &round
	bm.logger.Info("new best round", "relativeToPar", round.RelativeToPar, "strokes", round.Strokes, "par", round.Par)

	if err := bm.save(); err != nil {
		return true, err
	}
	return true, nil
}

// save 保存最佳记录，降级模式下不报错
func (bm *BestRoundManager) save() error {
	if bm.gdataManager == nil || bm.best == nil {
		return nil
	}

	data, err := yaml.Marshal(bm.best)
	if err != nil {
		return fmt.Errorf("failed to marshal best round: %w", err)
	}
	if err := bm.gdataManager.SaveObjectProp(bestRoundObject, bestRoundProperty, data); err != nil {
		return fmt.Errorf("failed to save best round: %w", err)
	}
	return nil
}
