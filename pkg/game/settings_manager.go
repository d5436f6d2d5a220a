package game

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/decker502/golf/pkg/types"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// GameSettings 玩家偏好设置
// 记住上一次使用的瞄准参数，下次启动时恢复
type GameSettings struct {
	// 瞄准
	LastClub   string  `yaml:"lastClub"`   // 上一次选择的球杆（Driver/Wedge/Putter）
	LastAngle  float64 `yaml:"lastAngle"`  // 上一次的出球角，0 表示使用配置默认值
	LastPower  float64 `yaml:"lastPower"`  // 上一次的力度，0 表示使用配置默认值
	ShowGuide  bool    `yaml:"showGuide"`  // 是否显示瞄准箭头
	Fullscreen bool    `yaml:"fullscreen"` // 启动时是否全屏
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		LastClub:   types.ClubDriver.String(),
		ShowGuide:  true,
		Fullscreen: false,
	}
}

// SettingsManager 设置管理器
// 负责玩家设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *GameSettings  // 当前设置
	logger       *log.Logger
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "player"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 保留以兼容调用方，加载失败不视为错误
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
		logger:       log.WithPrefix("SettingsManager"),
	}

	// 加载失败不是致命错误，使用默认设置
	if err := sm.Load(); err != nil {
		sm.logger.Warn("failed to load settings, using defaults", "err", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
//
// 返回：
//   - error: 如果反序列化失败返回错误
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 从默认值开始反序列化，旧存档缺少的字段保留默认值
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = loaded
	sm.logger.Debug("settings loaded")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
//
// 返回：
//   - error: 如果序列化或保存失败返回错误
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	sm.logger.Debug("settings saved")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// LastClub 返回上一次选择的球杆，无法识别时返回 Driver
func (sm *SettingsManager) LastClub() types.ClubType {
	for _, club := range types.AllClubTypes {
		if club.String() == sm.settings.LastClub {
			return club
		}
	}
	return types.ClubDriver
}

// RememberAim 记住本次击球的瞄准参数
//
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
//
// 参数：
//   - club: 球杆
//   - angle: 出球角
//   - power: 力度
func (sm *SettingsManager) RememberAim(club types.ClubType, angle, power float64) {
	sm.settings.LastClub = club.String()
	sm.settings.LastAngle = angle
	sm.settings.LastPower = power
}

// SetShowGuide 设置是否显示瞄准箭头
//
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetShowGuide(enabled bool) {
	sm.settings.ShowGuide = enabled
}

// SetFullscreen 设置全屏模式
//
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// ResolveAim 返回恢复后的出球角和力度
// 未记录或超出当前配置范围时使用默认值
//
// 参数：
//   - minAngle, maxAngle, defaultAngle: 角度范围与默认值
//   - minPower, maxPower, defaultPower: 力度范围与默认值
func (sm *SettingsManager) ResolveAim(minAngle, maxAngle, defaultAngle, minPower, maxPower, defaultPower float64) (float64, float64) {
	angle := sm.settings.LastAngle
	if angle < minAngle || angle > maxAngle {
		angle = defaultAngle
	}
	power := sm.settings.LastPower
	if power < minPower || power > maxPower {
		power = defaultPower
	}
	return angle, power
}
