package config

import (
	"fmt"
	"os"

	"github.com/decker502/golf/pkg/types"
	"gopkg.in/yaml.v3"
)

// GolfConfig 高尔夫模拟的全部可调参数
//
// 包含物理常量、球杆参数、击球输入范围、球场生成参数和回合设置。
// 默认值与 DefaultGolfConfig() 一致，可通过 YAML 文件整体或部分覆盖。
//
// 配置文件位置: data/golf.yaml
type GolfConfig struct {
	// Physics 弹道物理参数
	Physics PhysicsConfig `yaml:"physics"`

	// Clubs 球杆参数
	Clubs ClubsConfig `yaml:"clubs"`

	// Shot 击球输入与地形距离系数
	Shot ShotConfig `yaml:"shot"`

	// Course 球场生成参数
	Course CourseConfig `yaml:"course"`

	// Round 回合设置
	Round RoundConfig `yaml:"round"`

	// Window 窗口尺寸（逻辑像素）
	Window WindowConfig `yaml:"window"`
}

// PhysicsConfig 弹道物理参数
//
// 上升/下降重力倍率、反弹系数、障碍物阻尼都是视觉调校值，没有物理推导，保持原值。
type PhysicsConfig struct {
	Gravity                  float64            `yaml:"gravity"`                  // 重力加速度 px/s²
	AscentGravityMultiplier  float64            `yaml:"ascentGravityMultiplier"`  // 上升阶段重力倍率
	DescentGravityMultiplier float64            `yaml:"descentGravityMultiplier"` // 下降阶段重力倍率
	BounceThreshold          float64            `yaml:"bounceThreshold"`          // 触地时竖直速度超过此值则反弹 px/s
	BounceRestitution        float64            `yaml:"bounceRestitution"`        // 反弹恢复系数
	StopSpeed                float64            `yaml:"stopSpeed"`                // 滚动速度低于此值时停球 px/s
	ObstacleDamping          float64            `yaml:"obstacleDamping"`          // 撞击空中障碍物后的速度阻尼
	RollFriction             map[string]float64 `yaml:"rollFriction"`             // 地形滚动摩擦系数，键为地形名或 "default"
}

// ClubsConfig 球杆参数
type ClubsConfig struct {
	Driver ClubConfig `yaml:"driver"`
	Wedge  ClubConfig `yaml:"wedge"`
	Putter ClubConfig `yaml:"putter"`

	// WedgeBonus 挖起杆距离加成倍率
	WedgeBonus float64 `yaml:"wedgeBonus"`

	// PutterCapPixels 推杆最大距离
	PutterCapPixels float64 `yaml:"putterCapPixels"`
}

// ClubConfig 单支球杆参数
type ClubConfig struct {
	DisplayName        string  `yaml:"displayName"`
	BaseDistancePixels float64 `yaml:"baseDistancePixels"` // 满力度、球道球位下的平地射程
}

// ShotConfig 击球输入范围与地形距离系数
type ShotConfig struct {
	MinAngleDegrees     float64 `yaml:"minAngleDegrees"`
	MaxAngleDegrees     float64 `yaml:"maxAngleDegrees"`
	DefaultAngleDegrees float64 `yaml:"defaultAngleDegrees"`
	MinPower            float64 `yaml:"minPower"`
	MaxPower            float64 `yaml:"maxPower"`
	DefaultPower        float64 `yaml:"defaultPower"`

	// AngleStepDegrees 按住方向键时每秒调整的角度
	AngleStepDegrees float64 `yaml:"angleStepDegrees"`

	// PowerStep 按住方向键时每秒调整的力度
	PowerStep float64 `yaml:"powerStep"`

	// DistanceMultiplier 地形距离系数，键为地形名或 "default"
	DistanceMultiplier map[string]float64 `yaml:"distanceMultiplier"`
}

// CourseConfig 球场生成参数
type CourseConfig struct {
	TileCount         int     `yaml:"tileCount"`
	TileWidthPixels   float64 `yaml:"tileWidthPixels"`
	BaseGroundYPixels float64 `yaml:"baseGroundYPixels"`
	BallRadiusPixels  float64 `yaml:"ballRadiusPixels"`

	// MinHeightOffsetPixels 地形起伏上限的下限值
	MinHeightOffsetPixels float64 `yaml:"minHeightOffsetPixels"`

	// HeightSafetyFactor 挖起杆顶点高度的安全系数
	HeightSafetyFactor float64 `yaml:"heightSafetyFactor"`

	// EnvelopeAngleDegrees 计算起伏上限时使用的最大出球角
	EnvelopeAngleDegrees float64 `yaml:"envelopeAngleDegrees"`
}

// RoundConfig 回合设置
type RoundConfig struct {
	HolesPerRound int `yaml:"holesPerRound"`
}

// WindowConfig 窗口尺寸
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DefaultTerrainKey 摩擦/距离系数表中的兜底键
const DefaultTerrainKey = "default"

// DefaultGolfConfig 返回内置默认配置
func DefaultGolfConfig() *GolfConfig {
	return &GolfConfig{
		Physics: PhysicsConfig{
			Gravity:                  420.0,
			AscentGravityMultiplier:  0.8,
			DescentGravityMultiplier: 1.2,
			BounceThreshold:          80.0,
			BounceRestitution:        0.35,
			StopSpeed:                10.0,
			ObstacleDamping:          0.6,
			RollFriction: map[string]float64{
				"fairway":         0.96,
				"hole":            0.96,
				"rough":           0.90,
				"sand":            0.80,
				DefaultTerrainKey: 0.92,
			},
		},
		Clubs: ClubsConfig{
			Driver:          ClubConfig{DisplayName: "Driver", BaseDistancePixels: 260.0},
			Wedge:           ClubConfig{DisplayName: "Wedge", BaseDistancePixels: 140.0},
			Putter:          ClubConfig{DisplayName: "Putter", BaseDistancePixels: 60.0},
			WedgeBonus:      1.10,
			PutterCapPixels: 80.0,
		},
		Shot: ShotConfig{
			MinAngleDegrees:     15.0,
			MaxAngleDegrees:     70.0,
			DefaultAngleDegrees: 45.0,
			MinPower:            10.0,
			MaxPower:            100.0,
			DefaultPower:        60.0,
			AngleStepDegrees:    30.0,
			PowerStep:           40.0,
			DistanceMultiplier: map[string]float64{
				"sand":            0.40,
				"rough":           0.70,
				"water":           0.0,
				DefaultTerrainKey: 1.0,
			},
		},
		Course: CourseConfig{
			TileCount:             30,
			TileWidthPixels:       40.0,
			BaseGroundYPixels:     300.0,
			BallRadiusPixels:      6.0,
			MinHeightOffsetPixels: 20.0,
			HeightSafetyFactor:    0.5,
			EnvelopeAngleDegrees:  70.0,
		},
		Round: RoundConfig{
			HolesPerRound: 3,
		},
		Window: WindowConfig{
			Width:  800,
			Height: 400,
		},
	}
}

// LoadGolfConfig 加载高尔夫配置
//
// 从指定路径加载 YAML 配置，未出现的字段保留默认值。
//
// 参数:
//   - path: 配置文件路径（如 "data/golf.yaml"）
//
// 返回:
//   - *GolfConfig: 加载并校验后的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadGolfConfig(path string) (*GolfConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read golf config: %w", err)
	}
	return ParseGolfConfig(data)
}

// ParseGolfConfig 从 YAML 字节解析配置
//
// 解析前先填充默认值，因此 YAML 只需写出要覆盖的字段。
// 系数表按键合并：YAML 中出现的键覆盖默认值，其余键保留。
func ParseGolfConfig(data []byte) (*GolfConfig, error) {
	cfg := DefaultGolfConfig()
	friction := copyTable(cfg.Physics.RollFriction)
	distance := copyTable(cfg.Shot.DistanceMultiplier)

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse golf config: %w", err)
	}

	cfg.Physics.RollFriction = mergeTable(friction, cfg.Physics.RollFriction)
	cfg.Shot.DistanceMultiplier = mergeTable(distance, cfg.Shot.DistanceMultiplier)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid golf config: %w", err)
	}
	return cfg, nil
}

// Validate 验证配置有效性
//
// 返回:
//   - error: 第一个不合法的字段，成功返回 nil
func (c *GolfConfig) Validate() error {
	p := c.Physics
	if p.Gravity <= 0 {
		return fmt.Errorf("gravity must be positive, got %.2f", p.Gravity)
	}
	if p.AscentGravityMultiplier <= 0 || p.DescentGravityMultiplier <= 0 {
		return fmt.Errorf("gravity multipliers must be positive, got ascent=%.2f descent=%.2f",
			p.AscentGravityMultiplier, p.DescentGravityMultiplier)
	}
	if p.BounceRestitution < 0 || p.BounceRestitution >= 1 {
		return fmt.Errorf("bounce restitution must be in [0, 1), got %.2f", p.BounceRestitution)
	}
	if p.BounceThreshold < 0 || p.StopSpeed < 0 {
		return fmt.Errorf("bounce threshold and stop speed must be >= 0")
	}
	if p.ObstacleDamping < 0 || p.ObstacleDamping > 1 {
		return fmt.Errorf("obstacle damping must be in [0, 1], got %.2f", p.ObstacleDamping)
	}
	if err := validateTable("rollFriction", p.RollFriction, false); err != nil {
		return err
	}

	for _, club := range []ClubConfig{c.Clubs.Driver, c.Clubs.Wedge, c.Clubs.Putter} {
		if club.BaseDistancePixels <= 0 {
			return fmt.Errorf("club %q base distance must be positive, got %.1f",
				club.DisplayName, club.BaseDistancePixels)
		}
	}
	if c.Clubs.WedgeBonus <= 0 {
		return fmt.Errorf("wedge bonus must be positive, got %.2f", c.Clubs.WedgeBonus)
	}
	if c.Clubs.PutterCapPixels <= 0 {
		return fmt.Errorf("putter cap must be positive, got %.1f", c.Clubs.PutterCapPixels)
	}

	s := c.Shot
	if s.MinAngleDegrees <= 0 || s.MaxAngleDegrees >= 90 || s.MinAngleDegrees >= s.MaxAngleDegrees {
		return fmt.Errorf("angle range invalid: min(%.1f) max(%.1f), must satisfy 0 < min < max < 90",
			s.MinAngleDegrees, s.MaxAngleDegrees)
	}
	if s.DefaultAngleDegrees < s.MinAngleDegrees || s.DefaultAngleDegrees > s.MaxAngleDegrees {
		return fmt.Errorf("default angle %.1f outside [%.1f, %.1f]",
			s.DefaultAngleDegrees, s.MinAngleDegrees, s.MaxAngleDegrees)
	}
	if s.MinPower <= 0 || s.MaxPower > 100 || s.MinPower >= s.MaxPower {
		return fmt.Errorf("power range invalid: min(%.1f) max(%.1f), must satisfy 0 < min < max <= 100",
			s.MinPower, s.MaxPower)
	}
	if s.DefaultPower < s.MinPower || s.DefaultPower > s.MaxPower {
		return fmt.Errorf("default power %.1f outside [%.1f, %.1f]", s.DefaultPower, s.MinPower, s.MaxPower)
	}
	if err := validateTable("distanceMultiplier", s.DistanceMultiplier, true); err != nil {
		return err
	}

	co := c.Course
	if co.TileCount < 3 {
		return fmt.Errorf("tile count must be >= 3, got %d", co.TileCount)
	}
	if co.TileWidthPixels <= 0 || co.BallRadiusPixels <= 0 {
		return fmt.Errorf("tile width and ball radius must be positive")
	}
	if co.MinHeightOffsetPixels < 0 || co.HeightSafetyFactor < 0 {
		return fmt.Errorf("height offset floor and safety factor must be >= 0")
	}
	if co.EnvelopeAngleDegrees <= 0 || co.EnvelopeAngleDegrees >= 90 {
		return fmt.Errorf("envelope angle must be in (0, 90), got %.1f", co.EnvelopeAngleDegrees)
	}

	if c.Round.HolesPerRound < 1 {
		return fmt.Errorf("holes per round must be >= 1, got %d", c.Round.HolesPerRound)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}

// RollFrictionFor 返回指定地形的滚动摩擦系数
//
// 未配置的地形使用 "default" 键的值。
func (p *PhysicsConfig) RollFrictionFor(terrain types.TerrainType) float64 {
	return lookupTable(p.RollFriction, terrain)
}

// DistanceMultiplierFor 返回指定地形的击球距离系数
//
// 0 表示无法击球（水障碍）。
func (s *ShotConfig) DistanceMultiplierFor(terrain types.TerrainType) float64 {
	return lookupTable(s.DistanceMultiplier, terrain)
}

// FairwayMultiplier 返回球道球位的距离系数
func (s *ShotConfig) FairwayMultiplier() float64 {
	return s.DistanceMultiplierFor(types.TerrainFairway)
}

func lookupTable(table map[string]float64, terrain types.TerrainType) float64 {
	if v, ok := table[terrain.String()]; ok {
		return v
	}
	return table[DefaultTerrainKey]
}

// validateTable 校验系数表：键必须是已知地形或 "default"，且必须包含 "default"
func validateTable(name string, table map[string]float64, allowZero bool) error {
	if _, ok := table[DefaultTerrainKey]; !ok {
		return fmt.Errorf("%s must contain a %q entry", name, DefaultTerrainKey)
	}
	for key, value := range table {
		if key != DefaultTerrainKey {
			if _, err := types.ParseTerrainType(key); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
		if value < 0 || value > 1 || (!allowZero && value == 0) {
			return fmt.Errorf("%s[%s] out of range: %.2f", name, key, value)
		}
	}
	return nil
}

func copyTable(src map[string]float64) map[string]float64 {
	dst := make(map[string]float64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// mergeTable 将 override 合并到 base 上并返回 base
func mergeTable(base, override map[string]float64) map[string]float64 {
	for k, v := range override {
		base[k] = v
	}
	return base
}
