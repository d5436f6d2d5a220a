package types

// ClubType 定义球杆种类
type ClubType int

const (
	// ClubDriver 一号木：距离最远，适合球道
	ClubDriver ClubType = iota
	// ClubWedge 挖起杆：中距离，对不良球位有少量加成
	ClubWedge
	// ClubPutter 推杆：距离短且有上限
	ClubPutter
)

// AllClubTypes 按选择顺序列出全部球杆
var AllClubTypes = []ClubType{ClubDriver, ClubWedge, ClubPutter}

// String 返回球杆类型的字符串表示
func (c ClubType) String() string {
	switch c {
	case ClubDriver:
		return "Driver"
	case ClubWedge:
		return "Wedge"
	case ClubPutter:
		return "Putter"
	default:
		return "Unknown"
	}
}
