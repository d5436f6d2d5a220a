package types

import "testing"

// TestParseTerrainType 测试地形名称解析
func TestParseTerrainType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TerrainType
		wantErr bool
	}{
		{name: "小写", input: "sand", want: TerrainSand},
		{name: "大写带空格", input: "  HOLE ", want: TerrainHole},
		{name: "果岭", input: "green", want: TerrainGreen},
		{name: "未知名称", input: "lava", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTerrainType(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTerrainType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseTerrainType(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestTerrainStringRoundTrip 每个地形的名称都能被解析回自身
func TestTerrainStringRoundTrip(t *testing.T) {
	for _, terrain := range AllTerrainTypes {
		got, err := ParseTerrainType(terrain.String())
		if err != nil || got != terrain {
			t.Errorf("ParseTerrainType(%q) = %v, %v", terrain.String(), got, err)
		}
	}
}

func TestIsHazard(t *testing.T) {
	for _, terrain := range AllTerrainTypes {
		want := terrain == TerrainWater
		if terrain.IsHazard() != want {
			t.Errorf("%v.IsHazard() = %v, want %v", terrain, terrain.IsHazard(), want)
		}
	}
}

func TestClubTypeString(t *testing.T) {
	want := map[ClubType]string{ClubDriver: "Driver", ClubWedge: "Wedge", ClubPutter: "Putter", ClubType(9): "Unknown"}
	for club, name := range want {
		if club.String() != name {
			t.Errorf("ClubType(%d).String() = %q, want %q", club, club.String(), name)
		}
	}
}
