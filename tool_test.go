package fpidioms

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var classifiers = map[string]func(Tool) string{
	"imperative": ClassifyToolImperative,
	"ternary":    ClassifyToolTernary,
	"match":      ClassifyToolMatch,
}

func TestClassifyTool(t *testing.T) {
	tests := []struct {
		name string
		tool Tool
		want string
	}{
		{"fast drill", Drill{RPM: 11}, FastDrill},
		{"drill at threshold", Drill{RPM: 10}, InvalidTool},
		{"slow drill", Drill{RPM: 0}, InvalidTool},
		{"new hammer", Hammer{Whacks: 4}, NewHammer},
		{"hammer at threshold", Hammer{Whacks: 5}, InvalidTool},
		{"worn hammer", Hammer{Whacks: 100}, InvalidTool},
		{"unused hammer", Hammer{Whacks: 0}, NewHammer},
		{"nil tool", nil, InvalidTool},
		{"fast drill pointer", &Drill{RPM: 11}, FastDrill},
		{"new hammer pointer", &Hammer{Whacks: 4}, NewHammer},
		{"worn hammer pointer", &Hammer{Whacks: 9}, InvalidTool},
		{"nil drill pointer", (*Drill)(nil), InvalidTool},
		{"nil hammer pointer", (*Hammer)(nil), InvalidTool},
	}

	for _, tt := range tests {
		for style, classify := range classifiers {
			t.Run(tt.name+"/"+style, func(t *testing.T) {
				assert.Equal(t, tt.want, classify(tt.tool))
			})
		}
	}
}

func TestClassifyTool_StylesAgree(t *testing.T) {
	for v := -20; v <= 20; v++ {
		for _, tool := range []Tool{Drill{RPM: v}, Hammer{Whacks: v}} {
			want := ClassifyToolImperative(tool)
			assert.Equal(t, want, ClassifyToolTernary(tool), "ternary %#v", tool)
			assert.Equal(t, want, ClassifyToolMatch(tool), "match %#v", tool)
		}
	}
}

func TestMatchTool(t *testing.T) {
	describe := ToolCases[string]{
		Drill:   func(d Drill) string { return fmt.Sprintf("drill@%d", d.RPM) },
		Hammer:  func(h Hammer) string { return fmt.Sprintf("hammer x%d", h.Whacks) },
		Default: func(Tool) string { return "none" },
	}

	assert.Equal(t, "drill@3000", MatchTool(Drill{RPM: 3000}, describe))
	assert.Equal(t, "hammer x2", MatchTool(Hammer{Whacks: 2}, describe))
	assert.Equal(t, "none", MatchTool(nil, describe))
	assert.Equal(t, "drill@12", MatchTool(&Drill{RPM: 12}, describe))
	assert.Equal(t, "none", MatchTool((*Hammer)(nil), describe))
}

func TestMatchTool_MissingHandlerFallsBack(t *testing.T) {
	onlyDrills := ToolCases[int]{
		Drill:   func(d Drill) int { return d.RPM },
		Default: func(Tool) int { return -1 },
	}
	assert.Equal(t, 7, MatchTool(Drill{RPM: 7}, onlyDrills))
	assert.Equal(t, -1, MatchTool(Hammer{Whacks: 1}, onlyDrills))

	assert.Zero(t, MatchTool(Hammer{Whacks: 1}, ToolCases[int]{}), "no default yields the zero value")
}
