package theme

import (
	"testing"

	"github.com/theirongolddev/spent/internal/model"
)

func TestByNameFallsBack(t *testing.T) {
	if got := ByName("tokyo-night"); got.Name != "tokyo-night" {
		t.Fatalf("ByName(tokyo-night) = %s", got.Name)
	}
	if got := ByName("nope"); got.Name != FlexokiDark.Name {
		t.Fatalf("ByName(nope) = %s, want %s", got.Name, FlexokiDark.Name)
	}
	if Exists("nope") {
		t.Fatal("Exists(nope) = true")
	}
	if len(Names()) != len(All) {
		t.Fatalf("Names = %v", Names())
	}
}

func TestCategoryColorsDistinctForKnownCategories(t *testing.T) {
	for _, th := range []Theme{FlexokiDark, CatppuccinMocha, TokyoNight} {
		seen := make(map[string]model.Category)
		for _, c := range model.Categories {
			col := string(th.CategoryColor(c))
			if col == "" {
				t.Fatalf("%s: %s has no color", th.Name, c)
			}
			if prev, dup := seen[col]; dup {
				t.Fatalf("%s: %s and %s share %s", th.Name, prev, c, col)
			}
			seen[col] = c
		}
	}
}
