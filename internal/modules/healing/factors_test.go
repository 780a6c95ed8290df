package healing

import (
	"math"
	"testing"
)

func TestTotalMultiplier(t *testing.T) {
	if m := TotalMultiplier(nil); m != 1 {
		t.Fatalf("empty=%v", m)
	}
	if m := TotalMultiplier([]Factor{FactorTherapy, FactorTherapy, "knitting"}); m != 1.3 {
		t.Fatalf("dedupe/unknown=%v", m)
	}
	if m := TotalMultiplier([]Factor{FactorTherapy, FactorExercise}); math.Abs(m-1.625) > eps {
		t.Fatalf("therapy+exercise=%v", m)
	}
	for _, f := range Factors() {
		if f.Multiplier < 1.1 || f.Multiplier > 1.3 {
			t.Fatalf("%s multiplier %v outside [1.1,1.3]", f.ID, f.Multiplier)
		}
	}
}

func TestParseFactors(t *testing.T) {
	got := ParseFactors("therapy, Exercise,,x")
	want := []Factor{FactorTherapy, FactorExercise, "x"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
	if out := ParseFactors(""); len(out) != 0 {
		t.Fatalf("empty=%v", out)
	}
}

func TestSuggestFactors(t *testing.T) {
	got := SuggestFactors([]Factor{FactorTherapy})
	if len(got) != len(Factors())-1 {
		t.Fatalf("len=%d", len(got))
	}
	if got[0].ID != FactorExercise {
		t.Fatalf("first suggestion=%s", got[0].ID)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Multiplier > got[i-1].Multiplier {
			t.Fatalf("not sorted: %v", got)
		}
	}
}

func TestHealingRatesInRange(t *testing.T) {
	for region, r := range healingRates {
		if r < 0.10 || r > 0.18 {
			t.Fatalf("%s rate %v", region, r)
		}
	}
	if HealingRate("Unknown Region") != DefaultHealingRate {
		t.Fatalf("default rate not applied")
	}
}
