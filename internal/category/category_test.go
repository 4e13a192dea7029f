package category

import (
	"sort"
	"testing"
)

func TestLabelFor_RoundTrips(t *testing.T) {
	known := map[string]string{
		"00": "General Index",
		"01": "Food & Beverages",
		"02": "Alcoholic Beverages & Tobacco",
		"03": "Clothing & Footwear",
		"04": "Housing & Utilities",
		"05": "Furnishings & Household Equipment",
		"06": "Health",
		"07": "Transport",
		"08": "Communication",
		"09": "Recreation & Culture",
		"10": "Education",
		"11": "Restaurants & Hotels",
		"12": "Miscellaneous Goods & Services",
	}

	if len(known) != 13 {
		t.Fatalf("test table has %d entries, want 13", len(known))
	}

	for code, want := range known {
		got, ok := LabelFor(code)
		if !ok {
			t.Errorf("LabelFor(%q) not found", code)
			continue
		}
		if got != want {
			t.Errorf("LabelFor(%q) = %q, want %q", code, got, want)
		}

		// Inverse map must round-trip back to the code.
		back, ok := CodeFor(got)
		if !ok || back != code {
			t.Errorf("CodeFor(%q) = %q, %v, want %q", got, back, ok, code)
		}
	}
}

func TestLabelFor_UnknownCode(t *testing.T) {
	if _, ok := LabelFor("99"); ok {
		t.Error("LabelFor(99) ok = true, want false")
	}
	if Known("99") {
		t.Error("Known(99) = true, want false")
	}
}

func TestAllLabels_SortedAndComplete(t *testing.T) {
	labels := AllLabels()
	if len(labels) != 13 {
		t.Fatalf("AllLabels() returned %d entries, want 13", len(labels))
	}
	if !sort.StringsAreSorted(labels) {
		t.Errorf("AllLabels() not sorted: %v", labels)
	}
}
