// Package category maps short division codes to display names.
package category

import "sort"

// labels is the fixed division table. The dataset is expected to use these
// codes, but the table is not guaranteed to be exhaustive: rows with an
// unknown code keep their code and are simply never offered as a selectable
// category.
var labels = map[string]string{
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

// codes is the precomputed inverse map (display name -> code), built once at
// init rather than scanned per lookup.
var codes = func() map[string]string {
	inv := make(map[string]string, len(labels))
	for code, name := range labels {
		inv[name] = code
	}
	return inv
}()

// LabelFor returns the display name for a division code.
// ok is false for codes with no table entry.
func LabelFor(code string) (string, bool) {
	name, ok := labels[code]
	return name, ok
}

// CodeFor returns the division code for a display name.
func CodeFor(name string) (string, bool) {
	code, ok := codes[name]
	return code, ok
}

// Known reports whether the code has a table entry.
func Known(code string) bool {
	_, ok := labels[code]
	return ok
}

// AllLabels returns every display name in the table, sorted alphabetically.
func AllLabels() []string {
	out := make([]string, 0, len(labels))
	for _, name := range labels {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
