package contract

import "testing"

// FuzzTruncatePath fuzzes TruncatePath with random paths and widths.
func FuzzTruncatePath(f *testing.F) {
	f.Add("/data/results.json", 10)
	f.Add("", 0)
	f.Add("résultats/ü.yaml", 4)
	f.Add("short", -1)

	f.Fuzz(func(t *testing.T, path string, width int) {
		out := TruncatePath(path, width)
		if width > 3 && len([]rune(out)) > width {
			t.Fatalf("TruncatePath(%q, %d) = %q exceeds width", path, width, out)
		}
	})
}
