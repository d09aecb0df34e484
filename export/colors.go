package export

import "github.com/lucasb-eyer/go-colorful"

// CablePalette returns n visually distinct hex colors for drawing cables.
// Hues are spread evenly around the wheel so neighbouring cables stay
// distinguishable; the palette is deterministic for a given n.
func CablePalette(n int) []string {
	if n <= 0 {
		return nil
	}
	colors := make([]string, n)
	for i := 0; i < n; i++ {
		hue := float64(i) * 360.0 / float64(n)
		colors[i] = colorful.Hsv(hue, 0.65, 0.85).Hex()
	}
	return colors
}
