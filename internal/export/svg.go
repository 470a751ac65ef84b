// Package export renders simulation snapshots to standalone files.
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/crittersim/internal/world"
)

// SnapshotSVG renders a body snapshot as an SVG image in world
// coordinates. Bodies are drawn as circles with the width-based
// collider radius, scaled by the cosmetic pulse, and rotated a tick
// mark by the cosmetic angle so spin is visible in stills.
func SnapshotSVG(bodies []world.Body, viewW, viewH float64) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, viewW, viewH, viewW, viewH))

	for i := range bodies {
		b := &bodies[i]
		r := b.Width / 2 * b.Scale
		fill := "#00ff88"
		if b.Sprite.Placeholder {
			fill = "#666688"
		}
		sb.WriteString(fmt.Sprintf(
			`<g transform="rotate(%.1f %.1f %.1f)"><circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s"/><line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s"/></g>
`,
			b.Angle, b.Pos.X, b.Pos.Y,
			b.Pos.X, b.Pos.Y, r, fill,
			b.Pos.X, b.Pos.Y, b.Pos.X+r, b.Pos.Y, fill))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// WriteSnapshot writes the snapshot SVG to path.
func WriteSnapshot(path string, bodies []world.Body, viewW, viewH float64) error {
	return os.WriteFile(path, []byte(SnapshotSVG(bodies, viewW, viewH)), 0644)
}
