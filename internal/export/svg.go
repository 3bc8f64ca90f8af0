// Package export renders saved runs to standalone artifacts.
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/sim"
)

var strokeColors = []string{
	"#00ff88", "#00ccff", "#ff00ff", "#ffcc00",
	"#ff4444", "#88ff00", "#cc88ff", "#ffffff",
}

// OrbitSVG draws every entity's trajectory over a run as one SVG,
// all paths sharing a common scale.
func OrbitSVG(result *sim.Result, width, height int) string {
	entities := result.Final.EntityNames()
	n := len(entities)
	if n == 0 || len(result.Vectors) < 2 {
		return ""
	}

	xLo, xHi, _ := physics.ColumnBounds(n, physics.FieldX)
	yLo, yHi, _ := physics.ColumnBounds(n, physics.FieldY)

	// Common bounds across all trajectories.
	minX, maxX := result.Vectors[0][xLo], result.Vectors[0][xLo]
	minY, maxY := result.Vectors[0][yLo], result.Vectors[0][yLo]
	for _, v := range result.Vectors {
		for _, x := range v[xLo:xHi] {
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
		}
		for _, y := range v[yLo:yHi] {
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for i := range entities {
		color := strokeColors[i%len(strokeColors)]
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color))

		for j, v := range result.Vectors {
			x := (v[xLo+i] - minX) / rangeX * float64(width)
			y := float64(height) - (v[yLo+i]-minY)/rangeY*float64(height)
			if j == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// WriteOrbitSVG renders OrbitSVG to a file.
func WriteOrbitSVG(path string, result *sim.Result, width, height int) error {
	svg := OrbitSVG(result, width, height)
	if svg == "" {
		return fmt.Errorf("export: nothing to draw")
	}
	return os.WriteFile(path, []byte(svg), 0644)
}
