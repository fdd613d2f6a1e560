package export

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/field"
	"github.com/san-kum/gravsim/internal/physics"
	"github.com/san-kum/gravsim/internal/sim"
)

const (
	background     = "#0a0a0a"
	attractiveFill = "#3399ff"
	repulsiveFill  = "#ff4444"
	trailStroke    = "#555577"
)

// SnapshotToSVG draws one frame of a world: field arrows at the bottom,
// then trails, particles and sources.
func SnapshotToSVG(snap sim.Snapshot, arrows []field.Arrow, b dynamo.Bounds) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, b.Width, b.Height, b.Width, b.Height, background))

	if len(arrows) > 0 {
		sb.WriteString(`<g id="field" stroke-width="2" fill="none">` + "\n")
		for _, a := range arrows {
			writeArrow(&sb, a)
		}
		sb.WriteString("</g>\n")
	}

	sb.WriteString(`<g id="particles">` + "\n")
	for _, p := range snap.Particles {
		half := float64(p.Size) / 2
		if d := trailPath(p.Trail, half); d != "" {
			sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1" d="%s"/>
`, trailStroke, d))
		}
		c := p.Center()
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, c.X, c.Y, half, rgb(p.Color)))
	}
	sb.WriteString("</g>\n")

	sb.WriteString(`<g id="sources">` + "\n")
	for _, s := range snap.Sources {
		fill := attractiveFill
		if s.Polarity == physics.Repulsive {
			fill = repulsiveFill
		}
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%d" height="%d" fill="%s"/>
`, s.X, s.Y, s.Size, s.Size, fill))
	}
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// WriteSVG renders the world's current state to path.
func WriteSVG(path string, w *sim.World, b dynamo.Bounds) error {
	return os.WriteFile(path, []byte(SnapshotToSVG(w.Snapshot(), w.Field(b), b)), 0644)
}

func writeArrow(sb *strings.Builder, a field.Arrow) {
	stroke := fmt.Sprintf(`stroke="rgb(0,%d,80)" stroke-opacity="%.2f"`, a.Intensity, float64(a.Alpha)/255)
	sb.WriteString(fmt.Sprintf(`<path %s d="M%.1f,%.1f L%.1f,%.1f M%.1f,%.1f L%.1f,%.1f L%.1f,%.1f"/>
`, stroke,
		a.Origin.X, a.Origin.Y, a.Tip.X, a.Tip.Y,
		a.HeadLeft.X, a.HeadLeft.Y, a.Tip.X, a.Tip.Y, a.HeadRight.X, a.HeadRight.Y))
}

// trailPath joins trail points, shifted from top-left to centre.
func trailPath(points []dynamo.Vec2, half float64) string {
	if len(points) < 2 {
		return ""
	}
	var sb strings.Builder
	for i, p := range points {
		cmd := " L"
		if i == 0 {
			cmd = "M"
		}
		sb.WriteString(fmt.Sprintf("%s%.1f,%.1f", cmd, p.X+half, p.Y+half))
	}
	return sb.String()
}

func rgb(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
