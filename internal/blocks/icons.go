// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package blocks

import (
	"fmt"
	"html/template"
)

// Icon is an enumerated icon identifier. Feature items store icon names as
// strings; LookupIcon maps any string to an Icon, defaulting to IconCircle,
// so icon resolution never fails at render time.
type Icon string

// Icons available to blocks and feature items.
const (
	IconCircle    Icon = "circle" // fallback
	IconBox       Icon = "box"
	IconLayers    Icon = "layers"
	IconShield    Icon = "shield"
	IconLeaf      Icon = "leaf"
	IconTruck     Icon = "truck"
	IconStar      Icon = "star"
	IconGlobe     Icon = "globe"
	IconCheck     Icon = "check"
	IconRecycle   Icon = "recycle"
	IconFactory   Icon = "factory"
	IconMail      Icon = "mail"
	IconPhone     Icon = "phone"
	IconLayout    Icon = "layout"
	IconAlignLeft Icon = "align-left"
	IconImage     Icon = "image"
	IconMegaphone Icon = "megaphone"
	IconGrid      Icon = "grid"
	IconQuote     Icon = "quote"
	IconVideo     Icon = "video"
	IconHelp      Icon = "help"
	IconTag       Icon = "tag"
	IconUsers     Icon = "users"
	IconBarChart  Icon = "bar-chart"
)

// iconPaths holds the SVG path data for each icon, drawn on a 24x24 grid.
var iconPaths = map[Icon]string{
	IconCircle:    "M12 2a10 10 0 1 0 0 20 10 10 0 0 0 0-20z",
	IconBox:       "M21 8l-9-5-9 5v8l9 5 9-5V8zM12 13L3 8m9 5l9-5m-9 5v8",
	IconLayers:    "M12 2l10 5-10 5L2 7l10-5zM2 17l10 5 10-5M2 12l10 5 10-5",
	IconShield:    "M12 2l8 4v6c0 5-3.5 8.5-8 10-4.5-1.5-8-5-8-10V6l8-4z",
	IconLeaf:      "M6 21c10 0 14-8 14-16-8 0-16 4-16 14 0 .7 0 1.3.2 2",
	IconTruck:     "M1 7h14v9H1zM15 10h4l3 3v3h-7m-9 2a2 2 0 1 0 0-4 2 2 0 0 0 0 4zm12 0a2 2 0 1 0 0-4 2 2 0 0 0 0 4z",
	IconStar:      "M12 2l3 6.5 7 .8-5.2 4.7L18.5 21 12 17.3 5.5 21l1.7-7L2 9.3l7-.8L12 2z",
	IconGlobe:     "M12 2a10 10 0 1 0 0 20 10 10 0 0 0 0-20zM2 12h20M12 2c3 3 3 17 0 20-3-3-3-17 0-20z",
	IconCheck:     "M20 6L9 17l-5-5",
	IconRecycle:   "M7 19l-3-5 3-5m10 10l3-5-3-5M7 9h10M7 19h10",
	IconFactory:   "M2 21V9l6 4V9l6 4V5h8v16H2z",
	IconMail:      "M3 5h18v14H3zM3 6l9 7 9-7",
	IconPhone:     "M4 3h5l2 5-3 2a12 12 0 0 0 6 6l2-3 5 2v5a2 2 0 0 1-2 2A18 18 0 0 1 2 5a2 2 0 0 1 2-2z",
	IconLayout:    "M3 3h18v18H3zM3 9h18M9 9v12",
	IconAlignLeft: "M3 6h18M3 10h12M3 14h18M3 18h12",
	IconImage:     "M3 3h18v18H3zM8 11a2 2 0 1 0 0-4 2 2 0 0 0 0 4zm13 6l-6-6-9 9",
	IconMegaphone: "M3 9v6h4l8 5V4L7 9H3zM18 8a5 5 0 0 1 0 8",
	IconGrid:      "M3 3h7v7H3zM14 3h7v7h-7zM3 14h7v7H3zM14 14h7v7h-7z",
	IconQuote:     "M6 11h4v6H4v-4c0-4 2-7 6-8v3c-2 .5-3 1.5-4 3zm10 0h4v6h-6v-4c0-4 2-7 6-8v3c-2 .5-3 1.5-4 3z",
	IconVideo:     "M2 6h13v12H2zM15 10l7-4v12l-7-4",
	IconHelp:      "M12 2a10 10 0 1 0 0 20 10 10 0 0 0 0-20zM9 9a3 3 0 1 1 4 2.8c-.8.3-1 1-1 2.2m0 3h0",
	IconTag:       "M3 3h8l10 10-8 8L3 11V3zm5 5h0",
	IconUsers:     "M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2M9 11a4 4 0 1 0 0-8 4 4 0 0 0 0 8zm13 10v-2a4 4 0 0 0-3-3.9M16 3.1a4 4 0 0 1 0 7.8",
	IconBarChart:  "M4 20V10M10 20V4M16 20v-8M22 20H2",
}

// LookupIcon resolves an icon name to an Icon. Unknown or empty names yield
// IconCircle rather than failing.
func LookupIcon(name string) Icon {
	if _, ok := iconPaths[Icon(name)]; ok {
		return Icon(name)
	}
	return IconCircle
}

// SVG returns inline SVG markup for the icon. The path data is a fixed
// compile-time table, so the markup is safe to emit directly.
func (i Icon) SVG() template.HTML {
	path, ok := iconPaths[i]
	if !ok {
		path = iconPaths[IconCircle]
	}
	svg := fmt.Sprintf(
		`<svg class="icon icon-%s" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true"><path d="%s"/></svg>`,
		i, path,
	)
	return template.HTML(svg)
}
