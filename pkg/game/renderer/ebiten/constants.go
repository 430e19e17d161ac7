// Package ebiten provides an Ebiten-based 2D graphical renderer.
package ebiten

import "image/color"

// Color palette
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground   = color.RGBA{15, 15, 26, 255}    // Darker for path cells
	colorWall            = color.RGBA{60, 60, 80, 255}    // Wall blocks
	colorWallEdge        = color.RGBA{90, 90, 115, 255}   // Lighter top edge on walls
	colorPlayer          = color.RGBA{0, 255, 0, 255}     // Bright green
	colorExit            = color.RGBA{100, 255, 100, 255} // Bright green
	colorExitBg          = color.RGBA{30, 80, 30, 255}    // Dark green under the exit
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorSubtle          = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorAction          = color.RGBA{180, 150, 250, 255} // Blue-purple
	colorDenied          = color.RGBA{255, 100, 100, 255} // Bright red
	colorSuccess         = color.RGBA{100, 255, 150, 255} // Green
	colorPanelBackground = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
)

// Layout constants
const (
	baseFontSize   = 14.0
	hudPadding     = 8
	hudLineSpacing = 4
	maxHUDMessages = 3
)
