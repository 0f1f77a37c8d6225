// Package focus implements the focus-mode toggle and its display directives.
package focus

import (
	"github.com/focusdeck-io/focusdeck/internal/models"
)

// Surface identifies one hideable panel surface.
type Surface string

// The six hideable surfaces.
const (
	SurfaceSidebar     Surface = "sidebar"
	SurfaceActivityBar Surface = "activity_bar"
	SurfaceStatusBar   Surface = "status_bar"
	SurfacePanel       Surface = "panel"
	SurfaceMinimap     Surface = "minimap"
	SurfaceLineNumbers Surface = "line_numbers"
)

// Directive instructs the host to show or hide one surface.
type Directive struct {
	Surface Surface
	Visible bool
}

// Controller holds the focus-mode boolean. Default is disabled. Toggle is
// its own inverse: applying it twice restores the original state.
type Controller struct {
	enabled bool
}

// NewController creates a controller with focus mode disabled.
func NewController() *Controller {
	return &Controller{}
}

// Enabled reports whether focus mode is on.
func (c *Controller) Enabled() bool {
	return c.enabled
}

// Toggle flips the focus-mode boolean and returns one directive per focus
// flag that is set: visibility is the negation of the new enabled state.
// Flags that are false produce no directive; that surface is left
// untouched, not forced visible.
func (c *Controller) Toggle(cfg models.FocusModeConfig) (enabled bool, directives []Directive) {
	c.enabled = !c.enabled
	visible := !c.enabled

	if cfg.HideSidebar {
		directives = append(directives, Directive{Surface: SurfaceSidebar, Visible: visible})
	}
	if cfg.HideActivityBar {
		directives = append(directives, Directive{Surface: SurfaceActivityBar, Visible: visible})
	}
	if cfg.HideStatusBar {
		directives = append(directives, Directive{Surface: SurfaceStatusBar, Visible: visible})
	}
	if cfg.HidePanel {
		directives = append(directives, Directive{Surface: SurfacePanel, Visible: visible})
	}
	if cfg.HideMinimap {
		directives = append(directives, Directive{Surface: SurfaceMinimap, Visible: visible})
	}
	if cfg.HideLineNumbers {
		directives = append(directives, Directive{Surface: SurfaceLineNumbers, Visible: visible})
	}

	return c.enabled, directives
}
