package focus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/focusdeck-io/focusdeck/internal/focus"
	"github.com/focusdeck-io/focusdeck/internal/models"
)

func TestToggleEmitsOneDirectivePerEnabledFlag(t *testing.T) {
	c := focus.NewController()

	cfg := models.FocusModeConfig{
		HideSidebar:   true,
		HideStatusBar: true,
	}

	enabled, directives := c.Toggle(cfg)
	assert.True(t, enabled)
	require.Len(t, directives, 2)
	assert.Equal(t, focus.Directive{Surface: focus.SurfaceSidebar, Visible: false}, directives[0])
	assert.Equal(t, focus.Directive{Surface: focus.SurfaceStatusBar, Visible: false}, directives[1])
}

func TestToggleBackRestoresVisibility(t *testing.T) {
	c := focus.NewController()
	cfg := models.FocusModeConfig{HidePanel: true}

	enabled, directives := c.Toggle(cfg)
	assert.True(t, enabled)
	require.Len(t, directives, 1)
	assert.False(t, directives[0].Visible)

	enabled, directives = c.Toggle(cfg)
	assert.False(t, enabled)
	require.Len(t, directives, 1)
	assert.True(t, directives[0].Visible)
}

func TestDoubleToggleIsIdentity(t *testing.T) {
	c := focus.NewController()
	cfg := models.DefaultFocusMode()

	var states []bool
	for i := 0; i < 2; i++ {
		enabled, _ := c.Toggle(cfg)
		states = append(states, enabled)
	}

	assert.Equal(t, []bool{true, false}, states)
	assert.False(t, c.Enabled())
}

func TestDisabledFlagsProduceNoDirectives(t *testing.T) {
	c := focus.NewController()

	_, directives := c.Toggle(models.FocusModeConfig{})
	assert.Empty(t, directives, "untouched surfaces are not forced visible")
}

func TestAllSurfacesCovered(t *testing.T) {
	c := focus.NewController()
	cfg := models.FocusModeConfig{
		HideSidebar:     true,
		HideActivityBar: true,
		HideStatusBar:   true,
		HidePanel:       true,
		HideMinimap:     true,
		HideLineNumbers: true,
	}

	_, directives := c.Toggle(cfg)
	require.Len(t, directives, 6)

	seen := map[focus.Surface]bool{}
	for _, d := range directives {
		seen[d.Surface] = true
	}
	for _, s := range []focus.Surface{
		focus.SurfaceSidebar, focus.SurfaceActivityBar, focus.SurfaceStatusBar,
		focus.SurfacePanel, focus.SurfaceMinimap, focus.SurfaceLineNumbers,
	} {
		assert.True(t, seen[s], "missing directive for %s", s)
	}
}
