package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyray-renderer/internal/camera"
	"skyray-renderer/internal/ppm"
	"skyray-renderer/internal/shade"
)

func inspect(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func sampleLine(t *testing.T, out, name string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) > 0 && fields[0] == name {
			return line
		}
	}
	t.Fatalf("no %q line in output:\n%s", name, out)
	return ""
}

func TestInspectDefaultViewport(t *testing.T) {
	out := inspect(t)

	assert.Contains(t, out, "Viewport: camera.Viewport{")
	assert.Contains(t, out, "Width:")
	assert.Contains(t, out, "225")

	vp, err := camera.New(camera.DefaultParams())
	require.NoError(t, err)

	r, g, b := ppm.ColorBytes(shade.Sky(vp.RayThrough(0, 0)))
	line := sampleLine(t, out, "top-left")
	assert.True(t, strings.HasSuffix(line, fmt.Sprintf("-> %d %d %d", r, g, b)), line)

	r, g, b = ppm.ColorBytes(shade.Sky(vp.RayThrough(vp.Width-1, vp.Height-1)))
	line = sampleLine(t, out, "bottom-right")
	assert.Contains(t, line, "(399,224)")
	assert.True(t, strings.HasSuffix(line, fmt.Sprintf("-> %d %d %d", r, g, b)), line)

	for _, name := range []string{"top-right", "center", "bottom-left"} {
		sampleLine(t, out, name)
	}
}

func TestInspectHonorsFlags(t *testing.T) {
	out := inspect(t, "--width", "20", "--aspect", "1:1")
	line := sampleLine(t, out, "bottom-right")
	assert.Contains(t, line, "( 19, 19)")
}

func TestInspectRejectsBadAspect(t *testing.T) {
	var out, errOut bytes.Buffer
	cmd := newCommand()
	cmd.SetArgs([]string{"--aspect", "wide"})
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	assert.Error(t, cmd.Execute())
	assert.Contains(t, errOut.String(), "aspect")
}
