package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/jitsnap/internal/ui/output"
)

func TestColorProfile(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile(), "NO_COLOR should force Ascii profile")

	// Without NO_COLOR the profile depends on the environment.
	t.Setenv("NO_COLOR", "")
	p := output.ColorProfile()
	assert.True(t, p >= termenv.TrueColor && p <= termenv.Ascii, "should return a valid profile")
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	out := output.New(&buf)
	assert.NotNil(t, out)

	_, _ = out.WriteString("test")
	assert.Equal(t, "test", buf.String())
}

func TestNew_Nil(t *testing.T) {
	out := output.New(nil)
	assert.NotNil(t, out)
}

func TestRenderer(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	r := output.Renderer(&buf)
	assert.Equal(t, termenv.Ascii, r.ColorProfile())

	rendered := r.NewStyle().Bold(true).Render("main.js")
	assert.Equal(t, "main.js", rendered)
}

func TestRenderer_Nil(t *testing.T) {
	assert.NotNil(t, output.Renderer(nil))
}
