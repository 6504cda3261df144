package platform

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/hubastard/grove-dialogs/engine/core"
)

func TestTranslateKey(t *testing.T) {
	cases := []struct {
		key  glfw.Key
		want int
	}{
		{glfw.KeyEnter, core.KeyEnter},
		{glfw.KeyKPEnter, core.KeyEnter},
		{glfw.KeyEscape, core.KeyEscape},
		{glfw.KeyBackspace, core.KeyBackspace},
		{glfw.KeyUp, 372},
		{glfw.KeyDown, 380},
		{glfw.KeyPageDown, 381},
		{glfw.KeyHome, 371},
		{glfw.KeyF1, 359},
		{glfw.KeyF10, 368},
		{glfw.KeyF11, 0},
		{glfw.KeyA, 0},
	}
	for _, c := range cases {
		if got := TranslateKey(c.key); got != c.want {
			t.Errorf("TranslateKey(%d) = %d, want %d", c.key, got, c.want)
		}
	}
}
