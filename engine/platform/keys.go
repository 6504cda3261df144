package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/hubastard/grove-dialogs/engine/core"
)

// keyCodes maps the non-printable GLFW keys to legacy key codes. Printable
// keys reach the engine through the char callback.
var keyCodes = map[glfw.Key]int{
	glfw.KeyBackspace: core.KeyBackspace,
	glfw.KeyTab:       core.KeyTab,
	glfw.KeyEnter:     core.KeyEnter,
	glfw.KeyKPEnter:   core.KeyEnter,
	glfw.KeyEscape:    core.KeyEscape,
	glfw.KeyHome:      core.KeyHome,
	glfw.KeyUp:        core.KeyUp,
	glfw.KeyPageUp:    core.KeyPageUp,
	glfw.KeyLeft:      core.KeyLeft,
	glfw.KeyRight:     core.KeyRight,
	glfw.KeyEnd:       core.KeyEnd,
	glfw.KeyDown:      core.KeyDown,
	glfw.KeyPageDown:  core.KeyPageDown,
	glfw.KeyInsert:    core.KeyInsert,
	glfw.KeyDelete:    core.KeyDelete,
}

// TranslateKey returns the legacy code for k, or 0 when k is printable or
// unknown.
func TranslateKey(k glfw.Key) int {
	if code, ok := keyCodes[k]; ok {
		return code
	}
	if k >= glfw.KeyF1 && k <= glfw.KeyF10 {
		return core.KeyF1 + int(k-glfw.KeyF1)
	}
	return 0
}
