// Package debugui integrates Dear ImGui overlays with the ECS. Overlay
// windows are entities carrying an ImguiItem render function; ImguiSystem
// defers those functions to the end of the frame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/ajwinter/amethyst/ecs"
)

// ImguiItem holds a Dear ImGui render function. Attach it to an entity to
// have the function invoked every frame while the overlay is active.
type ImguiItem struct {
	Render func()
}

// ImguiInputState is a singleton mirroring ImGui's input capture flags,
// so game input systems can yield to the overlay.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem updates ImguiInputState and queues every ImguiItem render
// function for execution after the frame's systems.
type ImguiSystem struct {
	Items      ecs.Query[struct{ *ImguiItem }]
	InputState ecs.Singleton[ImguiInputState]
}

func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	state := i.InputState.Get()
	state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for item := range i.Items.Iter() {
		frame.Commands.Defer(item.ImguiItem.Render)
	}
}
