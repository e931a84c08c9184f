// Package ebiten bridges the Dear ImGui overlay onto the Ebiten game
// loop.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
)

// ImguiBackend wraps the Ebiten-specific ImGui backend so it can be
// stored as an ECS singleton. Call BeginFrame/EndFrame around the update
// scheduler and Draw from the game's Draw.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}
