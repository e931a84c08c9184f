package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/ajwinter/amethyst/core"
	"github.com/ajwinter/amethyst/ecs"
)

// EntityBrowserWindow returns an ImguiItem render function listing every
// archetype and its entities. Entities carrying core.Named show their
// logical name.
func EntityBrowserWindow(storage *ecs.Storage) func() {
	return func() {
		if !imgui.BeginV("Entities", nil, imgui.WindowFlagsNone) {
			imgui.End()
			return
		}

		stats := storage.CollectStats()
		for _, arch := range stats.ArchetypeBreakdown {
			header := fmt.Sprintf("0x%X (%d) %s", arch.ID, arch.EntityCount,
				strings.Join(arch.ComponentTypes, ", "))

			if !imgui.TreeNodeStr(header) {
				continue
			}

			archetype := storage.GetArchetypeByID(arch.ID)
			if archetype != nil {
				for id := range archetype.Iter() {
					label := fmt.Sprintf("entity %d", id.Index())
					if named := ecs.ReadComponent[core.Named](storage, id); named != nil {
						label = fmt.Sprintf("%s (%d)", named.Name, id.Index())
					}
					imgui.BulletText(label)
				}
			}

			imgui.TreePop()
		}

		imgui.End()
	}
}
