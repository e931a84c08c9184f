package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/ajwinter/amethyst/ecs"
	"github.com/ajwinter/amethyst/utils/fpscounter"
)

// PerformanceWindow returns an ImguiItem render function showing the
// sampled FPS, storage contents, and per-system execution times.
func PerformanceWindow(storage *ecs.Storage, scheduler *ecs.Scheduler) func() {
	return func() {
		if !imgui.BeginV("Performance", nil, imgui.WindowFlagsNone) {
			imgui.End()
			return
		}

		var counter *fpscounter.FPSCounter
		if storage.ReadSingleton(&counter) {
			imgui.Text(fmt.Sprintf("Sampled FPS: %.2f", counter.SampledFPS()))
			imgui.Separator()
		}

		stats := storage.CollectStats()
		imgui.Text(fmt.Sprintf("Entities: %d", stats.TotalEntityCount))
		imgui.Text(fmt.Sprintf("Archetypes: %d", stats.ArchetypeCount))
		imgui.Text(fmt.Sprintf("Singletons: %d", stats.SingletonCount))

		if imgui.TreeNodeStr("Systems") {
			schedStats := scheduler.GetStats()
			const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
			if imgui.BeginTableV("SystemStatsTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
				imgui.TableSetupColumn("System")
				imgui.TableSetupColumn("Last")
				imgui.TableSetupColumn("Avg")
				imgui.TableHeadersRow()

				for _, sys := range schedStats.Systems {
					imgui.TableNextRow()
					imgui.TableNextColumn()
					imgui.Text(sys.Name)
					imgui.TableNextColumn()
					imgui.Text(sys.LastDuration.String())
					imgui.TableNextColumn()
					imgui.Text(sys.AvgDuration.String())
				}

				imgui.EndTable()
			}
			imgui.TreePop()
		}

		imgui.End()
	}
}
