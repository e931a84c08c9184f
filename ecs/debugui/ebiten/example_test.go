package ebiten_test

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ajwinter/amethyst/ecs"
	"github.com/ajwinter/amethyst/ecs/debugui"
	debugui_ebiten "github.com/ajwinter/amethyst/ecs/debugui/ebiten"
)

// Game shows the minimal wiring between the ECS scheduler and the ImGui
// overlay: frame bracketing in Update, overlay drawing in Draw.
type Game struct {
	storage      *ecs.Storage
	scheduler    *ecs.Scheduler
	imguiBackend *ecs.Singleton[debugui_ebiten.ImguiBackend]
}

func (g *Game) Update() error {
	g.imguiBackend.Get().BeginFrame()

	// ImguiSystem defers the render callbacks, so they run inside the
	// BeginFrame/EndFrame bracket.
	g.scheduler.Once(1.0 / 60.0)

	g.imguiBackend.Get().EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Game rendering goes here, the overlay is composited on top.
	g.imguiBackend.Get().Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Get().Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow("Overlay Example", 1280, 720)
	imgui.CurrentIO().SetIniFilename("") // no imgui.ini on disk

	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[debugui.ImguiItem](registry)

	storage := ecs.NewStorage(registry)
	ecs.NewSingleton[debugui.ImguiInputState](storage)
	ecs.NewSingleton[debugui_ebiten.ImguiBackend](storage, debugui_ebiten.ImguiBackend{
		EbitenBackend: backend,
	})

	storage.Spawn(debugui.ImguiItem{
		Render: func() {
			imgui.Begin("Debug")
			imgui.Text("overlay active")
			imgui.End()
		},
	})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&debugui.ImguiSystem{})

	game := &Game{
		storage:      storage,
		scheduler:    scheduler,
		imguiBackend: ecs.NewSingleton[debugui_ebiten.ImguiBackend](storage),
	}
	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
