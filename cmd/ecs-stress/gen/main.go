// Command gen emits the stress tool's synthetic component and system
// definitions. Run it through go:generate after changing the counts.
package main

import (
	"bytes"
	"flag"
	"log"
	"os"
	"text/template"

	"golang.org/x/tools/imports"
)

const fileTemplate = `// Code generated by gen. DO NOT EDIT.

package main

import (
	"math/rand"

	"github.com/ajwinter/amethyst/ecs"
)

{{range .Components}}
type StressComp{{.}} struct {
	A float64
	B int64
}
{{end}}

func RegisterAllGeneratedComponents(registry *ecs.ComponentRegistry) {
{{- range .Components}}
	ecs.RegisterComponent[StressComp{{.}}](registry)
{{- end}}
}

var componentFactories = []func() any{
{{- range .Components}}
	func() any { return StressComp{{.}}{A: rand.Float64(), B: rand.Int63n(1000)} },
{{- end}}
}

// SpawnRandomEntity spawns an entity carrying numComponents distinct
// random component types.
func SpawnRandomEntity(storage *ecs.Storage, numComponents int) ecs.EntityId {
	if numComponents < 1 {
		numComponents = 1
	}
	if numComponents > len(componentFactories) {
		numComponents = len(componentFactories)
	}

	components := make([]any, 0, numComponents)
	for _, idx := range rand.Perm(len(componentFactories))[:numComponents] {
		components = append(components, componentFactories[idx]())
	}
	return storage.Spawn(components...)
}

{{range .Systems}}
type StressSystem{{.Index}} struct {
	Entities ecs.Query[struct {
		*StressComp{{.First}}
		*StressComp{{.Second}}
	}]
}

func (s *StressSystem{{.Index}}) Execute(frame *ecs.UpdateFrame) {
	for item := range s.Entities.Iter() {
		item.StressComp{{.First}}.A += item.StressComp{{.Second}}.A * frame.DeltaTime
		item.StressComp{{.First}}.B++
	}
}
{{end}}

func RegisterAllGeneratedSystems(scheduler *ecs.Scheduler) {
{{- range .Systems}}
	scheduler.Register(&StressSystem{{.Index}}{})
{{- end}}
}
`

type systemSpec struct {
	Index  int
	First  int
	Second int
}

func main() {
	componentCount := flag.Int("components", 16, "number of component types to generate")
	systemCount := flag.Int("systems", 8, "number of systems to generate")
	out := flag.String("out", "world_gen.go", "output file")
	flag.Parse()

	components := make([]int, *componentCount)
	for i := range components {
		components[i] = i
	}

	systems := make([]systemSpec, *systemCount)
	for i := range systems {
		systems[i] = systemSpec{
			Index:  i,
			First:  i % *componentCount,
			Second: (i + 1) % *componentCount,
		}
	}

	tmpl := template.Must(template.New("world").Parse(fileTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any{
		"Components": components,
		"Systems":    systems,
	}); err != nil {
		log.Fatalf("render template: %v", err)
	}

	formatted, err := imports.Process(*out, buf.Bytes(), nil)
	if err != nil {
		log.Fatalf("format output: %v", err)
	}

	if err := os.WriteFile(*out, formatted, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
}
