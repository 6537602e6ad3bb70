package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	"github.com/Carmen-Shannon/oxy-configurator/common"
	"github.com/Carmen-Shannon/oxy-configurator/engine"
	"github.com/Carmen-Shannon/oxy-configurator/engine/camera"
	"github.com/Carmen-Shannon/oxy-configurator/engine/configurator"
	"github.com/Carmen-Shannon/oxy-configurator/engine/light"
	"github.com/Carmen-Shannon/oxy-configurator/engine/loader"
	"github.com/Carmen-Shannon/oxy-configurator/engine/mesh"
	"github.com/Carmen-Shannon/oxy-configurator/engine/renderer"
	"github.com/Carmen-Shannon/oxy-configurator/engine/scene"
	"github.com/Carmen-Shannon/oxy-configurator/engine/window"
)

// part pairs a display name with the mesh's index in the configurator.
type part struct {
	name    string
	meshIdx int
}

func main() {
	catalogPath := flag.String("catalog", "assets/catalog.yaml", "path to the product catalog file")
	width := flag.Int("width", 0, "window width in pixels (overrides the catalog)")
	height := flag.Int("height", 0, "window height in pixels (overrides the catalog)")
	maxTextureSize := flag.Int("max-texture-size", 2048, "longest allowed texture side in pixels (0 = no limit)")
	frameLimit := flag.Float64("frame-limit", 0, "render frame rate cap (0 = uncapped)")
	profile := flag.Bool("profile", false, "log frame rate and memory statistics")
	flag.Parse()

	ldr := loader.NewLoader(loader.WithMaxTextureSize(*maxTextureSize))
	loaded, err := ldr.LoadCatalog(*catalogPath)
	if err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}

	title := common.Coalesce(loaded.Spec.Window.Title, "Teapot Configurator")
	winWidth := common.Coalesce(*width, loaded.Spec.Window.Width, 1280)
	winHeight := common.Coalesce(*height, loaded.Spec.Window.Height, 720)

	win := window.NewWindow(
		window.WithTitle(title),
		window.WithWidth(winWidth),
		window.WithHeight(winHeight),
	)
	rend := renderer.NewRenderer(renderer.BackendTypeWGPU, win)

	ctrl := camera.NewOrbitController(
		camera.WithRadius(7),
		camera.WithTarget(0, 1.4, 0),
		camera.WithElevation(math.Pi/8),
	)
	cam := camera.NewCamera(
		camera.WithController(ctrl),
		camera.WithAspect(float32(win.Width())/float32(win.Height())),
	)

	body := mesh.NewTeapotBody()
	lid := mesh.NewTeapotLid()

	sc := scene.NewScene(
		scene.WithName("teapot"),
		scene.WithCamera(cam),
		scene.WithLight(light.NewLight()),
		scene.WithRenderer(rend),
		scene.WithMeshes(body, lid),
	)
	if err := sc.Initialize(); err != nil {
		log.Fatalf("failed to initialize scene: %v", err)
	}

	// Both parts start on the first catalog material, so they share one
	// material entry and texture changes apply to the whole teapot until one
	// part is reassigned.
	cfg := configurator.NewConfigurator(configurator.WithMaterials(loaded.Materials...))
	for _, set := range loaded.TextureSets {
		cfg.AddTexture(set.Name, set.Diffuse, set.Bump)
	}
	parts := []part{
		{name: "body", meshIdx: cfg.AddMesh(body, 0)},
		{name: "lid", meshIdx: cfg.AddMesh(lid, 0)},
	}

	// Material selection is tracked per part here; texture selection lives on
	// the shared material entries inside the configurator.
	selected := 0
	materialSel := make([]int, len(parts))

	materialName := func(idx int) string {
		return cfg.Materials()[idx].Name()
	}
	textureName := func(meshIdx int) string {
		return cfg.Textures()[cfg.TextureIndex(meshIdx)].Name
	}
	updateTitle := func() {
		p := parts[selected]
		linked := ""
		for i, other := range parts {
			if i != selected && cfg.HaveSameMaterial(p.meshIdx, other.meshIdx) {
				linked = " (linked)"
				break
			}
		}
		win.SetTitle(fmt.Sprintf("%s | part: %s | material: %s | texture: %s%s",
			title, p.name, materialName(materialSel[selected]), textureName(p.meshIdx), linked))
	}

	applyMaterial := func(materialIdx int) {
		p := parts[selected]
		texIdx := cfg.SetMaterial(p.meshIdx, materialIdx)
		materialSel[selected] = materialIdx
		fmt.Printf("[%s] material: %s, texture restored: %s\n",
			p.name, materialName(materialIdx), cfg.Textures()[texIdx].Name)
		updateTitle()
	}
	cycleMaterial := func(delta int) {
		applyMaterial(common.WrapIndex(materialSel[selected], delta, cfg.MaterialCount()))
	}
	cycleTexture := func(delta int) {
		p := parts[selected]
		texIdx := common.WrapIndex(cfg.TextureIndex(p.meshIdx), delta, cfg.TextureCount())
		cfg.SetTexture(p.meshIdx, texIdx)
		fmt.Printf("[%s] texture: %s\n", p.name, cfg.Textures()[texIdx].Name)
		updateTitle()
	}

	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithScene(0, sc),
		engine.WithProfiling(*profile),
		engine.WithRenderFrameLimit(*frameLimit),
	)

	eng.Window().SetKeyDownCallback(func(keyCode uint32) {
		switch {
		case keyCode == common.KeyTab:
			selected = common.WrapIndex(selected, 1, len(parts))
			fmt.Printf("selected part: %s\n", parts[selected].name)
			updateTitle()
		case keyCode == common.KeyRight || keyCode == common.KeyM:
			cycleMaterial(1)
		case keyCode == common.KeyLeft:
			cycleMaterial(-1)
		case keyCode == common.KeyUp || keyCode == common.KeyT:
			cycleTexture(1)
		case keyCode == common.KeyDown:
			cycleTexture(-1)
		case keyCode >= common.Key1 && keyCode <= common.Key9:
			if idx := int(keyCode - common.Key1); idx < cfg.MaterialCount() {
				applyMaterial(idx)
			}
		}
	})

	var dragging bool
	var lastX, lastY int32

	eng.Window().SetMouseDownCallback(func(x, y int32) {
		dragging = true
		lastX, lastY = x, y
	})
	eng.Window().SetMouseUpCallback(func(_, _ int32) {
		dragging = false
	})
	eng.Window().SetMouseMoveCallback(func(x, y int32) {
		if !dragging {
			return
		}
		ctrl.Drag(float32(x-lastX), float32(y-lastY))
		lastX, lastY = x, y
	})
	eng.Window().SetScrollCallback(func(delta float32) {
		ctrl.Zoom(delta)
	})

	fmt.Println("controls:")
	fmt.Println("  Tab          select part (body / lid)")
	fmt.Println("  Left/Right   cycle material for the selected part (M = next)")
	fmt.Println("  Up/Down      cycle texture for the selected part (T = next)")
	fmt.Println("  1-9          pick a material directly")
	fmt.Println("  drag         orbit the camera, scroll to zoom")
	updateTitle()

	eng.Run()
}
