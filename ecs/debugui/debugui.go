// Package debugui provides immediate-mode debug overlays for ECS worlds
// using Dear ImGui. It renders world and scheduler statistics, a browsable
// entity table, and any custom widgets attached to entities as ImguiItem
// components.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/loom/ecs"
)

// ItemKey is the component key for entity-attached ImGui widgets. Attach an
// ImguiItem value under this key and the overlay renders it each frame.
const ItemKey = "debugui.item"

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// Overlay bundles the built-in debug windows. Render it once per frame
// between the backend's BeginFrame and EndFrame calls.
type Overlay struct {
	Stats   *StatsWindow
	Browser *EntityBrowser

	items *ecs.Query
}

// NewOverlay creates an overlay with a stats window (120 frames of history)
// and an entity browser (100 entities per page).
func NewOverlay(w *ecs.World) *Overlay {
	return &Overlay{
		Stats:   NewStatsWindow(120),
		Browser: NewEntityBrowser(100),
		items:   w.Query().With(ItemKey),
	}
}

// Render draws the built-in windows and every ImguiItem widget. The
// scheduler may be nil, in which case system stats are omitted.
func (o *Overlay) Render(w *ecs.World, s *ecs.Scheduler, deltaTime float32) {
	o.Stats.Render(w, s, deltaTime)
	o.Browser.Render(w)

	o.items.Each(func(e ecs.Entity, components ...any) {
		if item, ok := components[0].(ImguiItem); ok && item.Render != nil {
			item.Render()
		}
	})
}

// InputCaptured reports whether ImGui currently wants the mouse or
// keyboard. Game input handlers should back off while this is true.
func InputCaptured() (mouse, keyboard bool) {
	io := imgui.CurrentIO()
	return io.WantCaptureMouse(), io.WantCaptureKeyboard()
}
