package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/loom/ecs"
)

// StatsWindow shows world storage statistics, per-system timings, and a
// frame-time graph.
type StatsWindow struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewStatsWindow(historyFrames int) *StatsWindow {
	return &StatsWindow{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

func (sw *StatsWindow) Render(w *ecs.World, s *ecs.Scheduler, deltaTime float32) {
	if !imgui.BeginV("World Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	sw.frameHistory[sw.frameIndex] = deltaTime * 1000.0
	sw.frameIndex = (sw.frameIndex + 1) % sw.historyFrames

	stats := w.CollectStats()

	imgui.Text(fmt.Sprintf("Entities: %d", stats.EntityCount))
	imgui.Text(fmt.Sprintf("Archetypes: %d", stats.ArchetypeCount))
	imgui.Text(fmt.Sprintf("Prefabs: %d  Patterns: %d  Resources: %d",
		stats.PrefabCount, stats.PatternCount, stats.ResourceCount))

	var avgFrameTime float32
	for _, ft := range sw.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(sw.historyFrames)

	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &sw.frameHistory[0], int32(len(sw.frameHistory)))

	if imgui.TreeNodeStr("Archetype Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("ArchStatsTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Signature")
			imgui.TableSetupColumn("Entity Count")
			imgui.TableHeadersRow()

			for _, arch := range stats.ArchetypeBreakdown {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(signatureLabel(arch.Signature))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", arch.EntityCount))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if s != nil {
		if imgui.TreeNodeStr("System Details") {
			schedStats := s.CollectStats()
			imgui.Text(fmt.Sprintf("Systems: %d  Groups: %d", schedStats.SystemCount, schedStats.GroupCount))
			for _, sys := range schedStats.Systems {
				label := fmt.Sprintf("priority %d", sys.Priority)
				if sys.Group != "" {
					label += " [" + sys.Group + "]"
				}
				if !sys.Enabled {
					label += " (disabled)"
				}
				imgui.BulletText(fmt.Sprintf("%s: %v", label, sys.LastRun))
			}
			imgui.TreePop()
		}
	}

	imgui.End()
}

func signatureLabel(signature []string) string {
	if len(signature) == 0 {
		return "(empty)"
	}
	return strings.Join(signature, ", ")
}
