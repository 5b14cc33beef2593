package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/loom/ecs"
)

type entityInfo struct {
	id             ecs.EntityId
	signature      string
	componentCount int
}

// EntityBrowser is a paginated, filterable table of every live entity with
// its id and component signature.
type EntityBrowser struct {
	entities        []entityInfo
	lastEntityCount int
	lastArchCount   int

	selectedId         ecs.EntityId
	filterText         string
	maxEntitiesPerPage int
	currentPage        int
	sortColumn         int
	sortAscending      bool
}

func NewEntityBrowser(maxEntitiesPerPage int) *EntityBrowser {
	return &EntityBrowser{
		maxEntitiesPerPage: maxEntitiesPerPage,
		sortAscending:      true,
	}
}

func (eb *EntityBrowser) Render(w *ecs.World) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	eb.rebuildCacheIfNeeded(w)

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Signature")
		imgui.TableSetupColumn("Components")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.sortColumn = int(spec.ColumnIndex())
			eb.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			eb.sortEntities()
			sortSpecs.SetSpecsDirty(false)
		}

		filtered := eb.filteredEntities()

		startIdx := eb.currentPage * eb.maxEntitiesPerPage
		if startIdx >= len(filtered) {
			startIdx = 0
			eb.currentPage = 0
		}
		endIdx := startIdx + eb.maxEntitiesPerPage
		if endIdx > len(filtered) {
			endIdx = len(filtered)
		}

		for i := startIdx; i < endIdx; i++ {
			entity := filtered[i]
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.selectedId == entity.id
			if imgui.SelectableBoolV(fmt.Sprintf("%d:%d", entity.id.Slot(), entity.id.Generation()), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selectedId = entity.id
			}

			imgui.TableNextColumn()
			imgui.Text(entity.signature)

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", entity.componentCount))
		}

		imgui.EndTable()
	}

	filtered := eb.filteredEntities()
	if len(filtered) > eb.maxEntitiesPerPage {
		totalPages := (len(filtered) + eb.maxEntitiesPerPage - 1) / eb.maxEntitiesPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filtered)))
	}

	eb.renderSelected(w)

	imgui.End()
}

// renderSelected shows the selected entity's component values inline.
func (eb *EntityBrowser) renderSelected(w *ecs.World) {
	e := w.Entity(eb.selectedId)
	if !e.Valid() {
		return
	}
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Entity %d:%d", eb.selectedId.Slot(), eb.selectedId.Generation()))
	for _, key := range e.Components() {
		value, _ := e.Get(key)
		imgui.BulletText(fmt.Sprintf("%s = %v", key, value))
	}
}

func (eb *EntityBrowser) rebuildCacheIfNeeded(w *ecs.World) {
	stats := w.CollectStats()
	if eb.entities != nil && stats.EntityCount == eb.lastEntityCount && stats.ArchetypeCount == eb.lastArchCount {
		return
	}
	eb.lastEntityCount = stats.EntityCount
	eb.lastArchCount = stats.ArchetypeCount

	eb.entities = make([]entityInfo, 0, stats.EntityCount)
	w.EachEntity(func(e ecs.Entity) {
		signature := e.Components()
		eb.entities = append(eb.entities, entityInfo{
			id:             e.Id,
			signature:      signatureLabel(signature),
			componentCount: len(signature),
		})
	})
	eb.sortEntities()
}

func (eb *EntityBrowser) sortEntities() {
	sort.Slice(eb.entities, func(i, j int) bool {
		a, b := eb.entities[i], eb.entities[j]
		var less bool

		switch eb.sortColumn {
		case 1:
			less = a.signature < b.signature
		case 2:
			less = a.componentCount < b.componentCount
		default:
			less = a.id < b.id
		}

		if !eb.sortAscending {
			return !less
		}
		return less
	})
}

func (eb *EntityBrowser) filteredEntities() []entityInfo {
	if eb.filterText == "" {
		return eb.entities
	}

	filterLower := strings.ToLower(eb.filterText)
	filtered := make([]entityInfo, 0, len(eb.entities))
	for _, entity := range eb.entities {
		idStr := fmt.Sprintf("%d:%d", entity.id.Slot(), entity.id.Generation())
		if !strings.Contains(idStr, filterLower) &&
			!strings.Contains(strings.ToLower(entity.signature), filterLower) {
			continue
		}
		filtered = append(filtered, entity)
	}
	return filtered
}

// SelectedEntity returns the id of the row picked in the table, if any.
func (eb *EntityBrowser) SelectedEntity() ecs.EntityId {
	return eb.selectedId
}
