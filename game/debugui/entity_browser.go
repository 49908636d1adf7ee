package debugui

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stagecraft/game"
)

// EntityInfo is one row of the entity browser
type EntityInfo struct {
	ID     game.EntityId
	Layer  int
	Stages []string
	X, Y   float64
	Order  int
}

type EntityBrowser struct {
	entities           []EntityInfo
	selectedEntityId   game.EntityId
	filterText         string
	sortColumn         int
	sortAscending      bool
	maxEntitiesPerPage int
	currentPage        int
}

func NewEntityBrowser(maxEntitiesPerPage int) *EntityBrowser {
	return &EntityBrowser{
		sortColumn:         0,
		sortAscending:      true,
		maxEntitiesPerPage: maxEntitiesPerPage,
	}
}

// Selected returns the selected entity handle, or 0
func (eb *EntityBrowser) Selected() game.EntityId {
	return eb.selectedEntityId
}

// Select changes the selection
func (eb *EntityBrowser) Select(id game.EntityId) {
	eb.selectedEntityId = id
}

func (eb *EntityBrowser) Render(scene *game.Scene) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	eb.entities = collectEntities(scene, eb.entities[:0])
	sortEntities(eb.entities, eb.sortColumn, eb.sortAscending)

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
	}

	filtered := filterEntities(eb.entities, eb.filterText)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Order")
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Layer")
		imgui.TableSetupColumn("Stages")
		imgui.TableSetupColumn("Position")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.sortColumn = int(spec.ColumnIndex())
			eb.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortEntities(filtered, eb.sortColumn, eb.sortAscending)
			sortSpecs.SetSpecsDirty(false)
		}

		startIdx, endIdx := eb.page(len(filtered))
		for _, entity := range filtered[startIdx:endIdx] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.selectedEntityId == entity.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", entity.Order), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selectedEntityId = entity.ID
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d:%d", entity.ID.Index(), entity.ID.Generation()))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", entity.Layer))

			imgui.TableNextColumn()
			imgui.Text(strings.Join(entity.Stages, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.1f, %.1f", entity.X, entity.Y))
		}

		imgui.EndTable()
	}

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

	imgui.End()
}

func (eb *EntityBrowser) page(total int) (int, int) {
	if eb.maxEntitiesPerPage <= 0 {
		return 0, total
	}

	totalPages := max(1, (total+eb.maxEntitiesPerPage-1)/eb.maxEntitiesPerPage)
	eb.currentPage = min(eb.currentPage, totalPages-1)

	startIdx := eb.currentPage * eb.maxEntitiesPerPage
	endIdx := min(startIdx+eb.maxEntitiesPerPage, total)
	return startIdx, endIdx
}

func collectEntities(scene *game.Scene, dst []EntityInfo) []EntityInfo {
	order := 0
	for e := range scene.Ordered() {
		kinds := e.Stages()
		stages := make([]string, len(kinds))
		for i, k := range kinds {
			stages[i] = string(k)
		}

		dst = append(dst, EntityInfo{
			ID:     e.ID(),
			Layer:  e.Layer,
			Stages: stages,
			X:      e.X,
			Y:      e.Y,
			Order:  order,
		})
		order++
	}
	return dst
}

func sortEntities(entities []EntityInfo, column int, ascending bool) {
	slices.SortStableFunc(entities, func(a, b EntityInfo) int {
		var c int

		switch column {
		case 1:
			c = cmp.Compare(a.ID, b.ID)
		case 2:
			c = cmp.Compare(a.Layer, b.Layer)
		case 3:
			c = strings.Compare(strings.Join(a.Stages, ","), strings.Join(b.Stages, ","))
		case 4:
			c = cmp.Or(cmp.Compare(a.X, b.X), cmp.Compare(a.Y, b.Y))
		default:
			c = cmp.Compare(a.Order, b.Order)
		}

		if !ascending {
			return -c
		}
		return c
	})
}

func filterEntities(entities []EntityInfo, filterText string) []EntityInfo {
	if filterText == "" {
		return entities
	}

	filtered := make([]EntityInfo, 0, len(entities))
	filterLower := strings.ToLower(filterText)

	for _, entity := range entities {
		idStr := fmt.Sprintf("%d:%d", entity.ID.Index(), entity.ID.Generation())
		layerStr := fmt.Sprintf("layer %d", entity.Layer)
		stagesStr := strings.ToLower(strings.Join(entity.Stages, " "))

		if !strings.Contains(idStr, filterLower) &&
			!strings.Contains(layerStr, filterLower) &&
			!strings.Contains(stagesStr, filterLower) {
			continue
		}

		filtered = append(filtered, entity)
	}

	return filtered
}
