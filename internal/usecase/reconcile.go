package usecase

import (
	"restaurant_tabs/internal/domain/entities"
)

// Reconcile merges the latest confirmed server items with the locally queued
// pending items into one display row per menu item, plus totals.
//
// Two passes, additive then overlay:
//
//	1st pass (confirmed rows): duplicate server rows for the same menu item are
//	collapsed by adding their quantities; the first non-empty note wins.
//	2nd pass (pending rows): sets the pending delta on the matching row and
//	overwrites the note (a pending note always shadows the confirmed note);
//	unmatched pending items become zero-confirmed rows.
//
// Rows keep first-seen order. The function is pure: re-running it on the same
// snapshot yields the same output.
func Reconcile(confirmed []entities.ConfirmedLineItem, pending []entities.PendingLineItem) entities.TabView {
	byItem := make(map[string]*entities.DisplayLineItem, len(confirmed)+len(pending))
	order := make([]string, 0, len(confirmed)+len(pending))

	for _, c := range confirmed {
		if row, ok := byItem[c.MenuItemID]; ok {
			row.ConfirmedQuantity += c.Quantity
			if row.Note == "" {
				row.Note = c.Note
			}
			continue
		}
		byItem[c.MenuItemID] = &entities.DisplayLineItem{
			MenuItemID:        c.MenuItemID,
			Name:              c.Name,
			UnitPrice:         c.UnitPrice,
			ConfirmedQuantity: c.Quantity,
			Note:              c.Note,
		}
		order = append(order, c.MenuItemID)
	}

	for _, p := range pending {
		if row, ok := byItem[p.MenuItemID]; ok {
			row.PendingQuantity = p.Quantity
			// The pending note always shadows the confirmed note, even when it
			// was cleared back to empty.
			row.Note = p.Note
			continue
		}
		byItem[p.MenuItemID] = &entities.DisplayLineItem{
			MenuItemID:      p.MenuItemID,
			Name:            p.Name,
			UnitPrice:       p.UnitPrice,
			PendingQuantity: p.Quantity,
			Note:            p.Note,
		}
		order = append(order, p.MenuItemID)
	}

	view := entities.TabView{Items: make([]entities.DisplayLineItem, 0, len(order))}
	for _, id := range order {
		row := byItem[id]
		view.Items = append(view.Items, *row)
		view.ConfirmedTotal += row.UnitPrice * float64(row.ConfirmedQuantity)
		view.PendingTotal += row.UnitPrice * float64(row.PendingQuantity)
		view.TotalItemCount += row.ConfirmedQuantity + row.PendingQuantity
	}
	view.GrandTotal = view.ConfirmedTotal + view.PendingTotal
	return view
}
