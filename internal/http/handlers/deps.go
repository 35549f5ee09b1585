package handlers

import (
	"github.com/jmoiron/sqlx"

	"homestock/internal/repos"
	"homestock/internal/services"
	"homestock/internal/view"
)

type Deps struct {
	ItemAPI *ItemAPIHandler
	Pages   *PageHandler
	Snap    *view.Snapshot
}

func NewDeps(db *sqlx.DB) *Deps {
	itemRepo := repos.NewItemRepo(db)
	itemSvc := services.NewItemService(itemRepo)
	snap := view.NewSnapshot(itemSvc)

	return &Deps{
		ItemAPI: &ItemAPIHandler{Items: itemSvc, Snap: snap},
		Pages:   &PageHandler{Items: itemSvc, Snap: snap},
		Snap:    snap,
	}
}
