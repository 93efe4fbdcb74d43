package tui

import "github.com/MKhiriev/go-tree-keeper/models"

type listLoadedMsg struct {
	trees []models.Tree
	err   error
}

type treeLoadedMsg struct {
	tree models.Tree
	err  error
}

type createDoneMsg struct {
	tree models.Tree
	err  error
}

type updateDoneMsg struct {
	err error
}

type sweepDoneMsg struct {
	report models.SweepReport
	err    error
}

type connectivityMsg struct {
	online bool
}
