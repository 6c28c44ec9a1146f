package api

import (
	coreapi "soclicker/internal/api"
)

// SoclickerApp is the part of the application the game session talks to
type SoclickerApp interface {
	HandleStateChanged(state coreapi.StateInfo)
	HandlePurchaseRejected(reject coreapi.RejectInfo)
	HandleSaveFailed(err error)
}

// TuiApiImpl implements TuiAPI as a thin orchestration layer. The session
// calls it from the tview event loop, so it forwards synchronously.
type TuiApiImpl struct {
	app SoclickerApp
}

// NewTuiAPI creates a new TuiAPI implementation
func NewTuiAPI(app SoclickerApp) coreapi.TuiAPI {
	return &TuiApiImpl{app: app}
}

func (tui *TuiApiImpl) OnStateChanged(state coreapi.StateInfo) {
	tui.app.HandleStateChanged(state)
}

func (tui *TuiApiImpl) OnPurchaseRejected(reject coreapi.RejectInfo) {
	tui.app.HandlePurchaseRejected(reject)
}

func (tui *TuiApiImpl) OnSaveFailed(err error) {
	tui.app.HandleSaveFailed(err)
}
