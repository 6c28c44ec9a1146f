package api

import "errors"

// Start creates a game session and returns it as a GameAPI. The initial state
// is pushed to tuiAPI before Start returns.
func Start(opts StartOptions, tuiAPI TuiAPI) (GameAPI, error) {
	if startImpl == nil {
		return nil, errors.New("start implementation not registered - game package may not be imported")
	}
	return startImpl(opts, tuiAPI)
}

// startImpl is implemented in the game package to avoid a circular dependency
var startImpl func(StartOptions, TuiAPI) (GameAPI, error)

// SetStartImpl allows the game package to register its implementation
func SetStartImpl(impl func(StartOptions, TuiAPI) (GameAPI, error)) {
	startImpl = impl
}
