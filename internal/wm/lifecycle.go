package wm

// Lifecycle populates and tears down window content. Initialize runs once
// per created window, after the record is registered and before it is
// focused. Teardown runs only for kinds that own running state.
type Lifecycle interface {
	Initialize(id ID, kind Kind, surface *Surface)
	Teardown(id ID, kind Kind, surface *Surface)
}

// NopLifecycle leaves surfaces empty
type NopLifecycle struct{}

func (NopLifecycle) Initialize(ID, Kind, *Surface) {}

func (NopLifecycle) Teardown(ID, Kind, *Surface) {}
