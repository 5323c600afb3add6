package domain

// Store persists user-owned state outside the dataset: per-item flags and
// ratings, plus named filter views. Keys are scoped by catalog kind.
type Store interface {
	// === Item state ===
	GetState(kind Kind, id string) (UserState, bool)
	SaveState(kind Kind, id string, state UserState) error
	States(kind Kind) (map[string]UserState, error)
	DeleteState(kind Kind, id string) error

	// === Saved views (JSON-encoded filter configurations) ===
	SaveView(kind Kind, name string, view any) error
	GetView(kind Kind, name string, dest any) (bool, error)
	Views(kind Kind) ([]string, error)
	DeleteView(kind Kind, name string) error

	Close() error
}
