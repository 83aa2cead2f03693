// Package naming defines the naming convention shared by all containers in
// this module. Names are hierarchical, with dot-separated CamelCase tokens
// and optional square-bracket indices, such as "Firmware.TxQueue[0]".
package naming

// Named describes an object that has a name.
type Named interface {
	// Name returns the name of the object.
	Name() string
}

// NamedBase is a base implementation of Named.
type NamedBase struct {
	name string
}

func (b *NamedBase) Name() string {
	return b.name
}

// MakeNamedBase creates a new NamedBase.
func MakeNamedBase(name string) NamedBase {
	return NamedBase{name: name}
}
