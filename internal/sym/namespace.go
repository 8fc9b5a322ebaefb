// Package sym defines canonical declaration names and the namespaces the
// typing environment partitions them into.
package sym

// Namespace identifies which of the language's parallel name tables a
// declaration lives in.
type Namespace uint8

const (
	NsValue Namespace = iota
	NsType
	NsModule
	NsModuleType
	NsConstructor
	NsLabel
)

// String returns the string representation of Namespace.
func (n Namespace) String() string {
	switch n {
	case NsValue:
		return "value"
	case NsType:
		return "type"
	case NsModule:
		return "module"
	case NsModuleType:
		return "module type"
	case NsConstructor:
		return "constructor"
	case NsLabel:
		return "label"
	default:
		return "unknown"
	}
}
