package transcode

// Override interfaces allow types to bypass reflection-based binding.
// When *T implements one of these interfaces, Bind or Unbind calls the
// method instead of walking the struct tags.
//
// Overrides suit hot paths and generated code. Signals are still emitted,
// and a returned error is passed through unchanged.

// Binder bypasses reflection for Bind.
type Binder interface {
	// BindValues populates the receiver from wire values.
	// The receiver is a fresh zero value.
	BindValues(values map[string]string) error
}

// Unbinder bypasses reflection for Unbind.
type Unbinder interface {
	// UnbindValues renders the receiver as wire values.
	// Every value must be accepted by the codec it was encoded with.
	UnbindValues() (map[string]string, error)
}
