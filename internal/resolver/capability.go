package resolver

// RegistryReader reads string values from a registry.
//
// ReadValue reports false when the key or value does not exist or cannot be
// read. Implementations must not panic for missing keys; absence is the only
// "not found" signal.
type RegistryReader interface {
	ReadValue(root Root, subKey, valueName string) (string, bool)
}

// RegistryReaderFunc adapts a function to a RegistryReader.
type RegistryReaderFunc func(root Root, subKey, valueName string) (string, bool)

// ReadValue calls f.
func (f RegistryReaderFunc) ReadValue(root Root, subKey, valueName string) (string, bool) {
	return f(root, subKey, valueName)
}

// FileChecker reports whether a file exists at a full path.
type FileChecker interface {
	FileExists(path string) bool
}

// FileCheckerFunc adapts a function to a FileChecker.
type FileCheckerFunc func(path string) bool

// FileExists calls f.
func (f FileCheckerFunc) FileExists(path string) bool {
	return f(path)
}

var (
	absentRegistry = RegistryReaderFunc(func(Root, string, string) (string, bool) { return "", false })
	absentFiles    = FileCheckerFunc(func(string) bool { return false })
)
