// Package winpath composes Windows file system paths independent of the host OS.
//
// [path/filepath] uses the separator of the build target, so a resolver
// compiled for Linux would emit forward slashes. Paths produced here always
// use a backslash, which keeps detection results identical on every host.
package winpath

import "strings"

// Separator is the Windows path separator.
const Separator = `\`

// Join joins path elements with a backslash.
//
// Empty elements are skipped. Trailing separators on an element are trimmed
// before the next element is appended, so Join(`C:\Steam\`, "steamapps")
// yields `C:\Steam\steamapps`. Leading separators on later elements are
// trimmed as well. The first element is otherwise kept verbatim.
func Join(elem ...string) string {
	var b strings.Builder
	for _, e := range elem {
		if e == "" {
			continue
		}
		if b.Len() == 0 {
			b.WriteString(e)
			continue
		}
		current := strings.TrimRight(b.String(), `\/`)
		b.Reset()
		b.WriteString(current)
		b.WriteString(Separator)
		b.WriteString(strings.TrimLeft(e, `\/`))
	}
	return b.String()
}

// DriveRoot returns the root of the given drive letter, e.g. "D" -> `D:\`.
func DriveRoot(letter string) string {
	return strings.ToUpper(letter) + `:` + Separator
}
