package resolver

import (
	"log/slog"
	"strings"

	"github.com/thoreinstein/erpath/internal/logging"
)

// fakeRegistry answers from a map keyed by root and sub-key and counts reads.
type fakeRegistry struct {
	values map[string]string
	reads  []string
}

func newFakeRegistry(values map[string]string) *fakeRegistry {
	return &fakeRegistry{values: values}
}

func registryKey(root Root, subKey string) string {
	return string(root) + `\` + subKey
}

func (f *fakeRegistry) ReadValue(root Root, subKey, valueName string) (string, bool) {
	key := registryKey(root, subKey)
	f.reads = append(f.reads, key+":"+valueName)
	v, ok := f.values[key]
	return v, ok
}

// fakeFiles reports the listed paths as existing and records every check.
type fakeFiles struct {
	existing map[string]bool
	checks   []string
}

func newFakeFiles(paths ...string) *fakeFiles {
	existing := make(map[string]bool, len(paths))
	for _, p := range paths {
		existing[p] = true
	}
	return &fakeFiles{existing: existing}
}

func (f *fakeFiles) FileExists(path string) bool {
	f.checks = append(f.checks, path)
	return f.existing[path]
}

func discardLogger() *slog.Logger {
	return logging.NewDiscard()
}

const steamRoot = `C:\Program Files (x86)\Steam`

// machine64Only mimics a registry holding only the 64-bit machine key.
func machine64Only(path string) *fakeRegistry {
	return newFakeRegistry(map[string]string{
		registryKey(RootMachine, `SOFTWARE\WOW6432Node\Valve\Steam`): path,
	})
}

func exe(dir string) string {
	return strings.TrimRight(dir, `\`) + `\eldenring.exe`
}
