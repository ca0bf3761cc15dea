package resolver

import "github.com/thoreinstein/erpath/pkg/winpath"

// Source describes where a candidate folder comes from.
type Source string

const (
	// SourceSteamLibrary is the library inside the registered Steam install.
	SourceSteamLibrary Source = "steam-library"

	// SourceAlternate is a conventional library root on a fixed drive.
	SourceAlternate Source = "alternate"
)

// Candidate is a game folder checked during a library scan.
type Candidate struct {
	Path   string `json:"path" yaml:"path" toml:"path"`
	Source Source `json:"source" yaml:"source" toml:"source"`
	Exists bool   `json:"exists" yaml:"exists" toml:"exists"`
}

// Candidates returns the game folders a library scan checks, in order.
// The folder under steamRoot comes first, followed by every alternate
// library root, drive by drive. An empty steamRoot contributes no folder, so
// only the alternate roots are returned.
func Candidates(steamRoot string) []string {
	dirs := make([]string, 0, 1+len(DriveLetters)*len(AlternateLibraryDirs))
	if steamRoot != "" {
		dirs = append(dirs, GameDir(steamRoot))
	}
	for _, drive := range DriveLetters {
		for _, lib := range AlternateLibraryDirs {
			dirs = append(dirs, GameDir(winpath.Join(winpath.DriveRoot(drive), lib)))
		}
	}
	return dirs
}

// GameDir returns the game folder inside a Steam library root.
func GameDir(libraryRoot string) string {
	return winpath.Join(append([]string{libraryRoot}, gameSubPath...)...)
}

// ScanAll checks every candidate folder without stopping at the first hit.
// Results are not cached.
func (r *Resolver) ScanAll(steamRoot string) []Candidate {
	dirs := Candidates(steamRoot)
	out := make([]Candidate, 0, len(dirs))
	for i, dir := range dirs {
		source := SourceAlternate
		if steamRoot != "" && i == 0 {
			source = SourceSteamLibrary
		}
		out = append(out, Candidate{
			Path:   dir,
			Source: source,
			Exists: r.hasExecutable(dir),
		})
	}
	return out
}
