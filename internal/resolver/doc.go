// Package resolver locates an ELDEN RING installation before mod content is
// installed.
//
// Detection is driven by two injected capabilities so that it can run
// without a real registry or file system:
//
//   - a [RegistryReader] that returns a string value for a registry root,
//     sub-key and value name, or reports it absent
//   - a [FileChecker] that reports whether a file exists
//
// # Resolution
//
// [Resolver.Resolve] looks up the Steam install path from the registry
// ([Resolver.SteamPath]), scans the Steam library and a fixed set of
// alternate library roots for eldenring.exe ([Resolver.FindInLibraryFolders])
// and falls back to [DefaultGamePath] when nothing is found. The result is
// computed once per Resolver and cached for its lifetime:
//
//	r := resolver.New(winreg.New(logger), fsprobe.NewOS())
//	res := r.Resolve()
//	if !res.Detected {
//	    // res.Path is DefaultGamePath
//	}
//
// # Validation
//
// [Resolver.Validate] checks a user-selected folder for the executable and
// returns an advisory warning when it is missing. Callers may still proceed
// with the folder.
//
// Every failure collapses to "not found". Neither the resolver nor the
// capabilities return errors.
package resolver
