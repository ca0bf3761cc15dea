package doctor

import (
	"github.com/thoreinstein/erpath/internal/config"
	"github.com/thoreinstein/erpath/internal/resolver"
)

// Check categories.
const (
	CategoryRegistry = "registry"
	CategoryInstall  = "install"
	CategoryConfig   = "config"
)

// SteamRegistryCheck reports which Steam registry probes hold an install path.
type SteamRegistryCheck struct {
	registry resolver.RegistryReader
}

var _ Check = (*SteamRegistryCheck)(nil)

// NewSteamRegistryCheck creates a check over registry.
func NewSteamRegistryCheck(registry resolver.RegistryReader) *SteamRegistryCheck {
	return &SteamRegistryCheck{registry: registry}
}

// Name implements Check.
func (c *SteamRegistryCheck) Name() string { return "steam-registry" }

// Category implements Check.
func (c *SteamRegistryCheck) Category() string { return CategoryRegistry }

// Run probes every location, including those after the first hit, so the
// report shows the full registry picture.
func (c *SteamRegistryCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  make(map[string]any, len(resolver.SteamProbes)),
	}

	var first string
	for _, p := range resolver.SteamProbes {
		value, ok := c.registry.ReadValue(p.Root, p.SubKey, p.ValueName)
		if !ok || value == "" {
			result.Details[p.Name] = "absent"
			continue
		}
		result.Details[p.Name] = value
		if first == "" {
			first = value
		}
	}

	if first == "" {
		result.Status = SeverityWarning
		result.Message = "no Steam install path found in the registry"
		result.FixHint = "pass --steam-path to point at your Steam folder"
		return result
	}

	result.Status = SeverityPass
	result.Message = "Steam installed at " + first
	return result
}

// GameDetectionCheck reports whether the game folder was detected on disk.
type GameDetectionCheck struct {
	resolver *resolver.Resolver
}

var _ Check = (*GameDetectionCheck)(nil)

// NewGameDetectionCheck creates a check that resolves with r.
func NewGameDetectionCheck(r *resolver.Resolver) *GameDetectionCheck {
	return &GameDetectionCheck{resolver: r}
}

// Name implements Check.
func (c *GameDetectionCheck) Name() string { return "game-detection" }

// Category implements Check.
func (c *GameDetectionCheck) Category() string { return CategoryInstall }

// Run implements Check.
func (c *GameDetectionCheck) Run() *CheckResult {
	res := c.resolver.Resolve()
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details: map[string]any{
			"path":     res.Path,
			"detected": res.Detected,
		},
	}

	if !res.Detected {
		result.Status = SeverityWarning
		result.Message = resolver.ExecutableName + " not found; defaulting to " + res.Path
		result.FixHint = "run: erpath scan --interactive"
		return result
	}

	result.Status = SeverityPass
	result.Message = "game folder detected at " + res.Path
	return result
}

// InstallDirCheck validates the configured install directory.
type InstallDirCheck struct {
	resolver *resolver.Resolver
	dir      string
}

var _ Check = (*InstallDirCheck)(nil)

// NewInstallDirCheck creates a check of dir. An empty dir is reported as
// informational.
func NewInstallDirCheck(r *resolver.Resolver, dir string) *InstallDirCheck {
	return &InstallDirCheck{resolver: r, dir: dir}
}

// Name implements Check.
func (c *InstallDirCheck) Name() string { return "install-dir" }

// Category implements Check.
func (c *InstallDirCheck) Category() string { return CategoryInstall }

// Run implements Check.
func (c *InstallDirCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
	}

	if c.dir == "" {
		result.Status = SeverityInfo
		result.Message = "no install_dir configured"
		return result
	}

	result.Details = map[string]any{"path": c.dir}
	if v := c.resolver.Validate(c.dir); !v.Valid {
		result.Status = SeverityWarning
		result.Message = resolver.ExecutableName + " not found in configured install_dir " + c.dir
		result.FixHint = "run: erpath validate --save <folder>"
		return result
	}

	result.Status = SeverityPass
	result.Message = "configured install_dir contains " + resolver.ExecutableName
	return result
}

// ConfigCheck reports whether the config file loads and validates.
type ConfigCheck struct {
	path string
	load func(path string) (*config.Config, error)
}

var _ Check = (*ConfigCheck)(nil)

// NewConfigCheck creates a check that loads path with load. An empty path
// means the default search locations.
func NewConfigCheck(path string, load func(path string) (*config.Config, error)) *ConfigCheck {
	return &ConfigCheck{path: path, load: load}
}

// Name implements Check.
func (c *ConfigCheck) Name() string { return "config-file" }

// Category implements Check.
func (c *ConfigCheck) Category() string { return CategoryConfig }

// Run implements Check.
func (c *ConfigCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
	}

	cfg, err := c.load(c.path)
	if err != nil {
		result.Status = SeverityError
		result.Message = err.Error()
		result.FixHint = "fix or remove the config file"
		if c.path != "" {
			result.Details = map[string]any{"path": c.path}
		}
		return result
	}

	result.Status = SeverityPass
	result.Message = "config is valid"
	result.Details = map[string]any{
		"version": cfg.Version,
		"output":  cfg.Output,
	}
	return result
}
