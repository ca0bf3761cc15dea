package resolver

// ExecutableName is the file whose presence confirms a game installation.
const ExecutableName = "eldenring.exe"

// DefaultGamePath is suggested when no installation can be detected.
const DefaultGamePath = `C:\Program Files (x86)\Steam\steamapps\common\ELDEN RING\Game`

// Root identifies a registry hive.
type Root string

// Registry roots probed during Steam lookup.
const (
	RootMachine Root = "HKEY_LOCAL_MACHINE"
	RootUser    Root = "HKEY_CURRENT_USER"
)

// Registry locations of the Steam install path.
const (
	steamKey64     = `SOFTWARE\WOW6432Node\Valve\Steam`
	steamKey       = `SOFTWARE\Valve\Steam`
	steamValueName = "InstallPath"
)

// RegistryProbe is a single registry location that may hold the Steam path.
type RegistryProbe struct {
	// Name is a short label used in logs and diagnostics.
	Name      string
	Root      Root
	SubKey    string
	ValueName string
}

// SteamProbes lists the registry locations in priority order: the machine-wide
// 64-bit install, the per-user install, then the machine-wide 32-bit install.
var SteamProbes = []RegistryProbe{
	{Name: "machine-64", Root: RootMachine, SubKey: steamKey64, ValueName: steamValueName},
	{Name: "user", Root: RootUser, SubKey: steamKey, ValueName: steamValueName},
	{Name: "machine-32", Root: RootMachine, SubKey: steamKey, ValueName: steamValueName},
}

// gameSubPath is the game folder relative to a Steam library root.
var gameSubPath = []string{"steamapps", "common", "ELDEN RING", "Game"}

// DriveLetters are scanned in this order for alternate library roots.
var DriveLetters = []string{"C", "D", "E", "F", "G"}

// AlternateLibraryDirs are the library roots tried on every drive, in order.
var AlternateLibraryDirs = []string{
	"SteamLibrary",
	"Steam",
	`Games\Steam`,
}

// PostInstallMessage is shown once mod content has been installed.
const PostInstallMessage = `Installation Complete!

To play with mods:
  1. Use the "Elden Ring (Modded)" shortcut, or
  2. Run launchmod_eldenring.bat from your Game folder

IMPORTANT: Do NOT launch from Steam!

Map markers are OFF by default. Enable them at any Site of Grace via the Map Configuration menu.`

// warningTemplate is filled with the rejected folder.
const warningTemplate = "Warning: eldenring.exe was not found in the selected folder.\n\n" +
	"Selected: %s\n\n" +
	ConfirmationPrompt

// ConfirmationPrompt is the question closing every validation warning.
const ConfirmationPrompt = "Are you sure this is your Elden Ring Game folder?"
