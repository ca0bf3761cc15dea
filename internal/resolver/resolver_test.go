package resolver

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/erpath/internal/logging"
)

func TestResolve_DefaultSteamLocation(t *testing.T) {
	wantDir := `C:\Program Files (x86)\Steam\steamapps\common\ELDEN RING\Game`
	files := newFakeFiles(wantDir + `\eldenring.exe`)
	r := New(machine64Only(steamRoot), files, WithLogger(discardLogger()))

	got := r.Resolve()

	assert.True(t, got.Detected)
	assert.Equal(t, wantDir, got.Path)
}

func TestResolve_AlternateLibraries(t *testing.T) {
	tests := []struct {
		name    string
		wantDir string
	}{
		{name: "D drive SteamLibrary", wantDir: `D:\SteamLibrary\steamapps\common\ELDEN RING\Game`},
		{name: "E drive Steam", wantDir: `E:\Steam\steamapps\common\ELDEN RING\Game`},
		{name: "F drive Games Steam", wantDir: `F:\Games\Steam\steamapps\common\ELDEN RING\Game`},
		{name: "G drive SteamLibrary", wantDir: `G:\SteamLibrary\steamapps\common\ELDEN RING\Game`},
		{name: "C drive SteamLibrary", wantDir: `C:\SteamLibrary\steamapps\common\ELDEN RING\Game`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := newFakeFiles(exe(tt.wantDir))
			r := New(machine64Only(steamRoot), files, WithLogger(discardLogger()))

			got := r.Resolve()

			assert.True(t, got.Detected)
			assert.Equal(t, tt.wantDir, got.Path)
		})
	}
}

func TestResolve_NotFoundFallsBackToDefault(t *testing.T) {
	reg := newFakeRegistry(nil)
	files := newFakeFiles()
	r := New(reg, files, WithLogger(discardLogger()))

	got := r.Resolve()

	assert.Equal(t, Result{Path: DefaultGamePath, Detected: false}, got)
	assert.Len(t, reg.reads, 3, "all three registry probes should run")
	assert.Empty(t, files.checks, "no library scan without a Steam root")
}

func TestResolve_SteamFoundButGameMissing(t *testing.T) {
	files := newFakeFiles()
	r := New(machine64Only(steamRoot), files, WithLogger(discardLogger()))

	got := r.Resolve()

	assert.Equal(t, Result{Path: DefaultGamePath, Detected: false}, got)
	assert.Len(t, files.checks, 16, "default library plus 5 drives x 3 templates")
}

func TestResolve_CachesResult(t *testing.T) {
	tests := []struct {
		name  string
		reg   *fakeRegistry
		files *fakeFiles
	}{
		{
			name:  "detected",
			reg:   machine64Only(steamRoot),
			files: newFakeFiles(exe(GameDir(steamRoot))),
		},
		{
			name:  "fallback",
			reg:   newFakeRegistry(nil),
			files: newFakeFiles(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(tt.reg, tt.files, WithLogger(discardLogger()))

			first := r.Resolve()
			reads, checks := len(tt.reg.reads), len(tt.files.checks)

			second := r.Resolve()

			assert.Equal(t, first, second)
			assert.Equal(t, reads, len(tt.reg.reads), "second call must not read the registry")
			assert.Equal(t, checks, len(tt.files.checks), "second call must not check files")
		})
	}
}

func TestResolve_ConcurrentCallersDetectOnce(t *testing.T) {
	var reads, checks atomic.Int32
	gameDir := GameDir(steamRoot)
	reg := RegistryReaderFunc(func(Root, string, string) (string, bool) {
		reads.Add(1)
		return steamRoot, true
	})
	files := FileCheckerFunc(func(path string) bool {
		checks.Add(1)
		return path == exe(gameDir)
	})
	r := New(reg, files, WithLogger(discardLogger()))

	const callers = 16
	results := make([]Result, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = r.Resolve()
		}()
	}
	wg.Wait()

	for i, got := range results {
		assert.Equal(t, Result{Path: gameDir, Detected: true}, got, "caller %d", i)
	}
	assert.Equal(t, int32(1), reads.Load())
	assert.Equal(t, int32(1), checks.Load())
}

func TestResolve_CacheSurvivesEnvironmentChange(t *testing.T) {
	files := newFakeFiles()
	r := New(newFakeRegistry(nil), files, WithLogger(discardLogger()))

	first := r.Resolve()
	require.False(t, first.Detected)

	// Installing the game afterwards does not change a resolved instance.
	files.existing[exe(GameDir(steamRoot))] = true
	assert.Equal(t, first, r.Resolve())
}

func TestResolve_InstancesAreIndependent(t *testing.T) {
	files := newFakeFiles()
	reg := machine64Only(steamRoot)

	first := New(reg, files, WithLogger(discardLogger())).Resolve()
	require.False(t, first.Detected)

	files.existing[exe(GameDir(steamRoot))] = true
	second := New(reg, files, WithLogger(discardLogger())).Resolve()

	assert.True(t, second.Detected)
	assert.Equal(t, GameDir(steamRoot), second.Path)
}

func TestSteamPath_Precedence(t *testing.T) {
	const (
		machine64 = `C:\Steam64`
		user      = `C:\SteamUser`
		machine32 = `C:\Steam32`
	)
	k64 := registryKey(RootMachine, `SOFTWARE\WOW6432Node\Valve\Steam`)
	kUser := registryKey(RootUser, `SOFTWARE\Valve\Steam`)
	k32 := registryKey(RootMachine, `SOFTWARE\Valve\Steam`)

	tests := []struct {
		name      string
		values    map[string]string
		want      string
		wantOK    bool
		wantReads int
	}{
		{
			name:      "64-bit wins over all",
			values:    map[string]string{k64: machine64, kUser: user, k32: machine32},
			want:      machine64,
			wantOK:    true,
			wantReads: 1,
		},
		{
			name:      "user wins over 32-bit",
			values:    map[string]string{kUser: user, k32: machine32},
			want:      user,
			wantOK:    true,
			wantReads: 2,
		},
		{
			name:      "32-bit last",
			values:    map[string]string{k32: machine32},
			want:      machine32,
			wantOK:    true,
			wantReads: 3,
		},
		{
			name:      "empty value treated as absent",
			values:    map[string]string{k64: "", k32: machine32},
			want:      machine32,
			wantOK:    true,
			wantReads: 3,
		},
		{
			name:      "all absent",
			values:    nil,
			want:      "",
			wantOK:    false,
			wantReads: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := newFakeRegistry(tt.values)
			r := New(reg, nil, WithLogger(discardLogger()))

			got, ok := r.SteamPath()

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
			assert.Len(t, reg.reads, tt.wantReads)
		})
	}
}

func TestSteamPath_ProbeArguments(t *testing.T) {
	reg := newFakeRegistry(nil)
	r := New(reg, nil, WithLogger(discardLogger()))

	_, _ = r.SteamPath()

	want := []string{
		`HKEY_LOCAL_MACHINE\SOFTWARE\WOW6432Node\Valve\Steam:InstallPath`,
		`HKEY_CURRENT_USER\SOFTWARE\Valve\Steam:InstallPath`,
		`HKEY_LOCAL_MACHINE\SOFTWARE\Valve\Steam:InstallPath`,
	}
	assert.Equal(t, want, reg.reads)
}

func TestFindInLibraryFolders_ScanOrder(t *testing.T) {
	files := newFakeFiles()
	r := New(nil, files, WithLogger(discardLogger()))

	_, ok := r.FindInLibraryFolders(steamRoot)
	require.False(t, ok)

	want := []string{exe(GameDir(steamRoot))}
	for _, drive := range []string{"C", "D", "E", "F", "G"} {
		want = append(want,
			fmt.Sprintf(`%s:\SteamLibrary\steamapps\common\ELDEN RING\Game\eldenring.exe`, drive),
			fmt.Sprintf(`%s:\Steam\steamapps\common\ELDEN RING\Game\eldenring.exe`, drive),
			fmt.Sprintf(`%s:\Games\Steam\steamapps\common\ELDEN RING\Game\eldenring.exe`, drive),
		)
	}
	assert.Equal(t, want, files.checks)
}

func TestFindInLibraryFolders_EmptySteamRoot(t *testing.T) {
	files := newFakeFiles()
	r := New(nil, files, WithLogger(discardLogger()))

	_, ok := r.FindInLibraryFolders("")
	require.False(t, ok)

	require.Len(t, files.checks, 15)
	assert.Equal(t, `C:\SteamLibrary\steamapps\common\ELDEN RING\Game\eldenring.exe`, files.checks[0])
	for _, path := range files.checks {
		assert.NotContains(t, path, `Program Files (x86)`)
	}
}

func TestFindInLibraryFolders_TraceLogging(t *testing.T) {
	countChecks := func(level slog.Level) int {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: level}))
		r := New(nil, newFakeFiles(), WithLogger(logger))

		_, ok := r.FindInLibraryFolders(steamRoot)
		require.False(t, ok)
		return strings.Count(buf.String(), `"msg":"checking candidate folder"`)
	}

	assert.Equal(t, 16, countChecks(logging.LevelTrace))
	assert.Zero(t, countChecks(slog.LevelDebug))
}

func TestFindInLibraryFolders_FirstHitWins(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		want     string
	}{
		{
			name: "default library beats alternates",
			existing: []string{
				`D:\SteamLibrary\steamapps\common\ELDEN RING\Game\eldenring.exe`,
				`C:\Program Files (x86)\Steam\steamapps\common\ELDEN RING\Game\eldenring.exe`,
			},
			want: `C:\Program Files (x86)\Steam\steamapps\common\ELDEN RING\Game`,
		},
		{
			name: "earlier drive beats later drive",
			existing: []string{
				`E:\SteamLibrary\steamapps\common\ELDEN RING\Game\eldenring.exe`,
				`D:\Games\Steam\steamapps\common\ELDEN RING\Game\eldenring.exe`,
			},
			want: `D:\Games\Steam\steamapps\common\ELDEN RING\Game`,
		},
		{
			name: "template order within a drive",
			existing: []string{
				`F:\Games\Steam\steamapps\common\ELDEN RING\Game\eldenring.exe`,
				`F:\Steam\steamapps\common\ELDEN RING\Game\eldenring.exe`,
			},
			want: `F:\Steam\steamapps\common\ELDEN RING\Game`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(nil, newFakeFiles(tt.existing...), WithLogger(discardLogger()))

			got, ok := r.FindInLibraryFolders(steamRoot)

			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindInLibraryFolders_TrailingSeparatorOnRoot(t *testing.T) {
	r := New(nil, newFakeFiles(exe(GameDir(steamRoot))), WithLogger(discardLogger()))

	got, ok := r.FindInLibraryFolders(steamRoot + `\`)

	require.True(t, ok)
	assert.Equal(t, GameDir(steamRoot), got)
}

func TestValidate(t *testing.T) {
	gameDir := `D:\SteamLibrary\steamapps\common\ELDEN RING\Game`
	r := New(nil, newFakeFiles(exe(gameDir)), WithLogger(discardLogger()))

	t.Run("valid folder", func(t *testing.T) {
		got := r.Validate(gameDir)
		assert.True(t, got.Valid)
		assert.Empty(t, got.Message)
	})

	t.Run("missing executable", func(t *testing.T) {
		got := r.Validate(`C:\SomeRandomFolder`)
		assert.False(t, got.Valid)
		assert.Contains(t, got.Message, `C:\SomeRandomFolder`)
		assert.Contains(t, got.Message, "Are you sure this is your Elden Ring Game folder?")
		assert.True(t, strings.HasPrefix(got.Message, "Warning: eldenring.exe was not found"))
	})

	t.Run("exact warning text", func(t *testing.T) {
		got := r.Validate(`C:\Games`)
		want := "Warning: eldenring.exe was not found in the selected folder.\n\n" +
			"Selected: C:\\Games\n\n" +
			"Are you sure this is your Elden Ring Game folder?"
		assert.Equal(t, want, got.Message)
	})

	t.Run("percent sign in path kept literal", func(t *testing.T) {
		got := r.Validate(`C:\100%\Game`)
		assert.Contains(t, got.Message, `Selected: C:\100%\Game`)
	})
}

func TestValidate_IsNotCached(t *testing.T) {
	dir := `C:\Games\ELDEN RING\Game`
	files := newFakeFiles()
	r := New(nil, files, WithLogger(discardLogger()))

	require.False(t, r.Validate(dir).Valid)

	files.existing[exe(dir)] = true
	assert.True(t, r.Validate(dir).Valid)
	assert.Len(t, files.checks, 2)
}

func TestPostInstallMessage(t *testing.T) {
	r := New(machine64Only(steamRoot), newFakeFiles(exe(GameDir(steamRoot))), WithLogger(discardLogger()))
	before := r.PostInstallMessage()

	_ = r.Resolve()
	_ = r.Validate(`C:\SomeRandomFolder`)

	assert.Equal(t, PostInstallMessage, before)
	assert.Equal(t, PostInstallMessage, r.PostInstallMessage())
	assert.True(t, strings.HasPrefix(PostInstallMessage, "Installation Complete!"))
	assert.Contains(t, PostInstallMessage, "IMPORTANT: Do NOT launch from Steam!")
	assert.Contains(t, PostInstallMessage, "launchmod_eldenring.bat")
}

func TestNew_NilCapabilities(t *testing.T) {
	r := New(nil, nil, WithLogger(discardLogger()))

	assert.Equal(t, Result{Path: DefaultGamePath}, r.Resolve())
	assert.False(t, r.Validate(DefaultGamePath).Valid)
}

func TestFuncAdapters(t *testing.T) {
	var reads, checks int
	reg := RegistryReaderFunc(func(root Root, subKey, valueName string) (string, bool) {
		reads++
		if root == RootUser {
			return steamRoot, true
		}
		return "", false
	})
	files := FileCheckerFunc(func(path string) bool {
		checks++
		return path == exe(GameDir(steamRoot))
	})

	got := New(reg, files, WithLogger(discardLogger())).Resolve()

	assert.Equal(t, Result{Path: GameDir(steamRoot), Detected: true}, got)
	assert.Equal(t, 2, reads)
	assert.Equal(t, 1, checks)
}
