package lettermark

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// fontDirs returns the directories searched for scalable fonts on the
// current operating system.
func fontDirs() []string {
	var dirs []string
	switch runtime.GOOS {
	case "darwin", "ios":
		dirs = []string{
			"/Library/Fonts",
			"/System/Library/Fonts",
			"/Network/Library/Fonts",
		}
		if home := os.Getenv("HOME"); home != "" {
			dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
		}
	case "windows":
		sysRoot := os.Getenv("SYSTEMROOT")
		if sysRoot == "" {
			sysRoot = os.Getenv("SYSTEMDRIVE")
		}
		if sysRoot == "" {
			sysRoot = "C:"
		}
		dirs = []string{
			filepath.Join(filepath.VolumeName(sysRoot), `Windows`, "Fonts"),
		}
	case "android":
		dirs = []string{
			"/system/fonts",
			"/system/font",
			"/data/fonts",
		}
	default: // linux and the other unixes
		dirs = []string{
			"/usr/share/fonts",
			"/usr/local/share/fonts",
		}
		if home := os.Getenv("HOME"); home != "" {
			dirs = append(dirs, filepath.Join(home, ".fonts"))
			dirs = append(dirs, filepath.Join(home, ".local/share/fonts"))
		}
		if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
			dirs = append(dirs, filepath.Join(xdgDataHome, "fonts"))
		}
	}
	return dirs
}

// findFontFile locates a scalable font file whose name matches the given
// family in the system font directories. Matching ignores case, spaces
// and dashes, so "Arial" matches arial.ttf and "DejaVu Sans" matches
// DejaVuSans.ttf. The first match wins.
func findFontFile(family string) (string, error) {
	return findFontFileIn(fontDirs(), family)
}

func findFontFileIn(dirs []string, family string) (string, error) {
	want := normalizeFamily(family)
	if want == "" {
		return "", fmt.Errorf("lettermark: empty font family")
	}

	for _, dir := range dirs {
		var found string
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable subtrees are skipped, not fatal.
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() || !scalableFontExt(path) {
				return nil
			}
			name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			if normalizeFamily(name) == want {
				found = path
				return fs.SkipAll
			}
			return nil
		})
		if err != nil {
			continue
		}
		if found != "" {
			return found, nil
		}
	}
	return "", fmt.Errorf("lettermark: font %q not found in system font directories", family)
}

// scalableFontExt reports whether path has a scalable font extension.
func scalableFontExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf":
		return true
	}
	return false
}

// normalizeFamily lowercases a family name and strips spaces and dashes,
// matching the loose way font files are named on disk.
func normalizeFamily(family string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(family) {
		if r == ' ' || r == '-' || r == '_' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
