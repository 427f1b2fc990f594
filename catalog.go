package lightsetups

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	setupsDirName   = "light_setups"
	previewsDirName = "previews"
	setupExt        = ".gkscene"
	previewExt      = ".png"
)

// SetupEntry is one discoverable light setup: a scene-asset file paired by
// basename with a preview image that may or may not exist on disk.
type SetupEntry struct {
	Name        string
	AssetPath   string
	PreviewPath string
}

// ScanSetups lists the light setups under root. Entries are rebuilt on
// every call, in directory-listing order. On first run the setups
// directory is created; any enumeration failure degrades to an empty
// catalog, so callers never see an error from here.
func ScanSetups(root string, log Logger) []SetupEntry {
	setupsDir := filepath.Join(root, setupsDirName)
	previewsDir := filepath.Join(root, previewsDirName)

	if _, err := os.Stat(setupsDir); os.IsNotExist(err) {
		if err := os.MkdirAll(setupsDir, 0755); err != nil {
			log.Errorf("failed to create setups directory %s: %v", setupsDir, err)
			return nil
		}
		log.Infof("created setups directory %s", setupsDir)
		return nil
	}

	dirEntries, err := os.ReadDir(setupsDir)
	if err != nil {
		log.Errorf("failed to list setups directory %s: %v", setupsDir, err)
		return nil
	}

	var setups []SetupEntry
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		filename := de.Name()
		if !strings.HasSuffix(filename, setupExt) {
			continue
		}

		name := strings.TrimSuffix(filename, setupExt)
		setups = append(setups, SetupEntry{
			Name:        name,
			AssetPath:   filepath.Join(setupsDir, filename),
			PreviewPath: filepath.Join(previewsDir, name+previewExt),
		})
	}

	log.Debugf("scanned %d light setups in %s", len(setups), setupsDir)
	return setups
}

// FindSetup re-scans the catalog and linear-searches it by name.
func FindSetup(root string, name string, log Logger) (SetupEntry, bool) {
	for _, entry := range ScanSetups(root, log) {
		if entry.Name == name {
			return entry, true
		}
	}
	return SetupEntry{}, false
}
