package lightsetups

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSetupFixture(t *testing.T, root, name string, lights ...LightDef) string {
	t.Helper()

	setupsDir := filepath.Join(root, setupsDirName)
	if err := os.MkdirAll(setupsDir, 0755); err != nil {
		t.Fatalf("Failed to create setups dir: %v", err)
	}

	path := filepath.Join(setupsDir, name+setupExt)
	if err := WriteSetupFile(path, &SetupFile{Lights: lights}); err != nil {
		t.Fatalf("Failed to write setup file: %v", err)
	}
	return path
}

func writePreviewFixture(t *testing.T, root, name string) string {
	t.Helper()

	previewsDir := filepath.Join(root, previewsDirName)
	if err := os.MkdirAll(previewsDir, 0755); err != nil {
		t.Fatalf("Failed to create previews dir: %v", err)
	}

	// Content is irrelevant; the plugin never decodes previews.
	path := filepath.Join(previewsDir, name+previewExt)
	if err := os.WriteFile(path, []byte("png"), 0644); err != nil {
		t.Fatalf("Failed to write preview file: %v", err)
	}
	return path
}

func entrySet(entries []SetupEntry) map[string]SetupEntry {
	m := make(map[string]SetupEntry, len(entries))
	for _, e := range entries {
		m[e.Name] = e
	}
	return m
}

func TestScanSetupsCreatesMissingDir(t *testing.T) {
	root := t.TempDir()

	entries := ScanSetups(root, NewNopLogger())
	if len(entries) != 0 {
		t.Errorf("Expected empty catalog on first run, got %d entries", len(entries))
	}

	info, err := os.Stat(filepath.Join(root, setupsDirName))
	if err != nil {
		t.Fatalf("Setups directory was not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("Setups path exists but is not a directory")
	}
}

func TestScanSetupsIgnoresNonSetupFiles(t *testing.T) {
	root := t.TempDir()
	setupsDir := filepath.Join(root, setupsDirName)
	if err := os.MkdirAll(setupsDir, 0755); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"readme.txt", "thumb.png", "notes"} {
		if err := os.WriteFile(filepath.Join(setupsDir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	if entries := ScanSetups(root, NewNopLogger()); len(entries) != 0 {
		t.Errorf("Expected no entries for non-setup files, got %v", entries)
	}
}

func TestScanSetupsSkipsDirectories(t *testing.T) {
	root := t.TempDir()
	// A directory whose name carries the setup extension is not a setup.
	if err := os.MkdirAll(filepath.Join(root, setupsDirName, "trap"+setupExt), 0755); err != nil {
		t.Fatal(err)
	}

	if entries := ScanSetups(root, NewNopLogger()); len(entries) != 0 {
		t.Errorf("Expected directories to be skipped, got %v", entries)
	}
}

func TestScanSetupsPairsPreviewsByBasename(t *testing.T) {
	root := t.TempDir()
	writeSetupFixture(t, root, "studio")
	writeSetupFixture(t, root, "sunset")
	previewPath := writePreviewFixture(t, root, "studio")
	// "sunset" gets no preview on purpose.

	entries := ScanSetups(root, NewNopLogger())
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	byName := entrySet(entries)

	studio, ok := byName["studio"]
	if !ok {
		t.Fatal("Missing entry for studio")
	}
	if studio.AssetPath != filepath.Join(root, setupsDirName, "studio"+setupExt) {
		t.Errorf("Wrong asset path: %s", studio.AssetPath)
	}
	if studio.PreviewPath != previewPath {
		t.Errorf("Wrong preview path: %s", studio.PreviewPath)
	}

	sunset, ok := byName["sunset"]
	if !ok {
		t.Fatal("Missing entry for sunset")
	}
	// The preview path is computed even though the file does not exist.
	want := filepath.Join(root, previewsDirName, "sunset"+previewExt)
	if sunset.PreviewPath != want {
		t.Errorf("Expected computed preview path %s, got %s", want, sunset.PreviewPath)
	}
	if _, err := os.Stat(sunset.PreviewPath); !os.IsNotExist(err) {
		t.Error("Test setup broken: sunset preview should not exist")
	}
}

func TestScanSetupsIdempotent(t *testing.T) {
	root := t.TempDir()
	writeSetupFixture(t, root, "studio")
	writeSetupFixture(t, root, "key_fill_rim")

	first := entrySet(ScanSetups(root, NewNopLogger()))
	second := entrySet(ScanSetups(root, NewNopLogger()))

	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("Expected 2 entries on both scans, got %d and %d", len(first), len(second))
	}
	for name, e := range first {
		if second[name] != e {
			t.Errorf("Entry %q differs between scans: %v vs %v", name, e, second[name])
		}
	}
}

func TestFindSetup(t *testing.T) {
	root := t.TempDir()
	writeSetupFixture(t, root, "studio")

	if _, ok := FindSetup(root, "studio", NewNopLogger()); !ok {
		t.Error("Expected to find studio")
	}
	if _, ok := FindSetup(root, "missing", NewNopLogger()); ok {
		t.Error("Did not expect to find missing")
	}
}
