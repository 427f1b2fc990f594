package lightsetups

import (
	"os"
)

// Panel is the host-facing surface of the plugin: it resolves what the
// lighting panel should show for the current session and exposes the two
// actions the panel triggers. Drawing stays with the host; the chooser
// opened by Change writes the picked name back through the Session.
type Panel struct {
	Session  *Session
	Doc      *Document
	Source   AssetSource
	Config   *Config
	Reporter Reporter

	// Catalog, when set, serves panel listings from the watched cache
	// instead of re-scanning per redraw.
	Catalog *WatchedCatalog

	// OnChange opens the host's setup chooser.
	OnChange func()

	Log Logger
}

func (p *Panel) logger() Logger {
	if p.Log != nil {
		return p.Log
	}
	return NewNopLogger()
}

func (p *Panel) entries() []SetupEntry {
	if p.Catalog != nil {
		return p.Catalog.Entries()
	}
	return ScanSetups(p.Config.Root, p.logger())
}

// Setups lists the catalog for the chooser.
func (p *Panel) Setups() []SetupEntry {
	return p.entries()
}

// CurrentEntry resolves the session's selection against the catalog.
func (p *Panel) CurrentEntry() (SetupEntry, bool) {
	name := p.Session.Current()
	if name == "" {
		return SetupEntry{}, false
	}
	for _, entry := range p.entries() {
		if entry.Name == name {
			return entry, true
		}
	}
	return SetupEntry{}, false
}

// PreviewPath returns the preview image to draw for the current selection.
// The second result is false when there is nothing to show (no selection,
// selection gone from the catalog, or the preview file absent).
func (p *Panel) PreviewPath() (string, bool) {
	entry, ok := p.CurrentEntry()
	if !ok {
		return "", false
	}
	if _, err := os.Stat(entry.PreviewPath); err != nil {
		return "", false
	}
	return entry.PreviewPath, true
}

// Apply runs the apply workflow on the current selection and routes the
// outcome to the reporter.
func (p *Panel) Apply() Report {
	report := ApplySetup(p.Doc, p.Source, p.Config.Root, p.Session.Current(), p.logger())
	if p.Reporter != nil {
		p.Reporter.Report(report)
	}
	return report
}

// Change opens the host's setup chooser.
func (p *Panel) Change() {
	if p.OnChange != nil {
		p.OnChange()
	}
}
