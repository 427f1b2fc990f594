package lightsetups

import (
	"fmt"
)

type AssetKind string

const KindLight AssetKind = "light"

// AssetSource can open an asset file and load only the objects of one
// kind out of it, leaving the rest of the file alone. The workflow depends
// on nothing else, so tests run against a fake.
type AssetSource interface {
	LoadKind(path string, kind AssetKind) ([]*Light, error)
}

// FileAssetSource loads from setup files on disk.
type FileAssetSource struct{}

func (FileAssetSource) LoadKind(path string, kind AssetKind) ([]*Light, error) {
	if kind != KindLight {
		return nil, fmt.Errorf("unsupported asset kind: %s", kind)
	}
	return ReadLights(path)
}

type Severity int

const (
	SeverityInfo Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "ERROR"
	}
	return "INFO"
}

// Report is the terminal outcome of one apply, routed to the host's
// notification surface.
type Report struct {
	Severity Severity
	Message  string
}

func (r Report) Failed() bool { return r.Severity == SeverityError }

// ApplySetup injects the named light setup into doc. It re-scans the
// catalog under root, partially loads the matching setup file through
// source, and attaches the loaded lights to a fresh grouping named
// "{name}_lights" under the document root. The grouping name is not
// uniquified: applying the same setup twice leaves two groupings with the
// same name.
//
// Every failure ends in an error Report; nothing escapes as a panic or an
// error value. A load failure leaves the document untouched. An attach
// failure can leave the new grouping partially populated; there is no
// rollback.
func ApplySetup(doc *Document, source AssetSource, root string, name string, log Logger) Report {
	entry, ok := FindSetup(root, name, log)
	if !ok {
		return Report{SeverityError, "Light setup not found."}
	}

	lights, err := source.LoadKind(entry.AssetPath, KindLight)
	if err != nil {
		return Report{SeverityError, fmt.Sprintf("Error applying light setup: %v", err)}
	}

	grouping := doc.NewGrouping(entry.Name + "_lights")
	if err := doc.AttachGrouping(doc.Root(), grouping); err != nil {
		return Report{SeverityError, fmt.Sprintf("Error applying light setup: %v", err)}
	}

	for _, light := range lights {
		id := doc.AddLight(light)
		if err := doc.Attach(grouping, id); err != nil {
			return Report{SeverityError, fmt.Sprintf("Error applying light setup: %v", err)}
		}
	}

	log.Debugf("applied %q: %d lights into grouping %q", entry.Name, len(lights), grouping.Name)
	return Report{SeverityInfo, fmt.Sprintf("Applied light setup: %s", entry.Name)}
}

// SetupsModule wires the plugin into an App: it resolves configuration and
// registers the resources the panel layer reads.
type SetupsModule struct {
	// ConfigPath optionally points at a yaml config file. Missing file or
	// empty path means defaults.
	ConfigPath string

	// Root overrides the configured plugin root when non-empty.
	Root string

	// Watch enables the fsnotify-backed catalog cache for hosts with
	// large setup folders. The apply path still re-scans.
	Watch bool
}

func (m SetupsModule) Install(app *App) {
	log := app.Logger()

	cfg := DefaultConfig()
	if m.ConfigPath != "" {
		loaded, err := LoadConfig(m.ConfigPath)
		if err != nil {
			log.Warnf("config %s not usable, falling back to defaults: %v", m.ConfigPath, err)
		} else {
			cfg = loaded
		}
	}
	if m.Root != "" {
		cfg.Root = m.Root
	}
	if cfg.Debug {
		log.SetDebug(true)
	}

	app.AddResources(&cfg, &FileAssetSource{})

	if m.Watch {
		wc, err := NewWatchedCatalog(cfg.Root, log)
		if err != nil {
			log.Warnf("catalog watcher unavailable, every listing will re-scan: %v", err)
		} else {
			app.AddResources(wc)
		}
	}
}
