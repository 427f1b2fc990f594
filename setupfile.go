package lightsetups

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
)

const setupFileVersion = 1

// SetupFile is the on-disk form of a light setup: a small scene document
// whose sections are loaded selectively. The plugin only ever instantiates
// the Lights section; the other sections ride along untouched so a setup
// file authored in a full scene editor stays intact.
type SetupFile struct {
	Version  int          `json:"version"`
	Lights   []LightDef   `json:"lights,omitempty"`
	Objects  []ObjectDef  `json:"objects,omitempty"`
	Emitters []EmitterDef `json:"emitters,omitempty"`
}

// ObjectDef defines a model instantiation inside a setup file.
type ObjectDef struct {
	ModelPath string     `json:"model_path"`
	Position  mgl32.Vec3 `json:"position"`
	Rotation  mgl32.Quat `json:"rotation"`
	Scale     mgl32.Vec3 `json:"scale"`
}

// EmitterDef defines a particle emitter inside a setup file.
type EmitterDef struct {
	Position mgl32.Vec3 `json:"position"`
	Rotation mgl32.Quat `json:"rotation"`
	Rate     float32    `json:"rate"`
	Lifetime float32    `json:"lifetime"`
}

func ReadSetupFile(path string) (*SetupFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read setup file: %w", err)
	}

	var sf SetupFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("failed to parse setup file %s: %w", path, err)
	}

	if sf.Version != setupFileVersion {
		return nil, fmt.Errorf("unsupported setup file version: %d", sf.Version)
	}

	return &sf, nil
}

func WriteSetupFile(path string, sf *SetupFile) error {
	if sf.Version == 0 {
		sf.Version = setupFileVersion
	}

	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ReadLights is the partial load: it decodes a setup file and instantiates
// only its lights. Objects and emitters present in the file are never
// materialized.
func ReadLights(path string) ([]*Light, error) {
	sf, err := ReadSetupFile(path)
	if err != nil {
		return nil, err
	}

	lights := make([]*Light, 0, len(sf.Lights))
	for _, def := range sf.Lights {
		lights = append(lights, def.instantiate())
	}
	return lights, nil
}
