package lightsetups

import (
	"github.com/go-gl/mathgl/mgl32"
)

type LightType uint32

const (
	LightTypePoint       LightType = 0
	LightTypeDirectional LightType = 1
	LightTypeSpot        LightType = 2
	LightTypeAmbient     LightType = 3
)

// Light is a light object living in a Document.
type Light struct {
	Type      LightType
	Position  mgl32.Vec3
	Rotation  mgl32.Quat
	Color     [3]float32 // RGB
	Intensity float32
	Range     float32 // For point/spot
	ConeAngle float32 // Full cone angle in degrees (spot)
}

// LightDef is the persisted form of a light inside a setup file.
type LightDef struct {
	Type      LightType  `json:"type"`
	Position  mgl32.Vec3 `json:"position"`
	Rotation  mgl32.Quat `json:"rotation"`
	Color     [3]float32 `json:"color"`
	Intensity float32    `json:"intensity"`
	Range     float32    `json:"range,omitempty"`
	ConeAngle float32    `json:"cone_angle,omitempty"`
}

func (def LightDef) instantiate() *Light {
	return &Light{
		Type:      def.Type,
		Position:  def.Position,
		Rotation:  def.Rotation,
		Color:     def.Color,
		Intensity: def.Intensity,
		Range:     def.Range,
		ConeAngle: def.ConeAngle,
	}
}

func makeLightDef(l *Light) LightDef {
	return LightDef{
		Type:      l.Type,
		Position:  l.Position,
		Rotation:  l.Rotation,
		Color:     l.Color,
		Intensity: l.Intensity,
		Range:     l.Range,
		ConeAngle: l.ConeAngle,
	}
}
