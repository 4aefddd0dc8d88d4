// Package scene loads and saves world contents as JSON or YAML documents.
package scene

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/behave/internal/core/custom"
	"github.com/zeusync/behave/internal/core/observability/log"
	"github.com/zeusync/behave/internal/core/system"
	"github.com/zeusync/behave/internal/core/systems/physics"
)

// Version is the scene format version written by Save.
const Version = 1

var ErrUnsupportedVersion = errors.New("unsupported scene version")

// Scene is the on-disk description of a world.
type Scene struct {
	Version int `json:"version" yaml:"version"`
	// Library is the hex fingerprint of the type library the scene was saved
	// with. Empty for hand-written scenes.
	Library  string   `json:"library,omitempty" yaml:"library,omitempty"`
	Entities []Entity `json:"entities" yaml:"entities"`
}

type Entity struct {
	Name      string          `json:"name" yaml:"name"`
	Position  physics.Vec2    `json:"position" yaml:"position"`
	Velocity  physics.Vec2    `json:"velocity" yaml:"velocity"`
	Radius    float64         `json:"radius,omitempty" yaml:"radius,omitempty"`
	Tags      []string        `json:"tags,omitempty" yaml:"tags,omitempty"`
	Component custom.Document `json:"component,omitempty" yaml:"component,omitempty"`
}

// LoadJSON decodes a scene from JSON.
func LoadJSON(r io.Reader) (*Scene, error) {
	var s Scene
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return s.normalize()
}

// LoadYAML decodes a scene from YAML.
func LoadYAML(r io.Reader) (*Scene, error) {
	var s Scene
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return s.normalize()
}

// LoadFile picks the decoder from the file extension (.json, .yaml, .yml).
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LoadJSON(bytes.NewReader(data))
	case ".yaml", ".yml":
		return LoadYAML(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("scene %s: unknown format", path)
	}
}

// Save writes s as indented JSON.
func (s *Scene) Save(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// SaveFile writes s to path as JSON or YAML depending on the extension.
func (s *Scene) SaveFile(path string) error {
	var buf bytes.Buffer
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.NewEncoder(&buf).Encode(s); err != nil {
			return err
		}
	default:
		if err := s.Save(&buf); err != nil {
			return err
		}
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// Spawn adds every entity of the scene to w. A failing entity does not stop
// the others; all failures are returned joined.
func (s *Scene) Spawn(w *system.World, logger log.Log) error {
	if logger == nil {
		logger = log.NewNop()
	}
	if s.Library != "" {
		if want := Fingerprint(w.Library()); want != s.Library {
			logger.Warn("scene was saved with a different component library",
				log.String("scene", s.Library), log.String("current", want))
		}
	}

	var errs error
	for i, e := range s.Entities {
		_, err := w.Spawn(system.SpawnSpec{
			Name:      e.Name,
			Position:  e.Position,
			Velocity:  e.Velocity,
			Radius:    e.Radius,
			Tags:      e.Tags,
			Component: e.Component,
		})
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("entity %d: %w", i, err))
		}
	}
	return errs
}

// Capture records the current contents of w. Component state comes from
// ToJSON, tagged with the component's type name so Spawn can recreate it.
func Capture(w *system.World) *Scene {
	s := &Scene{Version: Version, Library: Fingerprint(w.Library())}
	for _, e := range w.Entities() {
		out := Entity{
			Name:     e.Name(),
			Position: e.Position(),
			Velocity: e.Velocity(),
			Radius:   e.Radius(),
			Tags:     e.Tags(),
		}
		if c, ok := w.Component(e.ID()); ok {
			out.Component = c.ToJSON().WithType(c.TypeName())
		}
		s.Entities = append(s.Entities, out)
	}
	return s
}

// Fingerprint formats a library fingerprint the way scenes store it.
func Fingerprint(lib *custom.Library) string {
	return strconv.FormatUint(lib.Fingerprint(), 16)
}

// normalize checks the version and converts component documents to
// JSON-native values so verifiers see the same shapes for both formats.
func (s *Scene) normalize() (*Scene, error) {
	if s.Version == 0 {
		s.Version = Version
	}
	if s.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, s.Version)
	}
	for i := range s.Entities {
		if s.Entities[i].Component == nil {
			continue
		}
		doc, err := custom.DocumentFrom(map[string]any(s.Entities[i].Component))
		if err != nil {
			return nil, fmt.Errorf("entity %d component: %w", i, err)
		}
		s.Entities[i].Component = doc
	}
	return s, nil
}
