package presets

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/roffe/txplot/pkg/geom"
)

const (
	prefsKey     = "bounds.presets"
	prefsLastKey = "bounds.last"

	Gaussian = "Gaussian ±5"
	Unit     = "Unit square"
	Wide     = "Wide ±50"
)

var ErrSystemPreset = errors.New("cannot modify system presets")

var Map = map[string]geom.Box{}

var system = map[string]geom.Box{
	Gaussian: geom.NewBox(-5, -5, 5, 5),
	Unit:     geom.NewBox(-1, -1, 1, 1),
	Wide:     geom.NewBox(-50, -50, 50, 50),
}

func init() {
	setDefaults()
}

func isSystem(name string) bool {
	for k := range system {
		if strings.EqualFold(k, name) {
			return true
		}
	}
	return false
}

func Names() []string {
	var names []string
	for name := range Map {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Set(name string, bounds geom.Box) error {
	if isSystem(name) {
		return ErrSystemPreset
	}
	if err := bounds.Validate(); err != nil {
		return fmt.Errorf("preset %q: %w", name, err)
	}
	Map[name] = bounds
	return nil
}

func Delete(name string) error {
	if isSystem(name) {
		return ErrSystemPreset
	}
	delete(Map, name)
	return nil
}

func Get(name string) (geom.Box, error) {
	b, ok := Map[name]
	if !ok {
		return geom.Box{}, fmt.Errorf("preset %q not found", name)
	}
	return b, nil
}

// Load merges the presets stored in the app preferences into Map. Stored
// entries with degenerate bounds are skipped.
func Load(app fyne.App) error {
	raw := app.Preferences().String(prefsKey)
	if raw == "" {
		setDefaults()
		return nil
	}
	stored := make(map[string]geom.Box)
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return fmt.Errorf("load presets: %w", err)
	}
	for name, b := range stored {
		if b.Validate() != nil {
			continue
		}
		Map[name] = b
	}
	setDefaults()
	return nil
}

func Save(app fyne.App) error {
	custom := make(map[string]geom.Box)
	for name, b := range Map {
		if !isSystem(name) {
			custom[name] = b
		}
	}
	b, err := json.Marshal(custom)
	if err != nil {
		return err
	}
	app.Preferences().SetString(prefsKey, string(b))
	return nil
}

func Last(app fyne.App) string {
	return app.Preferences().StringWithFallback(prefsLastKey, Gaussian)
}

func SetLast(app fyne.App, name string) {
	app.Preferences().SetString(prefsLastKey, name)
}

func setDefaults() {
	for name, b := range system {
		Map[name] = b
	}
}
