// pkg/recipe/recipe.go
package recipe

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arc-language/mysqlprobe/pkg/constraint"
)

// DefaultFile is the recipe looked for in the working directory
const DefaultFile = "mysqlprobe.toml"

// Recipe is a build description: the server versions it accepts, the
// scripts to run once configured and the plugins to install.
type Recipe struct {
	Constraints constraint.Set
	Scripts     []string
	Plugins     []string
}

type file struct {
	Constraints map[string]string `toml:"constraints"`
	Scripts     struct {
		Files []string `toml:"files"`
	} `toml:"scripts"`
	Plugins struct {
		Files []string `toml:"files"`
	} `toml:"plugins"`
}

// Load reads and parses a recipe file. Script and plugin paths are made
// relative to the recipe's directory.
func Load(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("recipe: %s not found", path)
		}
		return nil, fmt.Errorf("recipe: %w", err)
	}

	r, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("recipe: %s: %w", path, err)
	}

	base := filepath.Dir(path)
	r.Scripts = resolve(base, r.Scripts)
	r.Plugins = resolve(base, r.Plugins)
	return r, nil
}

// Parse decodes recipe text. Constraints keep the order they are written
// in; unknown keys anywhere are an error.
func Parse(data string) (*Recipe, error) {
	var f file
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, err
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	r := &Recipe{
		Scripts: f.Scripts.Files,
		Plugins: f.Plugins.Files,
	}

	// md.Keys() is in document order, which is the evaluation order.
	for _, key := range md.Keys() {
		if len(key) != 2 || key[0] != "constraints" {
			continue
		}
		kind, err := constraint.KindFromKey(key[1])
		if err != nil {
			return nil, err
		}
		r.Constraints = append(r.Constraints, constraint.Constraint{
			Kind:     kind,
			Required: f.Constraints[key[1]],
		})
	}

	return r, nil
}

func resolve(base string, paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		if filepath.IsAbs(p) {
			out[i] = p
		} else {
			out[i] = filepath.Join(base, p)
		}
	}
	return out
}
