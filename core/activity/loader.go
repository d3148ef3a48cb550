package activity

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goto/chrono/internal/errors"
)

type document struct {
	Activities []activitySpec `yaml:"activities"`
}

type activitySpec struct {
	Slug        string   `yaml:"slug"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Parents     []string `yaml:"parents"`
}

// Parse reads a YAML activity document and builds the validated hierarchy.
func Parse(r io.Reader) (Hierarchy, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return Hierarchy{}, errors.Wrap(EntityActivity, "error decoding activity document", err)
	}

	me := errors.NewMultiError("parse activity document errors")
	nodes := make([]Node, 0, len(doc.Activities))
	for _, entry := range doc.Activities {
		a, err := New(entry.Slug, entry.Title, entry.Description)
		if err != nil {
			me.Append(err)
			continue
		}
		nodes = append(nodes, Node{Activity: a, Parents: entry.Parents})
	}
	if err := me.ToErr(); err != nil {
		return Hierarchy{}, err
	}

	return NewHierarchy(nodes)
}

// Load parses the activity document at the given path.
func Load(path string) (Hierarchy, error) {
	f, err := os.Open(path)
	if err != nil {
		return Hierarchy{}, errors.InternalError(EntityActivity, "unable to open activity document "+path, err)
	}
	defer f.Close()

	return Parse(f)
}
