package activity

import (
	"github.com/goto/chrono/internal/errors"
)

// Node is one hierarchy entry: an activity plus the slugs of its parents.
type Node struct {
	Activity Activity
	Parents  []string
}

// Hierarchy is a validated parent/child graph of activities. Edges point
// from parent to child and the graph is guaranteed acyclic.
type Hierarchy struct {
	activities map[string]Activity
	parents    map[string][]string
	children   map[string][]string
	order      []string
}

// NewHierarchy validates the nodes and builds the graph. Duplicate slugs,
// unknown parents, self references and cycles are rejected.
func NewHierarchy(nodes []Node) (Hierarchy, error) {
	h := Hierarchy{
		activities: map[string]Activity{},
		parents:    map[string][]string{},
		children:   map[string][]string{},
		order:      make([]string, 0, len(nodes)),
	}

	for _, node := range nodes {
		slug := node.Activity.Slug()
		if _, ok := h.activities[slug]; ok {
			return Hierarchy{}, errors.AlreadyExists(EntityActivity, "duplicate activity slug "+slug)
		}
		h.activities[slug] = node.Activity
		h.order = append(h.order, slug)
	}

	for _, node := range nodes {
		slug := node.Activity.Slug()
		for _, parent := range node.Parents {
			if parent == slug {
				return Hierarchy{}, errors.InvalidArgument(EntityActivity, "activity "+slug+" cannot be its own parent")
			}
			if _, ok := h.activities[parent]; !ok {
				return Hierarchy{}, errors.NotFound(EntityActivity, "unknown parent "+parent+" for activity "+slug)
			}
			h.parents[slug] = append(h.parents[slug], parent)
			h.children[parent] = append(h.children[parent], slug)
		}
	}

	if cycleSlug, found := h.findCycle(); found {
		return Hierarchy{}, errors.InvalidArgument(EntityActivity, "activity hierarchy has a cycle through "+cycleSlug)
	}

	return h, nil
}

// findCycle runs a colored depth-first walk over the parent edges.
func (h Hierarchy) findCycle() (string, bool) {
	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make(map[string]int, len(h.activities))

	var visit func(slug string) (string, bool)
	visit = func(slug string) (string, bool) {
		switch state[slug] {
		case visiting:
			return slug, true
		case done:
			return "", false
		}
		state[slug] = visiting
		for _, parent := range h.parents[slug] {
			if offender, found := visit(parent); found {
				return offender, true
			}
		}
		state[slug] = done
		return "", false
	}

	for _, slug := range h.order {
		if offender, found := visit(slug); found {
			return offender, true
		}
	}
	return "", false
}

func (h Hierarchy) Activity(slug string) (Activity, error) {
	a, ok := h.activities[slug]
	if !ok {
		return Activity{}, errors.NotFound(EntityActivity, "activity "+slug+" is not in the hierarchy")
	}
	return a, nil
}

// Slugs returns all slugs in document order.
func (h Hierarchy) Slugs() []string {
	out := make([]string, len(h.order))
	copy(out, h.order)
	return out
}

// Roots returns the activities without parents, in document order.
func (h Hierarchy) Roots() []Activity {
	var roots []Activity
	for _, slug := range h.order {
		if len(h.parents[slug]) == 0 {
			roots = append(roots, h.activities[slug])
		}
	}
	return roots
}

// Children returns the direct children of the given activity, in document
// order.
func (h Hierarchy) Children(slug string) []Activity {
	var out []Activity
	for _, childSlug := range h.childrenInOrder(slug) {
		out = append(out, h.activities[childSlug])
	}
	return out
}

func (h Hierarchy) childrenInOrder(slug string) []string {
	isChild := map[string]bool{}
	for _, childSlug := range h.children[slug] {
		isChild[childSlug] = true
	}
	var ordered []string
	for _, candidate := range h.order {
		if isChild[candidate] {
			ordered = append(ordered, candidate)
		}
	}
	return ordered
}

// Parents returns the direct parents of the given activity.
func (h Hierarchy) Parents(slug string) []Activity {
	var out []Activity
	for _, parentSlug := range h.parents[slug] {
		out = append(out, h.activities[parentSlug])
	}
	return out
}

func (h Hierarchy) Count() int {
	return len(h.order)
}
