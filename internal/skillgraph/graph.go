// Package skillgraph holds the static prerequisite graph over skill
// identifiers together with the curated learning material attached to each
// skill. The graph is read-only data; traversal is side-effect free.
package skillgraph

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/futurehub/horizon/internal/horizon"
)

//go:embed data/skills.yaml
var skillsYAML []byte

const fallbackDescription = "Important for career progression"

type skillSpec struct {
	Prerequisites []string                `yaml:"prerequisites"`
	Description   string                  `yaml:"description"`
	Resources     []horizon.SkillResource `yaml:"resources"`
	Practice      []string                `yaml:"practice"`
}

type skillsFile struct {
	Skills map[string]skillSpec `yaml:"skills"`
}

// Graph is an adjacency table from a skill to its direct prerequisites, plus
// per-skill auxiliary tables.
type Graph struct {
	specs map[string]skillSpec
}

// New builds a graph from an explicit adjacency table. Used by tests that
// need a graph with particular shapes (including cycles).
func New(dependencies map[string][]string) *Graph {
	specs := make(map[string]skillSpec, len(dependencies))
	for skill, prereqs := range dependencies {
		specs[skill] = skillSpec{Prerequisites: prereqs}
	}
	return &Graph{specs: specs}
}

var (
	defaultGraph *Graph
	defaultOnce  sync.Once
	defaultErr   error
)

// Default returns the graph loaded from the embedded skill table. The data is
// decoded once; a malformed table is a programming error.
func Default() *Graph {
	defaultOnce.Do(func() {
		defaultGraph, defaultErr = load(skillsYAML)
	})
	if defaultErr != nil {
		panic(defaultErr)
	}
	return defaultGraph
}

func load(data []byte) (*Graph, error) {
	var file skillsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decoding embedded skill table: %w", err)
	}
	if len(file.Skills) == 0 {
		return nil, fmt.Errorf("embedded skill table is empty")
	}
	return &Graph{specs: file.Skills}, nil
}

// Prerequisites returns the direct prerequisites of a skill. Unknown skills
// have none.
func (g *Graph) Prerequisites(skill string) []string {
	return g.specs[skill].Prerequisites
}

// AllPrerequisites returns the transitive prerequisite closure of a skill in
// depth-first discovery order, excluding the skill itself. The traversal
// keeps a visited set so a cycle in the table terminates instead of
// recursing forever.
func (g *Graph) AllPrerequisites(skill string) []string {
	visited := map[string]bool{skill: true}
	var closure []string

	stack := make([]string, 0, len(g.specs))
	stack = append(stack, g.Prerequisites(skill)...)

	for len(stack) > 0 {
		next := stack[0]
		stack = stack[1:]
		if visited[next] {
			continue
		}
		visited[next] = true
		closure = append(closure, next)

		// Prepend so discovery stays depth-first along the adjacency order.
		stack = append(g.Prerequisites(next), stack...)
	}

	return closure
}

// Blocks reports whether prereq is in the transitive prerequisite closure of
// the target skill.
func (g *Graph) Blocks(prereq, target string) bool {
	for _, p := range g.AllPrerequisites(target) {
		if p == prereq {
			return true
		}
	}
	return false
}

// Description returns why a skill matters, in display prose.
func (g *Graph) Description(skill string) string {
	if spec, ok := g.specs[skill]; ok && spec.Description != "" {
		return spec.Description
	}
	return fallbackDescription
}

// Resources returns the curated learning resources for a skill.
func (g *Graph) Resources(skill string) []horizon.SkillResource {
	return g.specs[skill].Resources
}

// Practice returns the practice tasks for a skill.
func (g *Graph) Practice(skill string) []string {
	return g.specs[skill].Practice
}
