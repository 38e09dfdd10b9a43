// Package model evaluates the trained regression forest the appraisal
// engine uses as its base-price oracle. Training happens offline; this
// side only loads the exported JSON and walks the trees.
package model

import (
	"encoding/json"
	"fmt"
	"os"

	"DomainWorth/internal/domain/models"
)

// Node is one decision node. Leaves carry Value and have Left/Right = -1.
type Node struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Value     float64 `json:"value"`
}

// Tree is a flat node array rooted at index 0.
type Tree struct {
	Nodes []Node `json:"nodes"`
}

// Forest is the exported regression model: the ordered feature schema plus
// the ensemble. Prediction is the mean of the per-tree outputs.
type Forest struct {
	FeatureNames []string `json:"feature_names"`
	Trees        []Tree   `json:"trees"`
}

// Load reads and validates a forest export. Callers treat any error as
// "no model": the engine falls back to its constant base price.
func Load(path string) (*Forest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	var f Forest
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse model: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("validate model: %w", err)
	}
	return &f, nil
}

func (f *Forest) validate() error {
	if len(f.FeatureNames) == 0 {
		return fmt.Errorf("feature_names is empty")
	}
	if len(f.Trees) == 0 {
		return fmt.Errorf("no trees")
	}
	for ti, t := range f.Trees {
		if len(t.Nodes) == 0 {
			return fmt.Errorf("tree %d has no nodes", ti)
		}
		for ni, n := range t.Nodes {
			if n.Left >= len(t.Nodes) || n.Right >= len(t.Nodes) {
				return fmt.Errorf("tree %d node %d: child index out of range", ti, ni)
			}
			if n.Left < 0 {
				continue
			}
			// Children must come after their parent, which also rules
			// out cycles and keeps eval's walk finite.
			if n.Left <= ni || n.Right <= ni {
				return fmt.Errorf("tree %d node %d: child index must follow parent", ti, ni)
			}
			if n.Feature < 0 || n.Feature >= len(f.FeatureNames) {
				return fmt.Errorf("tree %d node %d: feature index out of range", ti, ni)
			}
		}
	}
	return nil
}

// Predict builds the ordered feature vector from the schema and averages
// the tree evaluations. Schema names the features table does not know
// feed zeros.
func (f *Forest) Predict(features models.DomainFeatures) (float64, error) {
	x := make([]float64, len(f.FeatureNames))
	for i, name := range f.FeatureNames {
		x[i] = features.ValueByName(name)
	}

	sum := 0.0
	for _, t := range f.Trees {
		sum += t.eval(x)
	}
	return sum / float64(len(f.Trees)), nil
}

func (t Tree) eval(x []float64) float64 {
	i := 0
	for t.Nodes[i].Left >= 0 {
		n := t.Nodes[i]
		if x[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
	return t.Nodes[i].Value
}
