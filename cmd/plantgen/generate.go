package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Faultbox/plantmesh/internal/config"
	"github.com/Faultbox/plantmesh/internal/export"
	"github.com/Faultbox/plantmesh/internal/logger"
	"github.com/Faultbox/plantmesh/pkg/geom"
	"github.com/Faultbox/plantmesh/pkg/shape"
)

// result is one generated plant.
type result struct {
	Name     string
	Geometry *geom.Geometry
	Mesh     *geom.Mesh
}

// policyFor returns the sprout when no preset is configured, otherwise a
// profile built from the preset file.
func policyFor(cfg *config.Config) (geom.Policy, string, error) {
	if cfg.Generation.Preset == "" {
		return shape.NewSprout(), "sprout", nil
	}

	preset, err := shape.LoadPreset(cfg.Generation.Preset)
	if err != nil {
		return nil, "", err
	}
	profile, err := shape.NewProfile(preset)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", cfg.Generation.Preset, err)
	}

	name := preset.Name
	if name == "" {
		base := filepath.Base(cfg.Generation.Preset)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return profile, name, nil
}

// generate runs the full pipeline for the configured policy.
func generate(cfg *config.Config) (*result, error) {
	policy, name, err := policyFor(cfg)
	if err != nil {
		return nil, err
	}

	g, err := geom.New(policy, name,
		geom.WithMaxBones(cfg.Generation.MaxBones),
		geom.WithStitchOptions(geom.StitchOptions{CloseSeam: cfg.Generation.CloseSeams}),
		geom.WithMinArea(cfg.Generation.MinArea),
		geom.WithLogger(logger.Log.Named(name)),
	)
	if err != nil {
		return nil, fmt.Errorf("generating %s: %w", name, err)
	}

	mesh, err := g.Mesh()
	if err != nil {
		return nil, fmt.Errorf("assembling %s: %w", name, err)
	}

	return &result{Name: name, Geometry: g, Mesh: mesh}, nil
}

func write(cfg *config.Config, res *result) error {
	return export.Write(cfg.Output.Path, cfg.Output.Format, res.Mesh)
}

func printInfo(w io.Writer, res *result) error {
	bones, err := res.Geometry.Bones()
	if err != nil {
		return err
	}
	steps, err := res.Geometry.Steps()
	if err != nil {
		return err
	}
	mesh := res.Mesh

	points := 0
	for _, s := range steps {
		points += len(s.Points)
	}

	size := mesh.Bounds.Size()
	center := mesh.Bounds.Center()

	fmt.Fprintf(w, "Plant:      %s\n", res.Name)
	fmt.Fprintf(w, "Bones:      %d\n", len(bones))
	fmt.Fprintf(w, "Length:     %.3f\n", res.Geometry.TotalBoneSize())
	fmt.Fprintf(w, "Rings:      %d (%d points)\n", len(steps), points)
	fmt.Fprintf(w, "Triangles:  %d\n", mesh.TriangleCount())
	fmt.Fprintf(w, "Skipped:    %d\n", mesh.Skipped)
	fmt.Fprintf(w, "Size:       %.3f x %.3f x %.3f\n", size.X, size.Y, size.Z)
	fmt.Fprintf(w, "Center:     %.3f, %.3f, %.3f\n", center.X, center.Y, center.Z)
	for _, m := range res.Geometry.Materials() {
		fmt.Fprintf(w, "Material:   %s %v\n", m.Name, m.Color)
	}
	return nil
}
