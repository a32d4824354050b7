package engine

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"resource-economy/core/analysis"
	"resource-economy/core/output"
)

// ManifestFile is the artifact name of the run manifest
const ManifestFile = "manifest.json"

// ContentTypeJSON is the media type of the manifest
const ContentTypeJSON = "application/json"

// Artifact is one stored output of a run
type Artifact struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	ContentType string `json:"content_type"`
	Size        int    `json:"size"`
	SHA256      string `json:"sha256"`
}

func newArtifact(name, location, contentType string, data []byte) Artifact {
	sum := sha256.Sum256(data)
	return Artifact{
		Name:        name,
		Location:    location,
		ContentType: contentType,
		Size:        len(data),
		SHA256:      hex.EncodeToString(sum[:]),
	}
}

// Skipped is a chart left out for lack of data
type Skipped struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// Result is the outcome of a run
type Result struct {
	RunID       string
	GeneratedAt time.Time
	Destination string
	Resources   int
	Artifacts   []Artifact
	Skipped     []Skipped
	Warnings    []string
	Duration    time.Duration
}

// Manifest describes a run. It lists every artifact written before it.
type Manifest struct {
	RunID       string     `json:"run_id"`
	GeneratedAt time.Time  `json:"generated_at"`
	Destination string     `json:"destination"`
	Inputs      Inputs     `json:"inputs"`
	Artifacts   []Artifact `json:"artifacts"`
	Skipped     []Skipped  `json:"skipped"`
	Warnings    []string   `json:"warnings"`
}

// Inputs records the files and options a run used
type Inputs struct {
	Resources    string `json:"resources"`
	BiomeSeasons string `json:"biome_seasons"`
	DPI          int    `json:"dpi"`
	Timeline     bool   `json:"timeline"`
	Strict       bool   `json:"strict"`
}

// Encode renders the manifest as indented JSON
func (m *Manifest) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (o *Orchestrator) manifest() *Manifest {
	artifacts := make([]Artifact, len(o.result.Artifacts))
	copy(artifacts, o.result.Artifacts)

	return &Manifest{
		RunID:       o.runID,
		GeneratedAt: o.result.GeneratedAt,
		Destination: o.result.Destination,
		Inputs: Inputs{
			Resources:    o.opts.ResourcesPath,
			BiomeSeasons: o.opts.BiomeSeasonsPath,
			DPI:          o.renderer.DPI(),
			Timeline:     o.opts.Timeline,
			Strict:       o.opts.Strict,
		},
		Artifacts: artifacts,
		Skipped:   o.result.Skipped,
		Warnings:  o.result.Warnings,
	}
}

func (o *Orchestrator) publishWorkbook(ctx context.Context) error {
	summary, err := analysis.Summarize(o.catalog, o.seasons)
	if err != nil {
		return err
	}
	if !o.opts.Timeline {
		summary.Timeline = nil
	}

	data, err := output.WriteWorkbook(summary)
	if err != nil {
		return err
	}
	return o.put(ctx, output.WorkbookFile, data, output.ContentTypeXLSX)
}
