package types

import "encoding/json"

// ContextWindow is the normalized context-window record extracted from a
// model configuration. Values pass through as decoded JSON, since config
// schemas vary per model family and no fixed numeric type is guaranteed.
type ContextWindow struct {
	// Resolved context length, nil when the config carries none.
	MaxPositionEmbeddings any
	SlidingWindow         any
	ModelType             any
	Architectures         []any
	// SourceField names the alias key that supplied MaxPositionEmbeddings
	// when the primary key was absent.
	SourceField string
	// RopeScaling is copied verbatim; HasRopeScaling records whether the
	// key existed at all, a null value still counts as present.
	RopeScaling    any
	HasRopeScaling bool
}

// MarshalJSON keeps max_position_embeddings, sliding_window, model_type and
// architectures in the output even when null, while source_field and
// rope_scaling appear only when discovered in the source config.
func (c ContextWindow) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"max_position_embeddings": c.MaxPositionEmbeddings,
		"sliding_window":          c.SlidingWindow,
		"model_type":              c.ModelType,
		"architectures":           c.Architectures,
	}
	if c.Architectures == nil {
		out["architectures"] = []any{}
	}
	if c.SourceField != "" {
		out["source_field"] = c.SourceField
	}
	if c.HasRopeScaling {
		out["rope_scaling"] = c.RopeScaling
	}
	return json.Marshal(out)
}

// LocalModel is one model directory found in a local LM Studio install.
// Exactly one of Config and Error is set.
type LocalModel struct {
	// Identifier in publisher/name form, derived from directory names.
	// example: mlx-community/Qwen3-30B-A3B-Instruct-MLX
	ID string `json:"id"`
	// Absolute path to the model directory on disk.
	Path   string         `json:"path"`
	Config *ContextWindow `json:"config,omitempty"`
	Error  string         `json:"error,omitempty"`
}

// HubSummary is the subset of a hub API model document worth printing.
type HubSummary struct {
	ID          any   `json:"id"`
	Tags        []any `json:"tags"`
	PipelineTag any   `json:"pipeline_tag"`
	Downloads   any   `json:"downloads"`
	Likes       any   `json:"likes"`
}
