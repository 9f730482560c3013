// Package ctxwindow normalizes heterogeneous model configurations into a
// fixed-shape context-window record.
package ctxwindow

import "modelctx/pkg/types"

// aliasKeys are alternative names some model families use instead of
// max_position_embeddings, in priority order.
var aliasKeys = []string{"n_positions", "n_ctx", "max_seq_len", "max_sequence_length"}

// Extract pulls the context-window fields out of a raw model config.
// Absent fields stay nil; Extract never fails.
func Extract(cfg map[string]any) types.ContextWindow {
	out := types.ContextWindow{
		MaxPositionEmbeddings: cfg["max_position_embeddings"],
		SlidingWindow:         cfg["sliding_window"],
		ModelType:             cfg["model_type"],
		Architectures:         []any{},
	}
	if arch, ok := cfg["architectures"].([]any); ok {
		out.Architectures = arch
	}
	if out.MaxPositionEmbeddings == nil {
		for _, key := range aliasKeys {
			if v, ok := cfg[key]; ok {
				out.MaxPositionEmbeddings = v
				out.SourceField = key
				break
			}
		}
	}
	// presence of rope_scaling signals extended-context support, keep it
	// even when its value is null
	if v, ok := cfg["rope_scaling"]; ok {
		out.RopeScaling = v
		out.HasRopeScaling = true
	}
	return out
}
