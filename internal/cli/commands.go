package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"modelctx/internal/ctxwindow"
	"modelctx/internal/lmstudio"
	"modelctx/pkg/types"
)

// Data-source hooks as function vars so command tests can stub them out.
var (
	fnFetchConfig = func(o *Options, modelID string) (map[string]any, error) {
		return o.hubClient().FetchConfig(context.Background(), modelID)
	}
	fnFetchModelInfo = func(o *Options, modelID string) (map[string]any, error) {
		return o.hubClient().FetchModelInfo(context.Background(), modelID)
	}
	fnScanLocal = func(o *Options) []types.LocalModel {
		return lmstudio.Scan(o.scanDirs())
	}
)

func runHuggingface(out io.Writer, o *Options, modelID string) error {
	fmt.Fprintf(out, "Fetching config for %s from Hugging Face...\n", modelID)
	cfg, err := fnFetchConfig(o, modelID)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return ErrHandled
	}
	info := ctxwindow.Extract(cfg)

	fmt.Fprintln(out, "\n=== Model Configuration ===")
	fmt.Fprintln(out, mustJSONIndent(info))

	fmt.Fprintln(out, "\n=== Raw Config (relevant fields) ===")
	for _, key := range relevantKeys(cfg) {
		fmt.Fprintf(out, "  %s: %s\n", key, formatValue(cfg[key]))
	}
	return nil
}

func runContext(out io.Writer, o *Options, modelID string) error {
	cfg, err := fnFetchConfig(o, modelID)
	if err != nil {
		b, _ := json.Marshal(map[string]string{"error": err.Error()})
		fmt.Fprintln(out, string(b))
		return ErrHandled
	}
	fmt.Fprintln(out, mustJSONIndent(ctxwindow.Extract(cfg)))
	return nil
}

func runHub(out io.Writer, o *Options, modelID string) error {
	fmt.Fprintf(out, "Fetching info for %s from Hugging Face Hub API...\n", modelID)
	info, err := fnFetchModelInfo(o, modelID)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return ErrHandled
	}

	summary := types.HubSummary{
		ID:          info["id"],
		Tags:        []any{},
		PipelineTag: info["pipeline_tag"],
		Downloads:   info["downloads"],
		Likes:       info["likes"],
	}
	if tags, ok := info["tags"].([]any); ok {
		summary.Tags = tags
		for _, tag := range contextTags(tags, "context", "token") {
			fmt.Fprintf(out, "Found tag: %s\n", tag)
		}
	}
	fmt.Fprintln(out, mustJSONIndent(summary))
	return nil
}

func runLMStudio(out io.Writer, o *Options) error {
	fmt.Fprintln(out, "Scanning LM Studio models...")
	models := fnScanLocal(o)
	if len(models) == 0 {
		fmt.Fprintln(out, "No LM Studio models found.")
		return nil
	}

	fmt.Fprintf(out, "\nFound %d models:\n\n", len(models))
	for _, m := range models {
		fmt.Fprintf(out, "Model: %s\n", m.ID)
		fmt.Fprintf(out, "  Path: %s\n", m.Path)
		if m.Error != "" {
			fmt.Fprintf(out, "  Error: %s\n", m.Error)
		} else {
			if n, ok := asInt(m.Config.MaxPositionEmbeddings); ok {
				fmt.Fprintf(out, "  Context Window: %s tokens\n", groupDigits(n))
			} else {
				fmt.Fprintf(out, "  Context Window: %s\n", formatValue(m.Config.MaxPositionEmbeddings))
			}
			if n, ok := asInt(m.Config.SlidingWindow); ok && n != 0 {
				fmt.Fprintf(out, "  Sliding Window: %s tokens\n", groupDigits(n))
			}
		}
		fmt.Fprintln(out)
	}
	return nil
}

// runAuto tries every source in turn and prints a combined report. Failures
// of individual sources are reported inline, never fatal.
func runAuto(out io.Writer, o *Options, modelID string) error {
	rule := strings.Repeat("=", 60)
	fmt.Fprintf(out, "Auto-fetching context window for: %s\n", modelID)
	fmt.Fprintln(out, rule)

	fmt.Fprintln(out, "\n1. Trying Hugging Face config.json...")
	if cfg, err := fnFetchConfig(o, modelID); err == nil {
		info := ctxwindow.Extract(cfg)
		fmt.Fprintln(out, "   ✓ Found config")
		fmt.Fprintf(out, "   Context Window: %s\n", formatValue(info.MaxPositionEmbeddings))
		if n, ok := asInt(info.SlidingWindow); ok && n != 0 {
			fmt.Fprintf(out, "   Sliding Window: %s\n", formatValue(info.SlidingWindow))
		}
	} else {
		fmt.Fprintf(out, "   ✗ %v\n", err)
	}

	fmt.Fprintln(out, "\n2. Trying Hugging Face Hub API...")
	if info, err := fnFetchModelInfo(o, modelID); err == nil {
		fmt.Fprintln(out, "   ✓ Found model on Hub")
		fmt.Fprintf(out, "   Model ID: %s\n", formatValue(info["id"]))
		fmt.Fprintf(out, "   Downloads: %s\n", formatValue(info["downloads"]))
		fmt.Fprintf(out, "   Likes: %s\n", formatValue(info["likes"]))
		if tags, ok := info["tags"].([]any); ok {
			if ctx := contextTags(tags, "context", "token", "window"); len(ctx) > 0 {
				fmt.Fprintf(out, "   Context-related tags: %v\n", ctx)
			}
		}
	} else {
		fmt.Fprintf(out, "   ✗ %v\n", err)
	}

	fmt.Fprintln(out, "\n3. Checking LM Studio local models...")
	needle := strings.ToLower(modelID)
	var matched bool
	for _, m := range fnScanLocal(o) {
		if !strings.Contains(strings.ToLower(m.ID), needle) &&
			!strings.Contains(strings.ToLower(m.Path), needle) {
			continue
		}
		matched = true
		fmt.Fprintf(out, "   ✓ Found in LM Studio: %s\n", m.ID)
		if m.Config != nil {
			fmt.Fprintf(out, "   Local Context Window: %s\n", formatValue(m.Config.MaxPositionEmbeddings))
		}
	}
	if !matched {
		fmt.Fprintln(out, "   ✗ Not found in LM Studio")
	}

	fmt.Fprintln(out, "\n"+rule)
	return nil
}

// contextTags filters hub tags down to the ones containing any of the
// given substrings, case-insensitively.
func contextTags(tags []any, needles ...string) []string {
	var out []string
	for _, t := range tags {
		s, ok := t.(string)
		if !ok {
			continue
		}
		ls := strings.ToLower(s)
		for _, n := range needles {
			if strings.Contains(ls, n) {
				out = append(out, s)
				break
			}
		}
	}
	return out
}
