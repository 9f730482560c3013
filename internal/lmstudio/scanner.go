// Package lmstudio discovers models installed by the LM Studio desktop app
// and extracts their context-window records.
package lmstudio

import (
	"encoding/json"
	"os"
	"path/filepath"

	"modelctx/internal/common/fsutil"
	"modelctx/internal/ctxwindow"
	"modelctx/pkg/types"
)

// defaultDirs are the model locations LM Studio has used across versions
// and platforms, in scan order.
var defaultDirs = []string{
	"~/.cache/lm-studio/models",
	"~/.lmstudio/models",
	"~/Library/Application Support/LM Studio/models",
}

// DefaultDirs returns the conventional LM Studio model directories with the
// home prefix expanded. Entries that cannot be resolved are dropped.
func DefaultDirs() []string {
	return fsutil.ExpandAll(defaultDirs)
}

// Scan walks each base directory's publisher/model layout and extracts the
// context window from every config.json found directly inside a model
// directory. A config that cannot be read or parsed is reported on its
// entry instead of aborting the scan; base directories that do not exist
// are skipped silently.
func Scan(dirs []string) []types.LocalModel {
	var models []types.LocalModel
	for _, base := range dirs {
		publishers, err := os.ReadDir(base)
		if err != nil {
			continue
		}
		for _, pub := range publishers {
			if !pub.IsDir() {
				continue
			}
			pubDir := filepath.Join(base, pub.Name())
			children, err := os.ReadDir(pubDir)
			if err != nil {
				continue
			}
			for _, mod := range children {
				if !mod.IsDir() {
					continue
				}
				modelDir := filepath.Join(pubDir, mod.Name())
				cfgPath := filepath.Join(modelDir, "config.json")
				if !fsutil.PathExists(cfgPath) {
					continue
				}
				entry := types.LocalModel{
					ID:   pub.Name() + "/" + mod.Name(),
					Path: modelDir,
				}
				var cfg map[string]any
				b, err := os.ReadFile(cfgPath)
				if err == nil {
					err = json.Unmarshal(b, &cfg)
				}
				if err != nil {
					entry.Error = err.Error()
				} else {
					cw := ctxwindow.Extract(cfg)
					entry.Config = &cw
				}
				models = append(models, entry)
			}
		}
	}
	return models
}
