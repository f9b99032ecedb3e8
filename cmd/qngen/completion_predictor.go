package main

import (
	"os"
	"strings"

	"github.com/posener/complete"
	"github.com/qngen/qngen/config"
	"github.com/qngen/qngen/namestore"
)

type categoryPredictor struct{}

func (p categoryPredictor) Predict(a complete.Args) []string {
	cfg, err := loadConfig(configFromCompletionArgs(a))
	if err != nil {
		cfg = config.Default()
	}

	store, err := namestore.LoadDirs(cfg.Data.ExtraDirs...)
	if err != nil {
		return nil
	}

	cats := store.Categories()
	out := make([]string, 0, len(cats))
	for _, c := range cats {
		out = append(out, c.ID)
	}
	out = append(out, store.Groups()...)
	return out
}

func configFromCompletionArgs(a complete.Args) string {
	for i := 0; i < len(a.All); i++ {
		arg := a.All[i]
		if arg == "--config-file" && i+1 < len(a.All) {
			return a.All[i+1]
		}
		if strings.HasPrefix(arg, "--config-file=") {
			return strings.TrimPrefix(arg, "--config-file=")
		}
	}
	if path := os.Getenv("QNGEN_CONFIG"); path != "" {
		return path
	}
	return ""
}
