package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"facet-reconciler/core/args"
	"facet-reconciler/core/config"
	"facet-reconciler/core/storage"
	"facet-reconciler/feature/facet/store"
)

// Dumps the stored snapshots of a project: modules, their persisted settings
// and the platform defaults.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: debug_project <project>")
	}
	project := os.Args[1]

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		log.Fatal(err)
	}

	s := store.New(client, cfg.Storage.Bucket, cfg.Facet.Prefix)
	ctx := context.Background()

	modules, err := s.ListModules(ctx, project)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Loaded %d modules of %s/%s\n", len(modules), s.Prefix(), project)

	platforms := make(map[args.Platform]bool)
	for _, m := range modules {
		platforms[m.Platform] = true

		settings, err := s.GetSettings(ctx, project, m.Name)
		if err != nil {
			log.Printf("settings of %s: %v", m.Name, err)
		}
		out, _ := json.MarshalIndent(map[string]any{"module": m, "settings": settings}, "", "  ")
		fmt.Println(string(out))
	}

	for p := range platforms {
		defaults, err := s.GetDefaults(ctx, project, p)
		if err != nil {
			log.Printf("defaults of %s: %v", p, err)
			continue
		}
		out, _ := json.MarshalIndent(defaults, "", "  ")
		fmt.Printf("\n=== Defaults (%s) ===\n%s\n", p, out)
	}
}
