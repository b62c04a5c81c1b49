package main

import (
	"bufio"
	"context"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"butler/internal/adapters/catalog"
	"butler/internal/adapters/observability"
	"butler/internal/app"
	"butler/internal/domain"
	"butler/internal/shared"
)

// replay resolves a batch of guest queries, one per line, and prints each
// rendered reply. Useful for regression-checking transcripts against a live
// catalog without going through the HTTP surface.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	in := os.Stdin
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			log.Fatal().Err(err).Str("path", os.Args[1]).Msg("open queries file failed")
		}
		defer f.Close()
		in = f
	}

	var src domain.CatalogSource
	if cfg.CatalogFile != "" {
		src = catalog.NewFileSource(cfg.CatalogFile)
	} else {
		src = catalog.New(cfg.CatalogBase, cfg.FetchTimeout, cfg.FetchRPS)
	}
	resolver := app.NewResolver(app.NewCatalogCache(src, nil, cfg.CatalogTTL))

	log.Info().Int("workers", cfg.Workers).Msg("replay starting")

	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup

	n := 0
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		query := strings.TrimSpace(sc.Text())
		if query == "" {
			continue
		}
		n++
		seq := n

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, int64(1)); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(seq int, query string) {
			defer wg.Done()
			defer sem.Release(int64(1))

			reply := resolver.Resolve(ctx, query)
			log.Info().Int("n", seq).Str("query", query).Str("reply", reply.Render()).Msg("resolved")
		}(seq, query)
	}
	if err := sc.Err(); err != nil {
		log.Fatal().Err(err).Msg("reading queries failed")
	}

	wg.Wait()
	log.Info().Int("queries", n).Msg("replay completed")
}
