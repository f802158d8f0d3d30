package main

import (
	"flag"
	"fmt"
	"sort"

	"github.com/goccy/go-json"
	"github.com/prometheus/common/log"

	"github.com/lomakv/storetune/internal/conf"
	"github.com/lomakv/storetune/server"
)

func main() {
	cfgPath := flag.String("config", "configs/container.yml", "container config")
	serve := flag.Bool("serve", false, "serve the options inspection endpoint")
	flag.Parse()

	cfg, err := conf.Load(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %+v", err)
	}

	srv := server.NewServer(cfg)
	names := srv.StoreNames()
	sort.Strings(names)
	for _, name := range names {
		opts, _ := srv.Options(name)
		bs, err := json.MarshalIndent(opts, "", "  ")
		if err != nil {
			log.Fatalf("marshal options for %s: %v", name, err)
		}
		fmt.Printf("store %s:\n%s\n", name, bs)
	}

	if *serve {
		http := server.NewHttpServer(srv)
		if err := http.Start(cfg.Container.HttpAddr); err != nil {
			log.Fatalf("http server: %v", err)
		}
	}
}
