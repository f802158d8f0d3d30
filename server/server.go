package server

import (
	"github.com/lomakv/storetune/internal/conf"
	"github.com/lomakv/storetune/internal/engine"
	"github.com/lomakv/storetune/internal/store"
)

// Server compiles engine options for the stores of one loaded container
// config.
type Server struct {
	cfg      *conf.Config
	compiler store.Compiler
}

func NewServer(cfg *conf.Config) *Server {
	return &Server{cfg: cfg}
}

// Options compiles the named store's options against the live disk state.
func (s *Server) Options(name string) (*engine.Options, bool) {
	cfg, ok := s.cfg.StoreConfig(name)
	if !ok {
		return nil, false
	}
	st := s.cfg.Stores[name]
	opts := s.compiler.Compile(cfg, s.cfg.Container.TaskCount, s.cfg.Container.MaxManifestFileSize, st.Path, st.LoadMode())
	return opts, true
}

// StoreNames lists the configured stores.
func (s *Server) StoreNames() []string {
	names := make([]string, 0, len(s.cfg.Stores))
	for name := range s.cfg.Stores {
		names = append(names, name)
	}
	return names
}
