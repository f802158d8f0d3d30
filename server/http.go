package server

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
)

type HttpServer struct {
	Engine *gin.Engine
	server *Server
}

func NewHttpServer(s *Server) *HttpServer {
	engine := gin.Default()
	h := &HttpServer{Engine: engine, server: s}
	engine.GET("/stores", h.listStores)
	engine.GET("/stores/:name/options", h.storeOptions)
	return h
}

func (h *HttpServer) Start(addr string) error {
	if addr == "" {
		addr = ":8000"
	}
	return h.Engine.Run(addr)
}

func (h *HttpServer) listStores(c *gin.Context) {
	names := h.server.StoreNames()
	sort.Strings(names)
	c.JSON(http.StatusOK, gin.H{"stores": names})
}

func (h *HttpServer) storeOptions(c *gin.Context) {
	name := c.Param("name")
	opts, ok := h.server.Options(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown store: " + name})
		return
	}
	c.JSON(http.StatusOK, opts)
}
