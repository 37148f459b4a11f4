package mcpserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"k8s.io/klog/v2"

	"github.com/spaceviz/spaceviz/pkg/dashboard"
)

const (
	serverName    = "spaceviz"
	serverVersion = "0.1.0"
)

// Server answers mission questions over the Model Context Protocol.
type Server struct {
	store     *dashboard.Store
	mcpServer *mcp.Server
}

// New creates a server whose tools read from store.
func New(store *dashboard.Store) *Server {
	s := &Server{
		store:     store,
		mcpServer: mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil),
	}
	s.registerTools()
	return s
}

// Serve runs the server on stdio until the client disconnects or ctx ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	klog.FromContext(ctx).Info("mcp server starting", "name", serverName, "version", serverVersion)
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
