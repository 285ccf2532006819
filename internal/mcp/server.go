// Package mcp provides an MCP (Model Context Protocol) server exposing the
// graph kernel's five operations as tools, for AI agents that would
// otherwise spawn a CLI process per query.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/anthropics/codenav/internal/cache"
	"github.com/anthropics/codenav/internal/graph"
	"github.com/anthropics/codenav/internal/hub"
	"github.com/anthropics/codenav/internal/kernel"
	"github.com/anthropics/codenav/internal/resolver"
)

// Server wraps the MCP server exposing the codenav kernel operations.
type Server struct {
	mcpServer *server.MCPServer
	cache     *cache.Cache // nil disables caching; every tool falls back to a fresh computation
}

// New creates an MCP server. c may be nil, in which case the
// pagerank and critical-node tools compute fresh on every call instead of
// consulting a cache.
func New(c *cache.Cache) *Server {
	mcpServer := server.NewMCPServer(
		"codenav",
		"0.1.0",
		server.WithToolCapabilities(false),
	)

	s := &Server{mcpServer: mcpServer, cache: c}
	s.registerPageRankTool()
	s.registerHubsTool()
	s.registerCriticalNodesTool()
	s.registerResolveImportsTool()
	s.registerGraphStatsTool()

	return s
}

// ServeStdio starts the server using stdio transport.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerPageRankTool() {
	tool := mcp.NewTool("codenav_pagerank",
		mcp.WithDescription("Compute PageRank scores over a dependency graph"),
		mcp.WithNumber("num_nodes",
			mcp.Required(),
			mcp.Description("Number of nodes in the graph, ids 0..num_nodes-1"),
		),
		mcp.WithString("edges",
			mcp.Required(),
			mcp.Description("JSON array of [src, tgt] integer pairs"),
		),
		mcp.WithNumber("damping",
			mcp.Description("Damping factor, default 0.85"),
		),
	)
	s.mcpServer.AddTool(tool, s.handlePageRank)
}

func (s *Server) registerHubsTool() {
	tool := mcp.NewTool("codenav_hubs",
		mcp.WithDescription("Find hub nodes whose in-degree meets or exceeds a threshold"),
		mcp.WithNumber("num_nodes", mcp.Required(), mcp.Description("Number of nodes in the graph")),
		mcp.WithString("edges", mcp.Required(), mcp.Description("JSON array of [src, tgt] integer pairs")),
		mcp.WithNumber("threshold", mcp.Description("Minimum in-degree to qualify, default 3")),
	)
	s.mcpServer.AddTool(tool, s.handleHubs)
}

func (s *Server) registerCriticalNodesTool() {
	tool := mcp.NewTool("codenav_critical_nodes",
		mcp.WithDescription("Rank nodes by PageRank score combined with in-degree"),
		mcp.WithNumber("num_nodes", mcp.Required(), mcp.Description("Number of nodes in the graph")),
		mcp.WithString("edges", mcp.Required(), mcp.Description("JSON array of [src, tgt] integer pairs")),
		mcp.WithNumber("top_n", mcp.Description("Number of ranked nodes to return, default 10")),
		mcp.WithNumber("damping", mcp.Description("Damping factor, default 0.85")),
	)
	s.mcpServer.AddTool(tool, s.handleCriticalNodes)
}

func (s *Server) registerResolveImportsTool() {
	tool := mcp.NewTool("codenav_resolve_imports",
		mcp.WithDescription("Resolve import strings to file paths using a provided file index"),
		mcp.WithString("index",
			mcp.Required(),
			mcp.Description("JSON object mapping normalized path -> actual file path"),
		),
		mcp.WithString("extensions",
			mcp.Description("Comma-separated extension probe list, e.g. .py,.js"),
		),
		mcp.WithString("imports",
			mcp.Required(),
			mcp.Description("JSON array of import strings to resolve"),
		),
	)
	s.mcpServer.AddTool(tool, s.handleResolveImports)
}

func (s *Server) registerGraphStatsTool() {
	tool := mcp.NewTool("codenav_graph_stats",
		mcp.WithDescription("Compute whole-graph degree and isolation statistics"),
		mcp.WithNumber("num_nodes", mcp.Required(), mcp.Description("Number of nodes in the graph")),
		mcp.WithString("edges", mcp.Required(), mcp.Description("JSON array of [src, tgt] integer pairs")),
	)
	s.mcpServer.AddTool(tool, s.handleGraphStats)
}

// decodeEdges parses the "edges" argument's JSON array-of-pairs form into
// []graph.Edge.
func decodeEdges(raw string) ([]graph.Edge, error) {
	var pairs [][2]int
	if err := json.Unmarshal([]byte(raw), &pairs); err != nil {
		return nil, fmt.Errorf("decode edges: %w", err)
	}
	edges := make([]graph.Edge, len(pairs))
	for i, p := range pairs {
		edges[i] = graph.Edge{Src: p[0], Tgt: p[1]}
	}
	return edges, nil
}

func numArg(args map[string]interface{}, key string, def float64) float64 {
	if v, ok := args[key].(float64); ok {
		return v
	}
	return def
}

func strArg(args map[string]interface{}, key string) (string, bool) {
	v, ok := args[key].(string)
	return v, ok
}

func (s *Server) handlePageRank(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	edgesRaw, ok := strArg(args, "edges")
	if !ok {
		return mcp.NewToolResultError("edges parameter is required"), nil
	}
	edges, err := decodeEdges(edgesRaw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	numNodes := int(numArg(args, "num_nodes", 0))
	damping := numArg(args, "damping", 0.85)

	var scores []float64
	if s.cache != nil {
		scores, err = s.cache.FastPageRankCached(numNodes, edges, damping, 100, 1e-6)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	} else {
		scores = kernel.FastPageRank(numNodes, edges, damping, 100, 1e-6)
	}

	return jsonResult(map[string]interface{}{"scores": scores})
}

func (s *Server) handleHubs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	edgesRaw, ok := strArg(args, "edges")
	if !ok {
		return mcp.NewToolResultError("edges parameter is required"), nil
	}
	edges, err := decodeEdges(edgesRaw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	numNodes := int(numArg(args, "num_nodes", 0))
	threshold := int(numArg(args, "threshold", 3))

	g := graph.New(numNodes, edges)
	hubs := hub.FindHubs(g, threshold)

	return jsonResult(map[string]interface{}{"hubs": hubs, "stats": hub.GetStats(g)})
}

func (s *Server) handleCriticalNodes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	edgesRaw, ok := strArg(args, "edges")
	if !ok {
		return mcp.NewToolResultError("edges parameter is required"), nil
	}
	edges, err := decodeEdges(edgesRaw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	numNodes := int(numArg(args, "num_nodes", 0))
	topN := int(numArg(args, "top_n", 10))
	damping := numArg(args, "damping", 0.85)

	var nodes []kernel.CriticalNode
	if s.cache != nil {
		nodes, err = s.cache.GetCriticalNodesCached(numNodes, edges, topN, damping)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	} else {
		nodes = kernel.GetCriticalNodes(numNodes, edges, topN, damping)
	}

	return jsonResult(map[string]interface{}{"nodes": nodes})
}

func (s *Server) handleResolveImports(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	indexRaw, ok := strArg(args, "index")
	if !ok {
		return mcp.NewToolResultError("index parameter is required"), nil
	}
	var index map[string]string
	if err := json.Unmarshal([]byte(indexRaw), &index); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("decode index: %v", err)), nil
	}

	importsRaw, ok := strArg(args, "imports")
	if !ok {
		return mcp.NewToolResultError("imports parameter is required"), nil
	}
	var imports []string
	if err := json.Unmarshal([]byte(importsRaw), &imports); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("decode imports: %v", err)), nil
	}

	extensions := []string{".py", ".js", ".ts", ".tsx", ".jsx", ".go", ".rs"}
	if extRaw, ok := strArg(args, "extensions"); ok && extRaw != "" {
		var parsed []string
		for _, e := range strings.Split(extRaw, ",") {
			if e = strings.TrimSpace(e); e != "" {
				parsed = append(parsed, e)
			}
		}
		extensions = parsed
	}

	r := resolver.New(index, extensions)
	results := r.ResolveBatch(imports)

	return jsonResult(map[string]interface{}{"results": results})
}

func (s *Server) handleGraphStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	edgesRaw, ok := strArg(args, "edges")
	if !ok {
		return mcp.NewToolResultError("edges parameter is required"), nil
	}
	edges, err := decodeEdges(edgesRaw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	numNodes := int(numArg(args, "num_nodes", 0))
	stats := kernel.ComputeGraphStats(numNodes, edges)

	return jsonResult(stats)
}

// jsonResult encodes v as the tool result's text payload.
func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	encoded, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(encoded)), nil
}
