// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mcpserver exposes the arXiv fetch adapters as MCP tools over a
// stdio channel. Caller-input failures (empty advanced query, unresolvable
// identifier) become structured error payloads; upstream fetch failures
// propagate as tool faults.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/pdiddy/arxiv-scout/internal/arxiv"
)

// New builds the MCP server with every arXiv tool registered.
func New(client *arxiv.Client, version string) *server.MCPServer {
	s := server.NewMCPServer("arxiv-scout", version, server.WithToolCapabilities(false))

	s.AddTool(mcp.NewTool("search",
		mcp.WithDescription("Search arXiv for papers matching the query."),
		mcp.WithString("query", mcp.Required(),
			mcp.Description("Search query (e.g. 'LLM', 'transformer architecture')")),
		mcp.WithString("category",
			mcp.Description("Filter by arXiv category (e.g. 'cs.AI', 'cs.LG', 'stat.ML')")),
		mcp.WithString("author",
			mcp.Description("Filter by author name")),
		mcp.WithString("sort_by", mcp.DefaultString("relevance"),
			mcp.Description("Sort order: relevance, date_desc, date_asc, submissions_desc, submissions_asc")),
		mcp.WithNumber("page", mcp.DefaultNumber(1),
			mcp.Description("Page number")),
		mcp.WithNumber("page_size", mcp.DefaultNumber(25),
			mcp.Description("Results per page, max 50")),
	), searchHandler(client))

	s.AddTool(mcp.NewTool("searchAdvanced",
		mcp.WithDescription("Advanced arXiv search with field-scoped filters. At least one filter field is required."),
		mcp.WithString("title", mcp.Description("Search in paper titles")),
		mcp.WithString("abstract", mcp.Description("Search in abstracts")),
		mcp.WithString("author", mcp.Description("Search by author name")),
		mcp.WithString("category", mcp.Description("Filter by arXiv category (e.g. 'cs.AI')")),
		mcp.WithString("id", mcp.Description("Search by arXiv ID pattern")),
		mcp.WithString("date_from", mcp.Description("Start date filter (YYYY-MM-DD)")),
		mcp.WithString("date_to", mcp.Description("End date filter (YYYY-MM-DD)")),
		mcp.WithString("sort_by", mcp.DefaultString("relevance"),
			mcp.Description("Sort order: relevance, date_desc, date_asc, submissions_desc, submissions_asc")),
		mcp.WithNumber("page", mcp.DefaultNumber(1),
			mcp.Description("Page number")),
		mcp.WithNumber("page_size", mcp.DefaultNumber(25),
			mcp.Description("Results per page, max 50")),
	), searchAdvancedHandler(client))

	s.AddTool(mcp.NewTool("getPaper",
		mcp.WithDescription("Get detailed information about a specific arXiv paper."),
		mcp.WithString("id_or_url", mcp.Required(),
			mcp.Description("arXiv paper ID (e.g. '2301.00001') or full arXiv URL")),
	), getPaperHandler(client))

	s.AddTool(mcp.NewTool("getContent",
		mcp.WithDescription("Get the full rendered text content of an arXiv paper."),
		mcp.WithString("id_or_url", mcp.Required(),
			mcp.Description("arXiv paper ID (e.g. '2301.00001') or full arXiv URL")),
	), getContentHandler(client))

	s.AddTool(mcp.NewTool("listCategories",
		mcp.WithDescription("List all common arXiv categories with code, name, and group."),
	), listCategoriesHandler())

	s.AddTool(mcp.NewTool("getRecent",
		mcp.WithDescription("Get recent papers from a specific arXiv category."),
		mcp.WithString("category", mcp.DefaultString("cs.AI"),
			mcp.Description("arXiv category code")),
		mcp.WithNumber("count", mcp.DefaultNumber(10),
			mcp.Description("Number of papers to retrieve, max 50")),
	), getRecentHandler(client))

	return s
}

// ServeStdio runs the server on the stdio transport for the process
// lifetime.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

func searchHandler(client *arxiv.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := req.RequireString("query")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		result, err := client.Search(ctx, arxiv.SearchParams{
			Query:    query,
			Category: req.GetString("category", ""),
			Author:   req.GetString("author", ""),
			SortBy:   req.GetString("sort_by", "relevance"),
			Page:     req.GetInt("page", 1),
			PageSize: req.GetInt("page_size", 25),
		})
		if err != nil {
			return nil, err
		}
		return jsonResult(result)
	}
}

func searchAdvancedHandler(client *arxiv.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := client.SearchAdvanced(ctx, arxiv.AdvancedParams{
			Title:    req.GetString("title", ""),
			Abstract: req.GetString("abstract", ""),
			Author:   req.GetString("author", ""),
			Category: req.GetString("category", ""),
			ID:       req.GetString("id", ""),
			DateFrom: req.GetString("date_from", ""),
			DateTo:   req.GetString("date_to", ""),
			SortBy:   req.GetString("sort_by", "relevance"),
			Page:     req.GetInt("page", 1),
			PageSize: req.GetInt("page_size", 25),
		})
		if errors.Is(err, arxiv.ErrEmptyQuery) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err != nil {
			return nil, err
		}
		return jsonResult(result)
	}
}

func getPaperHandler(client *arxiv.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		idOrURL, err := req.RequireString("id_or_url")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		paper, err := client.Paper(ctx, idOrURL)
		if errors.Is(err, arxiv.ErrNoIdentifier) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err != nil {
			return nil, err
		}
		return jsonResult(paper)
	}
}

func getContentHandler(client *arxiv.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		idOrURL, err := req.RequireString("id_or_url")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		content, err := client.Content(ctx, idOrURL)
		if err != nil {
			return nil, err
		}
		return mcp.NewToolResultText(content), nil
	}
}

func listCategoriesHandler() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(arxiv.Categories())
	}
}

func getRecentHandler(client *arxiv.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		listing, err := client.Recent(ctx,
			req.GetString("category", "cs.AI"),
			req.GetInt("count", 10))
		if err != nil {
			return nil, err
		}
		return jsonResult(listing)
	}
}

// jsonResult marshals v into the text payload of a tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding result: %w", err)
	}
	return mcp.NewToolResultText(string(b)), nil
}
