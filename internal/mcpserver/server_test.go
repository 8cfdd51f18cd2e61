package mcpserver

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/pdiddy/arxiv-scout/internal/arxiv"
	"github.com/pdiddy/arxiv-scout/pkg/types"
)

func callRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatal("result has no content")
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want TextContent", res.Content[0])
	}
	return text.Text
}

func TestNewRegistersServer(t *testing.T) {
	s := New(arxiv.New(types.ClientConfig{}), "test")
	if s == nil {
		t.Fatal("New returned nil server")
	}
}

func TestSearchAdvancedNoFieldsIsErrorPayload(t *testing.T) {
	client := arxiv.New(types.ClientConfig{})

	res, err := searchAdvancedHandler(client)(context.Background(), callRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("handler returned fault: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected error payload for empty advanced query")
	}
	if !strings.Contains(resultText(t, res), "search field") {
		t.Errorf("error text = %q", resultText(t, res))
	}
}

func TestGetPaperUnresolvableIsErrorPayload(t *testing.T) {
	client := arxiv.New(types.ClientConfig{})

	res, err := getPaperHandler(client)(context.Background(), callRequest(map[string]any{
		"id_or_url": "not a paper at all",
	}))
	if err != nil {
		t.Fatalf("handler returned fault: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected error payload for unresolvable identifier")
	}
}

func TestGetPaperMissingArgument(t *testing.T) {
	client := arxiv.New(types.ClientConfig{})

	res, err := getPaperHandler(client)(context.Background(), callRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("handler returned fault: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected error payload for missing id_or_url")
	}
}

func TestListCategories(t *testing.T) {
	res, err := listCategoriesHandler()(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("handler returned fault: %v", err)
	}
	if res.IsError {
		t.Fatal("unexpected error payload")
	}
	text := resultText(t, res)
	if !strings.Contains(text, `"cs.AI"`) || !strings.Contains(text, "Computer Science") {
		t.Errorf("payload missing categories: %s", text)
	}
}
