package main

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/edtools/schooldigger-mcp/internal/schooldigger"
)

// --- Helpers ---

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

func getString(request mcp.CallToolRequest, key, defaultVal string) string {
	return request.GetString(key, defaultVal)
}

func getInt(request mcp.CallToolRequest, key string, defaultVal int) int {
	return request.GetInt(key, defaultVal)
}

func requireString(request mcp.CallToolRequest, key string) (string, error) {
	return request.RequireString(key)
}

// --- Handlers ---

// Upstream failures are not MCP protocol errors: the client folds them into
// an {"error": ...} JSON value which is returned as an ordinary text result,
// so callers must check the response shape. Only a missing required argument
// produces an IsError result.

func handleSearchSchools(c *schooldigger.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		params := url.Values{}
		params.Set("sortBy", getString(request, "sort_by", "rank"))
		params.Set("perPage", strconv.Itoa(getInt(request, "per_page", 5)))
		if query := getString(request, "query", ""); query != "" {
			params.Set("q", query)
		}
		if city := getString(request, "city", ""); city != "" {
			params.Set("city", city)
		}
		if state := getString(request, "state", ""); state != "" {
			params.Set("st", state)
		}
		if zip := getString(request, "zip_code", ""); zip != "" {
			params.Set("zip", zip)
		}
		if level := getString(request, "school_level", ""); level != "" {
			params.Set("level", level)
		}

		body := c.Call(ctx, "schools", params)
		return textResult(string(body)), nil
	}
}

func handleSearchAutocompleteSchools(c *schooldigger.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := requireString(request, "query")
		if err != nil {
			return errorResult("Error: query parameter is required"), nil
		}

		params := url.Values{}
		params.Set("q", query)
		params.Set("returnCount", strconv.Itoa(getInt(request, "max_results", 10)))

		body := c.Call(ctx, "autocomplete/schools", params)
		return textResult(string(body)), nil
	}
}

func handleGetSchoolDetails(c *schooldigger.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		schoolID, err := requireString(request, "school_id")
		if err != nil {
			return errorResult("Error: school_id parameter is required"), nil
		}

		body := c.Call(ctx, fmt.Sprintf("schools/%s", url.PathEscape(schoolID)), nil)
		return textResult(string(body)), nil
	}
}

func handleSearchDistricts(c *schooldigger.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		// The districts endpoint takes "sort", unlike schools which takes "sortBy"
		params := url.Values{}
		params.Set("sort", getString(request, "sort_by", "rank"))
		params.Set("perPage", strconv.Itoa(getInt(request, "per_page", 5)))
		if city := getString(request, "city", ""); city != "" {
			params.Set("city", city)
		}
		if state := getString(request, "state", ""); state != "" {
			params.Set("st", state)
		}
		if zip := getString(request, "zip_code", ""); zip != "" {
			params.Set("zip", zip)
		}
		if query := getString(request, "query", ""); query != "" {
			params.Set("q", query)
		}

		body := c.Call(ctx, "districts", params)
		return textResult(string(body)), nil
	}
}

func handleGetDistrictDetails(c *schooldigger.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		districtID, err := requireString(request, "district_id")
		if err != nil {
			return errorResult("Error: district_id parameter is required"), nil
		}

		body := c.Call(ctx, fmt.Sprintf("districts/%s", url.PathEscape(districtID)), nil)
		return textResult(string(body)), nil
	}
}
