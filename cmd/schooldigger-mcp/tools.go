package main

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/edtools/schooldigger-mcp/internal/schooldigger"
)

// registerTools registers all MCP tools on the server, wiring each to a handler
// that calls the SchoolDigger API via the client.
func registerTools(s *server.MCPServer, c *schooldigger.Client) {
	s.AddTool(createSearchSchoolsTool(), handleSearchSchools(c))
	s.AddTool(createSearchAutocompleteSchoolsTool(), handleSearchAutocompleteSchools(c))
	s.AddTool(createGetSchoolDetailsTool(), handleGetSchoolDetails(c))
	s.AddTool(createSearchDistrictsTool(), handleSearchDistricts(c))
	s.AddTool(createGetDistrictDetailsTool(), handleGetDistrictDetails(c))
}

// --- Tool definitions ---

func createSearchSchoolsTool() mcp.Tool {
	return mcp.NewTool("search_schools",
		mcp.WithDescription("Search schools by city, state, or zip code, with optional level filtering. Results are ranked by statewide performance."),
		mcp.WithString("query", mcp.Description("Partial school name to search (e.g., 'Lincoln')")),
		mcp.WithString("city", mcp.Description("City name (e.g., 'Cypress')")),
		mcp.WithString("state", mcp.Description("Two-letter US state code like CA, NY, TX (required)")),
		mcp.WithString("zip_code", mcp.Description("ZIP code (e.g., '77433')")),
		mcp.WithString("school_level", mcp.Description("'Elementary', 'Middle', 'High', 'Alt', 'Public', or 'Private'. 'Public' returns all Elementary, Middle, High and Alternative schools.")),
		mcp.WithString("sort_by", mcp.Description("Sort order for results (default: rank)")),
		mcp.WithNumber("per_page", mcp.Description("Number of results to return (default: 5)")),
	)
}

func createSearchAutocompleteSchoolsTool() mcp.Tool {
	return mcp.NewTool("search_autocomplete_schools",
		mcp.WithDescription("Autocomplete schools by name. Returns matching schools with IDs and names."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Partial school name to search")),
		mcp.WithNumber("max_results", mcp.Description("Max number of suggestions (default: 10)")),
	)
}

func createGetSchoolDetailsTool() mcp.Tool {
	return mcp.NewTool("get_school_details",
		mcp.WithDescription("Fetch school details: demographics, address, test scores, rank history, etc."),
		mcp.WithString("school_id", mcp.Required(), mcp.Description("SchoolDigger school ID")),
	)
}

func createSearchDistrictsTool() mcp.Tool {
	return mcp.NewTool("search_districts",
		mcp.WithDescription("Find school districts by city, state, or zip code. Always pass a two-letter state code; best-ranked districts come back first."),
		mcp.WithString("city", mcp.Description("City name (e.g., 'San Jose')")),
		mcp.WithString("state", mcp.Description("Two-letter US state code (e.g., 'CA', 'TX')")),
		mcp.WithString("query", mcp.Description("Partial district name to search for (e.g., 'San')")),
		mcp.WithString("zip_code", mcp.Description("ZIP code (e.g., '77433')")),
		mcp.WithString("sort_by", mcp.Description("Sort order for results (default: rank)")),
		mcp.WithNumber("per_page", mcp.Description("Number of results to return (default: 5)")),
	)
}

func createGetDistrictDetailsTool() mcp.Tool {
	return mcp.NewTool("get_district_details",
		mcp.WithDescription("Fetch details of a district: demographics, rank history, boundaries, etc."),
		mcp.WithString("district_id", mcp.Required(), mcp.Description("SchoolDigger district ID")),
	)
}
