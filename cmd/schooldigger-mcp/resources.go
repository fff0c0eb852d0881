package main

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const schoolLevelsURI = "schooldigger://school-levels"

// schoolLevelsText lists the school level categories accepted by the
// school_level argument of search_schools.
const schoolLevelsText = `Elementary: Grades K-5
Middle: Grades 6-8
High: Grades 9-12
Private: Private institutions
Alt: Alternative education programs`

// registerResources registers all static MCP resources on the server.
func registerResources(s *server.MCPServer) {
	s.AddResource(createSchoolLevelsResource(), handleSchoolLevels)
}

func createSchoolLevelsResource() mcp.Resource {
	return mcp.NewResource(schoolLevelsURI, "school-levels",
		mcp.WithResourceDescription("Available school level categories"),
		mcp.WithMIMEType("text/plain"),
	)
}

func handleSchoolLevels(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      schoolLevelsURI,
			MIMEType: "text/plain",
			Text:     schoolLevelsText,
		},
	}, nil
}
