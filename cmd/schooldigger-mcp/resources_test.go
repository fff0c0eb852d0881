package main

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func TestSchoolLevelsResource_Metadata(t *testing.T) {
	resource := createSchoolLevelsResource()

	if resource.URI != "schooldigger://school-levels" {
		t.Errorf("Expected URI schooldigger://school-levels, got %s", resource.URI)
	}
	if resource.Name != "school-levels" {
		t.Errorf("Expected name school-levels, got %s", resource.Name)
	}
	if resource.MIMEType != "text/plain" {
		t.Errorf("Expected MIME type text/plain, got %s", resource.MIMEType)
	}
}

func TestHandleSchoolLevels_ReturnsFixedText(t *testing.T) {
	contents, err := handleSchoolLevels(context.Background(), mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("Expected 1 content item, got %d", len(contents))
	}

	text, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("Expected TextResourceContents, got %T", contents[0])
	}
	if text.URI != "schooldigger://school-levels" {
		t.Errorf("Expected URI schooldigger://school-levels, got %s", text.URI)
	}
	if text.MIMEType != "text/plain" {
		t.Errorf("Expected MIME type text/plain, got %s", text.MIMEType)
	}

	for _, level := range []string{"Elementary", "Middle", "High", "Private", "Alt"} {
		if !strings.Contains(text.Text, level) {
			t.Errorf("Expected text to list %s level", level)
		}
	}
	if !strings.Contains(text.Text, "Grades K-5") {
		t.Error("Expected text to describe Elementary grade range")
	}
}

func TestHandleSchoolLevels_RepeatedReadsIdentical(t *testing.T) {
	first, err := handleSchoolLevels(context.Background(), mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	second, err := handleSchoolLevels(context.Background(), mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	firstText := first[0].(mcp.TextResourceContents).Text
	secondText := second[0].(mcp.TextResourceContents).Text
	if firstText != secondText {
		t.Error("Expected identical content on repeated reads")
	}
}
