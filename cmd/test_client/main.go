package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	endpoint := flag.String("endpoint", "http://localhost:8080/mcp/stream", "MCP stream endpoint")
	jobID := flag.String("job", "", "job opening id for list_applications")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "unified-ats-test-client",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{Endpoint: *endpoint}, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	log.Printf("Connected to server (session ID: %s)\n", session.ID())

	testListTools(ctx, session)
	testListJobs(ctx, session)
	if *jobID != "" {
		testListApplications(ctx, session, *jobID)
	}

	fmt.Println("\nAll tests completed")
}

func testListTools(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: list tools")

	tools, err := session.ListTools(ctx, nil)
	if err != nil {
		log.Printf("list tools failed: %v", err)
		return
	}
	for _, tool := range tools.Tools {
		fmt.Printf("  - %s: %s\n", tool.Name, tool.Description)
	}
}

func testListJobs(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: list_jobs")
	call(ctx, session, &mcp.CallToolParams{Name: "list_jobs", Arguments: map[string]any{}})
}

func testListApplications(ctx context.Context, session *mcp.ClientSession, jobID string) {
	fmt.Println("\nTEST: list_applications")
	call(ctx, session, &mcp.CallToolParams{
		Name:      "list_applications",
		Arguments: map[string]any{"job_id": jobID},
	})
}

func call(ctx context.Context, session *mcp.ClientSession, params *mcp.CallToolParams) {
	result, err := session.CallTool(ctx, params)
	if err != nil {
		log.Printf("%s failed: %v", params.Name, err)
		return
	}

	printResult(result)
	if result.IsError {
		fmt.Printf("%s returned a tool error\n", params.Name)
		return
	}
	fmt.Printf("%s passed\n", params.Name)
}

func printResult(result *mcp.CallToolResult) {
	for _, content := range result.Content {
		if text, ok := content.(*mcp.TextContent); ok {
			fmt.Println(text.Text)
		}
	}
}
