package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/samber/lo"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/mood"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListEntriesTool(srv, svc)
	registerSearchEntriesTool(srv, svc)
	registerGetEntryTool(srv, svc)
	registerCreateEntryTool(srv, svc)
	registerToggleFavoriteTool(srv, svc)
	registerDeleteEntryTool(srv, svc)
	registerHistoryTool(srv, svc)
	registerInsightTool(srv, svc)
}

func moodKeys() []string {
	keys := lo.Map(mood.DefaultGlyphs(), func(g mood.Glyph, _ int) string { return g.Key })
	return append(keys, "all")
}

func registerListEntriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_entries",
		mcp.WithDescription("List journal entries, newest first."),
		mcp.WithBoolean("favorites",
			mcp.Description("Only return favorite entries."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of entries to return (default 20)."),
			mcp.Min(1),
			mcp.Max(100),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		favorites := request.GetBool("favorites", false)
		limit := request.GetInt("limit", DefaultLimit)

		results, err := svc.ListEntries(ctx, favorites, limit)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"favorites": favorites,
			"entries":   results,
			"count":     len(results),
		})
	})
}

func registerSearchEntriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"search_entries",
		mcp.WithDescription("Search entries by text across titles, content and tags, optionally narrowed by mood and date range."),
		mcp.WithString("query",
			mcp.Description("Case-insensitive search text."),
		),
		mcp.WithString("mood",
			mcp.Description("Mood filter."),
			mcp.Enum(moodKeys()...),
		),
		mcp.WithString("from",
			mcp.Description("First day to include, YYYY-MM-DD, today or yesterday."),
		),
		mcp.WithString("to",
			mcp.Description("Last day to include, YYYY-MM-DD, today or yesterday."),
		),
		mcp.WithBoolean("favorites",
			mcp.Description("Only return favorite entries."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of entries to return (default 20)."),
			mcp.Min(1),
			mcp.Max(100),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Query     string `json:"query"`
			Mood      string `json:"mood"`
			From      string `json:"from"`
			To        string `json:"to"`
			Favorites bool   `json:"favorites"`
			Limit     int    `json:"limit"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		results, err := svc.SearchEntries(ctx, SearchOptions{
			Query:         args.Query,
			Mood:          args.Mood,
			From:          args.From,
			To:            args.To,
			FavoritesOnly: args.Favorites,
			Limit:         args.Limit,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"query":   args.Query,
			"results": results,
			"count":   len(results),
		})
	})
}

func registerGetEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_entry",
		mcp.WithDescription("Fetch a single entry by identifier."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier to fetch."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.EntryByID(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerCreateEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"create_entry",
		mcp.WithDescription("Write a new journal entry."),
		mcp.WithString("title",
			mcp.Description("Entry title; defaults to \"Untitled Entry\"."),
		),
		mcp.WithString("content",
			mcp.Description("Entry body."),
		),
		mcp.WithString("mood",
			mcp.Description("Mood of the entry; defaults to neutral."),
			mcp.Enum(moodKeys()...),
		),
		mcp.WithArray("tags",
			mcp.Description("Tags to attach."),
			mcp.WithStringItems(),
		),
		mcp.WithString("location",
			mcp.Description("Optional free-text location."),
		),
		mcp.WithString("date",
			mcp.Description("Optional RFC3339 timestamp or YYYY-MM-DD to backfill the entry date."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Title    string   `json:"title"`
			Content  string   `json:"content"`
			Mood     string   `json:"mood"`
			Tags     []string `json:"tags"`
			Location string   `json:"location"`
			Date     string   `json:"date"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if strings.EqualFold(strings.TrimSpace(args.Mood), "all") {
			args.Mood = ""
		}

		dto, err := svc.CreateEntry(ctx, CreateEntryOptions{
			Title:    args.Title,
			Content:  args.Content,
			Mood:     args.Mood,
			Tags:     args.Tags,
			Location: args.Location,
			Date:     args.Date,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerToggleFavoriteTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"toggle_favorite",
		mcp.WithDescription("Flip the favorite flag on an entry."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.ToggleFavorite(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerDeleteEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_entry",
		mcp.WithDescription("Delete an entry permanently."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := svc.DeleteEntry(ctx, id); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"id": id, "deleted": true})
	})
}

func registerHistoryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_history",
		mcp.WithDescription("Summarize writing activity over the last year: totals, streaks and active days."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.History(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerInsightTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_insight",
		mcp.WithDescription("Generate a short reflection on the five most recent entries."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.Insight(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
