package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/usuarios-api/internal/users"
)

const msgNotFound = "Usuario no encontrado"

func (s *Server) handleListUsers(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	list, err := s.store.List(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing users failed: %v", err)), nil
	}
	return jsonResult(list)
}

func (s *Server) handleGetUser(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}
	u, err := s.store.Get(ctx, id)
	if err != nil {
		return storeError(err), nil
	}
	return jsonResult(u)
}

func (s *Server) handleCreateUser(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("nombre")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: nombre"), nil
	}
	email, err := request.RequireString("email")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: email"), nil
	}
	u, err := s.store.Create(ctx, name, email)
	if err != nil {
		return storeError(err), nil
	}
	return jsonResult(u)
}

func (s *Server) handleUpdateUser(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}
	name, err := request.RequireString("nombre")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: nombre"), nil
	}
	email, err := request.RequireString("email")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: email"), nil
	}
	u, err := s.store.Update(ctx, id, name, email)
	if err != nil {
		return storeError(err), nil
	}
	return jsonResult(u)
}

func (s *Server) handleDeleteUser(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}
	u, err := s.store.Delete(ctx, id)
	if err != nil {
		return storeError(err), nil
	}
	return jsonResult(u)
}

func storeError(err error) *mcp.CallToolResult {
	if errors.Is(err, users.ErrNotFound) {
		return mcp.NewToolResultError(msgNotFound)
	}
	return mcp.NewToolResultError(fmt.Sprintf("store error: %v", err))
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
