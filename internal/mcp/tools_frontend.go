package mcp

import (
	"context"
	"encoding/json"
)

func (s *Server) handleFindComponent(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p struct {
		Name string `json:"name"`
	}
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	return s.engine.FindComponent(p.Name)
}

func (s *Server) handleComponentUsage(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p struct {
		Name string `json:"name"`
	}
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	return s.engine.ComponentUsage(p.Name)
}

func (s *Server) handleUnusedComponents(ctx context.Context, params json.RawMessage) (interface{}, error) {
	return s.engine.UnusedComponents()
}

func (s *Server) handleListPages(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p struct {
		Domain string `json:"domain"`
	}
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	return s.engine.ListPages(p.Domain)
}

func (s *Server) handlePageProps(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p struct {
		Page string `json:"page"`
	}
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	return s.engine.PageProps(p.Page)
}
