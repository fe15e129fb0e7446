package mcp

import (
	"context"
	"encoding/json"
)

func (s *Server) handleListRoutes(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p struct {
		Domain string `json:"domain"`
		Method string `json:"method"`
	}
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	return s.engine.ListRoutes(ctx, p.Domain, p.Method)
}

func (s *Server) handleFindRoute(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p struct {
		URI  string `json:"uri"`
		Name string `json:"name"`
	}
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	return s.engine.FindRoute(ctx, p.URI, p.Name)
}

func (s *Server) handleRoutesForController(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p struct {
		Controller string `json:"controller"`
	}
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	return s.engine.RoutesForController(ctx, p.Controller)
}
