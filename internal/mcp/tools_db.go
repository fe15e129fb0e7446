package mcp

import (
	"context"
	"encoding/json"
)

func (s *Server) handleTableSchema(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p struct {
		Table string `json:"table"`
	}
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	return s.engine.TableSchema(p.Table)
}

func (s *Server) handleStaticAnalysis(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p struct {
		Path string `json:"path"`
	}
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	return s.engine.StaticAnalysis(ctx, p.Path)
}
