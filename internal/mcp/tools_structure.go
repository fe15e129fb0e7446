package mcp

import (
	"context"
	"encoding/json"

	"github.com/tvandenberg/fleetlens/pkg/types"
)

// decode unmarshals tool arguments into the per-tool request struct.
// Absent arguments decode to the zero value; malformed JSON is a usage
// error surfaced through the normal error envelope.
func decode(params json.RawMessage, into interface{}) error {
	if len(params) == 0 {
		return nil
	}
	if err := json.Unmarshal(params, into); err != nil {
		return types.Usagef("invalid arguments: %v", err)
	}
	return nil
}

func (s *Server) handleListDomains(ctx context.Context, params json.RawMessage) (interface{}, error) {
	return s.engine.ListDomains()
}

func (s *Server) handleDomainStructure(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p struct {
		Domain string `json:"domain"`
	}
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	return s.engine.Structure(p.Domain)
}

func (s *Server) handleFindEntityFiles(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p struct {
		Entity string `json:"entity"`
		Domain string `json:"domain"`
	}
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	return s.engine.FindEntityFiles(p.Entity, p.Domain)
}

func (s *Server) handleServiceChain(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p struct {
		Entity string `json:"entity"`
		Domain string `json:"domain"`
	}
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	return s.engine.Chain(ctx, p.Entity, p.Domain)
}

func (s *Server) handleListControllers(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p struct {
		Domain string `json:"domain"`
	}
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	return s.engine.ListControllers(p.Domain)
}

func (s *Server) handleListRepositories(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p struct {
		Domain string `json:"domain"`
	}
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	return s.engine.ListRepositories(p.Domain)
}

func (s *Server) handleListModels(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p struct {
		Domain string `json:"domain"`
	}
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	return s.engine.ListModels(p.Domain)
}

func (s *Server) handleModelScopes(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p struct {
		Model  string `json:"model"`
		Domain string `json:"domain"`
	}
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	return s.engine.ModelScopes(p.Model, p.Domain)
}

func (s *Server) handleUntestedFiles(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p struct {
		Domain   string `json:"domain"`
		FileType string `json:"file_type"`
	}
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	return s.engine.UntestedFiles(p.Domain, p.FileType)
}
