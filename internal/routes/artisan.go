package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/tvandenberg/fleetlens/pkg/types"
)

// Lister produces the full current route table. The production
// implementation shells out to artisan; tests substitute their own.
type Lister func(ctx context.Context) ([]types.RouteRecord, error)

// artisanRoute mirrors one element of `php artisan route:list --json`.
type artisanRoute struct {
	Name       *string  `json:"name"`
	Method     string   `json:"method"`
	URI        string   `json:"uri"`
	Action     string   `json:"action"`
	Middleware []string `json:"middleware"`
}

// ArtisanLister returns a Lister that runs `php artisan route:list --json`
// in the app root, bounded by timeout. Any exec failure, timeout, or
// malformed JSON is a collaborator error.
func ArtisanLister(phpBinary, appPath string, timeout time.Duration) Lister {
	return func(ctx context.Context) ([]types.RouteRecord, error) {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		cmd := exec.CommandContext(ctx, phpBinary, "artisan", "route:list", "--json")
		cmd.Dir = appPath

		var stdout, stderr bytes.Buffer
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr

		if err := cmd.Run(); err != nil {
			if ctx.Err() == context.DeadlineExceeded {
				return nil, types.Collaboratorf(ctx.Err(), "route:list timed out after %s", timeout)
			}
			return nil, types.Collaboratorf(fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String())), "route:list failed")
		}

		return parseRouteList(stdout.Bytes())
	}
}

func parseRouteList(data []byte) ([]types.RouteRecord, error) {
	var raw []artisanRoute
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, types.Collaboratorf(err, "route:list produced malformed JSON")
	}

	records := make([]types.RouteRecord, 0, len(raw))
	for _, r := range raw {
		rec := types.RouteRecord{
			Method:     normalizeMethod(r.Method),
			URI:        r.URI,
			Action:     r.Action,
			Middleware: r.Middleware,
		}
		if r.Name != nil {
			rec.Name = *r.Name
		}
		records = append(records, rec)
	}
	return records, nil
}

// normalizeMethod collapses artisan's "GET|HEAD" style method lists to the
// primary verb.
func normalizeMethod(m string) string {
	if i := strings.Index(m, "|"); i >= 0 {
		m = m[:i]
	}
	return strings.ToUpper(strings.TrimSpace(m))
}
