package mcp

var domainEnum = []string{"Core", "Customer", "Dealer", "Employer"}
var methodEnum = []string{"GET", "POST", "PUT", "PATCH", "DELETE"}

// ToolCatalog returns the schema definitions for all 19 tools, in catalog
// order. This is what the client sees on "tools/list".
func ToolCatalog() []ToolInfo {
	return []ToolInfo{
		// === STRUCTURE TOOLS ===
		{
			Name:        "list_domains",
			Description: "LIST THE FOUR APP DOMAINS (Core, Customer, Dealer, Employer) with per-domain file counts. Use first to orient yourself.",
			InputSchema: InputSchema{
				Type: "object",
			},
		},
		{
			Name:        "domain_structure",
			Description: "GET THE FULL STRUCTURE of one domain: controllers, repositories, repository interfaces, transformers, requests, models, entities, services, exceptions and tests as separate buckets. A file can appear in more than one bucket.",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"domain": {Type: "string", Description: "Domain to inspect", Enum: domainEnum},
				},
				Required: []string{"domain"},
			},
		},
		{
			Name:        "find_entity_files",
			Description: "FIND EVERY FILE related to an entity (e.g. 'Order', 'Vehicle'). Globs *<entity>* across app source and tests, classified into buckets. Fails when nothing matches.",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"entity": {Type: "string", Description: "Entity name to search for, e.g. 'Order'"},
					"domain": {Type: "string", Description: "Optional: limit the search to one domain", Enum: domainEnum},
				},
				Required: []string{"entity"},
			},
		},
		{
			Name:        "service_chain",
			Description: "TRACE THE SERVICE CHAIN for an entity: routes joined to discovered controllers, plus repositories, repository interfaces, transformers and the first matching model. Use to understand how a request flows.",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"entity": {Type: "string", Description: "Entity name, e.g. 'Order'"},
					"domain": {Type: "string", Description: "Optional: limit the search to one domain", Enum: domainEnum},
				},
				Required: []string{"entity"},
			},
		},
		// === ROUTE TOOLS ===
		{
			Name:        "list_routes",
			Description: "LIST HTTP ROUTES from the cached artisan route table, optionally filtered by domain and/or method.",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"domain": {Type: "string", Description: "Optional: only routes whose controller lives in this domain", Enum: domainEnum},
					"method": {Type: "string", Description: "Optional: only routes with this HTTP method", Enum: methodEnum},
				},
			},
		},
		{
			Name:        "find_route",
			Description: "RESOLVE ONE ROUTE by symbolic name or exact URI. Supply exactly one of 'name' or 'uri'. Fails when the route does not exist.",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"name": {Type: "string", Description: "Route name, e.g. 'fleet.orders.index'"},
					"uri":  {Type: "string", Description: "Route URI, e.g. '/async/fleet/orders'"},
				},
			},
		},
		{
			Name:        "routes_for_controller",
			Description: "LIST THE ROUTES handled by one controller, matched by controller name against the route actions.",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"controller": {Type: "string", Description: "Controller class name, e.g. 'OrderController'"},
				},
				Required: []string{"controller"},
			},
		},
		// === LISTING TOOLS ===
		{
			Name:        "list_controllers",
			Description: "LIST CONTROLLER FILES, optionally limited to one domain.",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"domain": {Type: "string", Description: "Optional domain filter", Enum: domainEnum},
				},
			},
		},
		{
			Name:        "list_repositories",
			Description: "LIST REPOSITORY FILES (implementations and interfaces), optionally limited to one domain.",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"domain": {Type: "string", Description: "Optional domain filter", Enum: domainEnum},
				},
			},
		},
		{
			Name:        "list_models",
			Description: "LIST ELOQUENT MODELS AND ENTITIES, optionally limited to one domain.",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"domain": {Type: "string", Description: "Optional domain filter", Enum: domainEnum},
				},
			},
		},
		{
			Name:        "model_scopes",
			Description: "EXTRACT QUERY SCOPES from one Eloquent model: every scopeXxx() declaration in document order.",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"model":  {Type: "string", Description: "Model name, e.g. 'Order'"},
					"domain": {Type: "string", Description: "Optional domain filter", Enum: domainEnum},
				},
				Required: []string{"model"},
			},
		},
		// === TEST TOOLS ===
		{
			Name:        "untested_files",
			Description: "FIND FILES WITHOUT TESTS in a domain. Checks tests/Unit and tests/Feature for a *<name>*Test match per file and reports a coverage percentage.",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"domain":    {Type: "string", Description: "Domain to inspect", Enum: domainEnum},
					"file_type": {Type: "string", Description: "Optional: controller, repository, service, transformer, model or request"},
				},
				Required: []string{"domain"},
			},
		},
		// === FRONTEND TOOLS ===
		{
			Name:        "find_component",
			Description: "LOCATE A VUE COMPONENT by short name. Fails when no component matches.",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"name": {Type: "string", Description: "Component name, e.g. 'Button'"},
				},
				Required: []string{"name"},
			},
		},
		{
			Name:        "component_usage",
			Description: "COUNT COMPONENT USAGE across the frontend. Only files that import the component contribute; template tags without an import are ignored.",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"name": {Type: "string", Description: "Component name, e.g. 'Button'"},
				},
				Required: []string{"name"},
			},
		},
		{
			Name:        "unused_components",
			Description: "FIND UNREFERENCED VUE COMPONENTS: components no other frontend file imports. Shared and base component folders are exempt.",
			InputSchema: InputSchema{
				Type: "object",
			},
		},
		{
			Name:        "list_pages",
			Description: "LIST INERTIA PAGE COMPONENTS, optionally narrowed to paths mentioning one domain.",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"domain": {Type: "string", Description: "Optional domain filter", Enum: domainEnum},
				},
			},
		},
		{
			Name:        "page_props",
			Description: "MAP A PAGE TO ITS CONTROLLER: extracts the page's defineProps declaration and finds the controllers that Inertia::render it.",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"page": {Type: "string", Description: "Page component name, e.g. 'OrderOverview'"},
				},
				Required: []string{"page"},
			},
		},
		// === DATABASE & ANALYSIS TOOLS ===
		{
			Name:        "db_table_schema",
			Description: "GET THE SCHEMA of one database table from the dev database; falls back to the newest matching migration file when the database cannot answer.",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"table": {Type: "string", Description: "Table name, e.g. 'orders'"},
				},
				Required: []string{"table"},
			},
		},
		{
			Name:        "static_analysis",
			Description: "RUN PHPSTAN on a relative path and return its output verbatim. Findings are a normal result, not an error.",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"path": {Type: "string", Description: "Path relative to the app root, e.g. 'app/Employer/Controllers'"},
				},
				Required: []string{"path"},
			},
		},
	}
}
