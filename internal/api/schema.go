// Package api builds the GraphQL schema the name service exposes: catalog
// lookups, listings, and definition lint results.
package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"

	"namesmith/internal/lexicon"
	"namesmith/internal/lint"
	"namesmith/internal/name"
)

// ErrCatalogNotLoaded is returned by resolvers before the first successful
// definitions load.
var ErrCatalogNotLoaded = errors.New("catalog not loaded")

// Resolver serves GraphQL queries from the catalog manager.
type Resolver struct {
	manager *lexicon.Manager
	source  lexicon.Source
}

// NewResolver creates a resolver. The source is consulted directly by the
// lint query so findings always reflect the current documents, not the last
// successful build.
func NewResolver(manager *lexicon.Manager, source lexicon.Source) *Resolver {
	return &Resolver{manager: manager, source: source}
}

// BuildSchema constructs the executable GraphQL schema.
func (r *Resolver) BuildSchema() (graphql.Schema, error) {
	nameType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Name",
		Fields: graphql.Fields{
			"singular": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(name.Name).Singular(), nil
				},
			},
			"plural": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(name.Name).Plural(), nil
				},
			},
		},
	})

	entryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "NameEntry",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(lexicon.Entry).ID, nil
				},
			},
			"kind": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(lexicon.Entry).Kind, nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.NewNonNull(nameType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(lexicon.Entry).Name, nil
				},
			},
			"corpse": &graphql.Field{
				Type:        nameType,
				Description: "Name of the corpse item left behind; creatures only.",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					entry := p.Source.(lexicon.Entry)
					if entry.Kind != "creature" {
						return nil, nil
					}
					return name.CorpseOf(entry.Name), nil
				},
			},
		},
	})

	lintFindingType := graphql.NewObject(graphql.ObjectConfig{
		Name: "LintFinding",
		Fields: graphql.Fields{
			"definitionId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(lint.Finding).DefinitionID, nil
				},
			},
			"field": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(lint.Finding).Field, nil
				},
			},
			"code": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(lint.Finding).Code, nil
				},
			},
			"message": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(lint.Finding).Message, nil
				},
			},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"entry": &graphql.Field{
				Type: entryType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolveEntry,
			},
			"entries": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(entryType))),
				Args: graphql.FieldConfigArgument{
					"kind": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolveEntries,
			},
			"lint": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(lintFindingType))),
				Resolve: r.resolveLint,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: queryType})
}

func (r *Resolver) resolveEntry(p graphql.ResolveParams) (interface{}, error) {
	catalog := r.manager.Current()
	if catalog == nil {
		return nil, ErrCatalogNotLoaded
	}

	id, _ := p.Args["id"].(string)
	entry, ok := catalog.Lookup(id)
	if !ok {
		return nil, nil
	}
	return entry, nil
}

func (r *Resolver) resolveEntries(p graphql.ResolveParams) (interface{}, error) {
	catalog := r.manager.Current()
	if catalog == nil {
		return nil, ErrCatalogNotLoaded
	}

	kind, _ := p.Args["kind"].(string)
	return catalog.Entries(kind), nil
}

func (r *Resolver) resolveLint(p graphql.ResolveParams) (interface{}, error) {
	defs, err := r.source.Load(p.Context)
	if err != nil {
		return nil, fmt.Errorf("failed to load definitions for lint: %w", err)
	}

	findings := lint.Audit(defs)
	if findings == nil {
		findings = []lint.Finding{}
	}
	return findings, nil
}

// NewHandler wraps the schema in the standard GraphQL HTTP handler.
func NewHandler(schema graphql.Schema, graphiql bool) http.Handler {
	return handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: graphiql,
	})
}
