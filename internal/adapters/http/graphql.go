package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
)

// buildSchema creates the GraphQL schema wired to our services.
func buildSchema(deps *Dependencies) (graphql.Schema, error) {
	geoPointType := graphql.NewObject(graphql.ObjectConfig{
		Name: "GeoPoint",
		Fields: graphql.Fields{
			"lat": &graphql.Field{Type: graphql.Float},
			"lon": &graphql.Field{Type: graphql.Float},
		},
	})

	stationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "FuelStation",
		Fields: graphql.Fields{
			"name":    &graphql.Field{Type: graphql.String},
			"address": &graphql.Field{Type: graphql.String},
			"city":    &graphql.Field{Type: graphql.String},
			"state":   &graphql.Field{Type: graphql.String},
			"price":   &graphql.Field{Type: graphql.Float},
		},
	})

	fuelStopType := graphql.NewObject(graphql.ObjectConfig{
		Name: "FuelStop",
		Fields: graphql.Fields{
			"stop_number":         &graphql.Field{Type: graphql.Int},
			"station_name":        &graphql.Field{Type: graphql.String},
			"address":             &graphql.Field{Type: graphql.String},
			"city":                &graphql.Field{Type: graphql.String},
			"state":               &graphql.Field{Type: graphql.String},
			"price_per_gallon":    &graphql.Field{Type: graphql.Float},
			"distance_from_start": &graphql.Field{Type: graphql.Float},
		},
	})

	routeSummaryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "RouteSummary",
		Fields: graphql.Fields{
			"start":          &graphql.Field{Type: graphql.String},
			"end":            &graphql.Field{Type: graphql.String},
			"distance_miles": &graphql.Field{Type: graphql.Float},
			"geometry":       &graphql.Field{Type: graphql.NewList(geoPointType)},
		},
	})

	fuelSummaryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "FuelSummary",
		Fields: graphql.Fields{
			"total_gallons_needed":     &graphql.Field{Type: graphql.Float},
			"average_price_per_gallon": &graphql.Field{Type: graphql.Float},
			"total_fuel_cost":          &graphql.Field{Type: graphql.Float},
		},
	})

	routePlanType := graphql.NewObject(graphql.ObjectConfig{
		Name: "RoutePlan",
		Fields: graphql.Fields{
			"route":        &graphql.Field{Type: routeSummaryType},
			"fuel_stops":   &graphql.Field{Type: graphql.NewList(fuelStopType)},
			"fuel_summary": &graphql.Field{Type: fuelSummaryType},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"stations": &graphql.Field{
				Type:        graphql.NewList(stationType),
				Description: "List fuel stations, optionally filtered by state",
				Args: graphql.FieldConfigArgument{
					"state": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if state, ok := p.Args["state"].(string); ok && state != "" {
						return deps.Catalog.StationsByState(p.Context, state)
					}
					return deps.Catalog.Stations(p.Context)
				},
			},
			"cheapestStations": &graphql.Field{
				Type:        graphql.NewList(stationType),
				Description: "Lowest-priced fuel stations",
				Args: graphql.FieldConfigArgument{
					"state": &graphql.ArgumentConfig{Type: graphql.String},
					"limit": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 10},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					limit := p.Args["limit"].(int)
					state, _ := p.Args["state"].(string)
					return deps.Catalog.CheapestStations(p.Context, state, limit)
				},
			},
			"planRoute": &graphql.Field{
				Type:        routePlanType,
				Description: "Compute a fuel-optimized route between two USA locations",
				Args: graphql.FieldConfigArgument{
					"start": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"end":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					start := p.Args["start"].(string)
					end := p.Args["end"].(string)
					return deps.Plans.PlanRoute(p.Context, start, end)
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: queryType,
	})
}

// GraphQLHandler serves the GraphQL endpoint.
func GraphQLHandler(deps *Dependencies) fiber.Handler {
	schema, err := buildSchema(deps)
	if err != nil {
		// This would be a programming error in the schema definition
		panic("graphql schema build: " + err.Error())
	}

	type gqlRequest struct {
		Query         string                 `json:"query"`
		OperationName string                 `json:"operationName"`
		Variables     map[string]interface{} `json:"variables"`
	}

	return func(c *fiber.Ctx) error {
		var req gqlRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			VariableValues: req.Variables,
			OperationName:  req.OperationName,
			Context:        c.Context(),
		})

		return c.JSON(result)
	}
}
