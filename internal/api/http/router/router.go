package router

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	gqlhandler "github.com/graphql-go/handler"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	gql "github.com/acamargo/persona-server/internal/api/graphql"
	"github.com/acamargo/persona-server/internal/api/http/middleware"
	"github.com/acamargo/persona-server/internal/logger"
	"github.com/acamargo/persona-server/internal/metrics"
)

const serviceName = "persona-server"

// New assembles the HTTP routes: the GraphQL endpoint with GraphiQL
// enabled, a health probe and the prometheus scrape endpoint.
func New(resolver *gql.Resolver, log *logger.Logger, m *metrics.Metrics) (http.Handler, error) {
	schema, err := gql.NewSchema(resolver)
	if err != nil {
		return nil, err
	}

	graphqlHandler := gqlhandler.New(&gqlhandler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: true,
	})

	r := chi.NewRouter()
	r.Use(middleware.NewRequestID().Handle)
	r.Use(middleware.NewLogging(log).Handle)
	r.Use(middleware.NewMetrics(m).Handle)

	r.Handle("/graphql", graphqlHandler)
	r.Get("/health", handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	return r, nil
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   serviceName,
	})
}
