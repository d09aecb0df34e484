// Command cabling-server exposes the routing engine over HTTP.
//
// POST /route takes a layout snapshot {nodes, channels, connections} and
// returns the routed cable set; GET /health reports liveness.
package main

import (
	_ "embed"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"cabling/core"
	"cabling/export"
	"cabling/routing"
)

//go:embed schema.json
var schemaSrc string

var layoutSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("layout.schema.json", strings.NewReader(schemaSrc)); err != nil {
		panic(err)
	}
	return c.MustCompile("layout.schema.json")
}

func main() {
	_ = godotenv.Load()
	port := getenv("PORT", "8080")

	log.Printf("cabling-server listening on :%s", port)
	log.Fatal(http.ListenAndServe(":"+port, newServer()))
}

func newServer() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"service":"cabling-server"}`))
	})

	r.Post("/route", handleRoute)

	return r
}

func handleRoute(w http.ResponseWriter, req *http.Request) {
	var raw any
	dec := json.NewDecoder(req.Body)
	if err := dec.Decode(&raw); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := layoutSchema.Validate(raw); err != nil {
		http.Error(w, "invalid layout: "+err.Error(), http.StatusBadRequest)
		return
	}

	// Re-decode into the typed layout; the schema has already vetted it.
	data, err := json.Marshal(raw)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	var layout core.Layout
	if err := json.Unmarshal(data, &layout); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Connections submitted without an id get one assigned.
	for i := range layout.Connections {
		if layout.Connections[i].ID == "" {
			layout.Connections[i].ID = uuid.NewString()
		}
	}

	cables := routing.RouteLayout(layout)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(export.Document{
		Nodes:    layout.Nodes,
		Channels: layout.Channels,
		Cables:   cables,
	})
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
