package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"gopkg.in/yaml.v3"

	"github.com/mattewlondono22/smartagents-desktop/internal/registry/api/router"
	v0 "github.com/mattewlondono22/smartagents-desktop/internal/registry/api/handlers/v0"
	"github.com/mattewlondono22/smartagents-desktop/internal/version"
)

func main() {
	outputPath := flag.String("output", "openapi.yaml", "Output path for OpenAPI spec")
	service := flag.String("service", router.RegistryServiceName, "Service to document (registry or search)")
	versionOverride := flag.String("version", "", "Override the API version (defaults to version.Version)")
	flag.Parse()

	apiVersion := version.Version
	if *versionOverride != "" {
		apiVersion = *versionOverride
	}

	spec, err := generateSpec(*service, apiVersion)
	if err != nil {
		log.Fatal(err)
	}

	yamlData, err := yaml.Marshal(spec)
	if err != nil {
		log.Fatalf("Failed to marshal OpenAPI spec to YAML: %v", err)
	}

	if err := os.WriteFile(*outputPath, yamlData, 0644); err != nil {
		log.Fatalf("Failed to write OpenAPI spec to %s: %v", *outputPath, err)
	}

	absPath, err := filepath.Abs(*outputPath)
	if err != nil {
		absPath = *outputPath
	}
	fmt.Printf("OpenAPI spec generated: %s\n", absPath)
}

// generateSpec creates a Huma API, registers the routes of one service, and
// returns the OpenAPI spec.
func generateSpec(service, apiVersion string) (*huma.OpenAPI, error) {
	mux := http.NewServeMux()

	descriptions := map[string]string{
		router.RegistryServiceName: "Agent and tool registry, file embedding placeholder and onboarding steps.",
		router.SearchServiceName:   "Per-agent document upload and semantic search.",
	}
	description, ok := descriptions[service]
	if !ok {
		return nil, fmt.Errorf("unknown service %q", service)
	}

	humaConfig := huma.DefaultConfig("Agent Studio "+service, apiVersion)
	humaConfig.Info.Description = description
	// Disable $schema property injection in responses
	humaConfig.CreateHooks = []func(huma.Config) huma.Config{}

	api := humago.New(mux, humaConfig)
	versionInfo := &v0.VersionBody{Version: apiVersion}

	// Services are nil: they are only captured in handler closures and
	// invoked at request time, not during route registration.
	if service == router.SearchServiceName {
		router.RegisterSearchRoutes(api, nil, versionInfo, 32<<20)
	} else {
		router.RegisterRegistryRoutes(api, nil, versionInfo, nil)
	}

	return api.OpenAPI(), nil
}
