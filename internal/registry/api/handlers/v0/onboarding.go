package v0

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mattewlondono22/smartagents-desktop/internal/registry/service"
	"github.com/mattewlondono22/smartagents-desktop/pkg/models"
	"github.com/mattewlondono22/smartagents-desktop/pkg/types"
)

// RegisterOnboardingEndpoints registers the onboarding wizard endpoint
func RegisterOnboardingEndpoints(api huma.API, pathPrefix string, registry service.RegistryService) {
	huma.Register(api, huma.Operation{
		OperationID: "list-onboarding-steps" + strings.ReplaceAll(pathPrefix, "/", "-"),
		Method:      http.MethodGet,
		Path:        pathPrefix + "/onboarding/steps",
		Summary:     "Onboarding steps",
		Description: "Returns the fixed onboarding wizard sequence",
		Tags:        []string{"onboarding"},
	}, func(ctx context.Context, _ *struct{}) (*types.Response[[]models.OnboardingStep], error) {
		steps, err := registry.OnboardingSteps(ctx)
		if err != nil {
			return nil, huma.Error500InternalServerError("Failed to load onboarding steps", err)
		}
		return &types.Response[[]models.OnboardingStep]{Body: steps}, nil
	})
}
