package service

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mattewlondono22/smartagents-desktop/pkg/models"
)

//go:embed onboarding.yaml
var onboardingData []byte

// LoadOnboardingSteps parses the embedded onboarding sequence. Steps are never marked completed.
func LoadOnboardingSteps() ([]models.OnboardingStep, error) {
	var steps []models.OnboardingStep
	if err := yaml.Unmarshal(onboardingData, &steps); err != nil {
		return nil, fmt.Errorf("failed to parse onboarding steps: %w", err)
	}
	for i := range steps {
		steps[i].Completed = false
	}
	return steps, nil
}
