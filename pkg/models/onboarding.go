package models

// OnboardingStep is one entry of the fixed onboarding wizard sequence.
type OnboardingStep struct {
	ID          int    `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Completed   bool   `json:"completed" yaml:"completed"`
}
