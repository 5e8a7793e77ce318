package tui

import (
	"testing"
)

func TestShouldPromptInCI(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
	}{
		{"GitHub Actions", "GITHUB_ACTIONS"},
		{"GitLab CI", "GITLAB_CI"},
		{"Jenkins", "JENKINS_URL"},
		{"Generic CI", "CI"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.envVar, "true")
			if ShouldPrompt() {
				t.Errorf("ShouldPrompt() = true with %s set, want false", tt.envVar)
			}
		})
	}
}

func TestIsInteractive(t *testing.T) {
	// Result depends on how tests are run; just ensure no panic.
	_ = IsInteractive()
}
