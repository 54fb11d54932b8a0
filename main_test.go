package main

import "testing"

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name      string
		sceneName string
		expectErr bool
		count     int
	}{
		{"default scene", "default", false, 4},
		{"two sphere scene", "two-spheres", false, 2},
		{"unknown scene", "cornell", true, 0},
		{"empty name", "", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world, err := createScene(tt.sceneName)

			if tt.expectErr {
				if err == nil {
					t.Errorf("Expected error for scene %q", tt.sceneName)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if world.Count() != tt.count {
				t.Errorf("Expected %d surfaces, got %d", tt.count, world.Count())
			}
		})
	}
}
