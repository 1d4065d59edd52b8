package llm

import "testing"

func TestOpenRouterProvider(t *testing.T) {
	tests := []struct {
		name      string
		cfg       OpenRouterConfig
		wantErr   bool
		wantModel string
	}{
		{
			name:      "model id passes through unmapped",
			cfg:       OpenRouterConfig{APIKey: "sk-or-test", Model: "google/gemini-2.0-flash-exp"},
			wantModel: "google/gemini-2.0-flash-exp",
		},
		{
			name:      "anthropic-routed model",
			cfg:       OpenRouterConfig{APIKey: "sk-or-test", Model: "anthropic/claude-3-haiku"},
			wantModel: "anthropic/claude-3-haiku",
		},
		{
			name: "custom base URL accepted",
			cfg: OpenRouterConfig{
				APIKey:  "sk-or-test",
				Model:   "meta-llama/llama-3-8b",
				BaseURL: "https://custom.openrouter.example/v1",
			},
			wantModel: "meta-llama/llama-3-8b",
		},
		{
			name:    "missing API key rejected",
			cfg:     OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewOpenRouterProvider(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewOpenRouterProvider: %v", err)
			}
			if p.ModelID() != tt.wantModel {
				t.Errorf("ModelID() = %q, want %q", p.ModelID(), tt.wantModel)
			}
		})
	}
}
