package score

import (
	"errors"
	"testing"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/model"
)

func ptr(v float64) *float64 { return &v }

func TestFromAssessment(t *testing.T) {
	tests := []struct {
		name      string
		in        Assessment
		wantLabel model.Label
		wantScore int
		wantConf  float64
		wantColor model.Color
		wantErr   error
	}{
		{
			name:      "passthrough",
			in:        Assessment{Verdict: "LIKELY TRUE", CredibilityScore: ptr(82), Confidence: ptr(70)},
			wantLabel: model.LabelLikelyTrue,
			wantScore: 82,
			wantConf:  70,
			wantColor: model.ColorGreen,
		},
		{
			name:      "label normalized",
			in:        Assessment{Verdict: " likely_false ", CredibilityScore: ptr(30), Confidence: ptr(60)},
			wantLabel: model.LabelLikelyFalse,
			wantScore: 30,
			wantConf:  60,
			wantColor: model.ColorOrange,
		},
		{
			name:      "color follows score not label",
			in:        Assessment{Verdict: "TRUE", CredibilityScore: ptr(40), Confidence: ptr(50)},
			wantLabel: model.LabelTrue,
			wantScore: 40,
			wantConf:  50,
			wantColor: model.ColorOrange,
		},
		{
			name:      "out of range clamped",
			in:        Assessment{Verdict: "FALSE", CredibilityScore: ptr(-20), Confidence: ptr(140)},
			wantLabel: model.LabelFalse,
			wantScore: 0,
			wantConf:  100,
			wantColor: model.ColorRed,
		},
		{
			name:      "missing confidence defaults",
			in:        Assessment{Verdict: "UNCERTAIN", CredibilityScore: ptr(50)},
			wantLabel: model.LabelUncertain,
			wantScore: 50,
			wantConf:  50,
			wantColor: model.ColorYellow,
		},
		{
			name:    "missing verdict",
			in:      Assessment{CredibilityScore: ptr(50)},
			wantErr: ErrMissingVerdict,
		},
		{
			name:    "unknown verdict",
			in:      Assessment{Verdict: "PANTS ON FIRE", CredibilityScore: ptr(50)},
			wantErr: ErrUnknownVerdict,
		},
		{
			name:    "error label rejected",
			in:      Assessment{Verdict: "ERROR", CredibilityScore: ptr(50)},
			wantErr: ErrUnknownVerdict,
		},
		{
			name:    "missing score",
			in:      Assessment{Verdict: "TRUE"},
			wantErr: ErrMissingScore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := FromAssessment(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.Verdict != tt.wantLabel {
				t.Errorf("Verdict = %s, want %s", v.Verdict, tt.wantLabel)
			}
			if v.CredibilityScore != tt.wantScore {
				t.Errorf("CredibilityScore = %d, want %d", v.CredibilityScore, tt.wantScore)
			}
			if v.Confidence != tt.wantConf {
				t.Errorf("Confidence = %v, want %v", v.Confidence, tt.wantConf)
			}
			if v.Color != tt.wantColor {
				t.Errorf("Color = %s, want %s", v.Color, tt.wantColor)
			}
		})
	}
}

func TestFromAssessmentDedupesFlags(t *testing.T) {
	v, err := FromAssessment(Assessment{
		Verdict:          "FALSE",
		CredibilityScore: ptr(10),
		RedFlags:         []string{"sensational", "no sources", "sensational"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(v.RedFlags) != 2 {
		t.Errorf("RedFlags = %v, want 2 unique flags", v.RedFlags)
	}
}

func TestError(t *testing.T) {
	v := Error("Failed to parse AI response")

	if v.Verdict != model.LabelError || v.CredibilityScore != 0 || v.Confidence != 0 || v.Color != model.ColorGray {
		t.Errorf("Error() = %+v", v)
	}
	if v.Reasoning != "Failed to parse AI response" {
		t.Errorf("Reasoning = %q", v.Reasoning)
	}
}
