package adgen

import (
	"encoding/json"
	"testing"
)

func TestChannelAdviceDecodesFlatShape(t *testing.T) {
	t.Parallel()

	raw := `[
		{"channel": "instagram_stories", "reason": "visual content", "priority": "High"},
		{"channel": "facebook_local", "reason": "local reach", "priority": "medium"},
		{"channel": "email", "reason": "retention"}
	]`

	var w wireChannelAdvice
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		t.Fatalf("unmarshal flat shape: %v", err)
	}
	recs := w.advice.Recommendations
	if len(recs) != 3 {
		t.Fatalf("len(recs) = %d, want 3", len(recs))
	}
	if recs[0].Priority != PriorityHigh {
		t.Fatalf("recs[0].Priority = %v, want high", recs[0].Priority)
	}
	// Missing priority normalizes to medium.
	if recs[2].Priority != PriorityMedium {
		t.Fatalf("recs[2].Priority = %v, want medium", recs[2].Priority)
	}
	if w.advice.BestChannel != "" {
		t.Fatalf("BestChannel = %q, want empty for flat shape", w.advice.BestChannel)
	}
}

func TestChannelAdviceDecodesWrappedShape(t *testing.T) {
	t.Parallel()

	raw := `{
		"best_channel": "facebook_local",
		"total_confidence": 0.85,
		"recommendations": [
			{"channel": "facebook_local", "reason": "local reach", "priority": "high"},
			{"channel": "youtube", "reason": "long form", "priority": "low"}
		]
	}`

	var w wireChannelAdvice
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		t.Fatalf("unmarshal wrapped shape: %v", err)
	}
	if w.advice.BestChannel != "facebook_local" {
		t.Fatalf("BestChannel = %q", w.advice.BestChannel)
	}
	if w.advice.TotalConfidence != 0.85 {
		t.Fatalf("TotalConfidence = %v", w.advice.TotalConfidence)
	}
	if len(w.advice.Recommendations) != 2 {
		t.Fatalf("len(recs) = %d, want 2", len(w.advice.Recommendations))
	}
}

func TestChannelAdviceShapesNormalizeIdentically(t *testing.T) {
	t.Parallel()

	flat := `[{"channel": "email", "reason": "cheap", "priority": "low"}]`
	wrapped := `{"recommendations": [{"channel": "email", "reason": "cheap", "priority": "low"}]}`

	var a, b wireChannelAdvice
	if err := json.Unmarshal([]byte(flat), &a); err != nil {
		t.Fatalf("flat: %v", err)
	}
	if err := json.Unmarshal([]byte(wrapped), &b); err != nil {
		t.Fatalf("wrapped: %v", err)
	}
	if len(a.advice.Recommendations) != 1 || len(b.advice.Recommendations) != 1 {
		t.Fatal("expected one recommendation from each shape")
	}
	if a.advice.Recommendations[0] != b.advice.Recommendations[0] {
		t.Fatalf("normalized recommendations differ: %+v vs %+v", a.advice.Recommendations[0], b.advice.Recommendations[0])
	}
}

func TestSortByPriorityGroupsTiersStably(t *testing.T) {
	t.Parallel()

	advice := ChannelAdvice{Recommendations: []ChannelRecommendation{
		{Channel: "a", Priority: PriorityLow},
		{Channel: "b", Priority: PriorityMedium},
		{Channel: "c", Priority: PriorityHigh},
		{Channel: "d", Priority: PriorityMedium},
		{Channel: "e", Priority: PriorityHigh},
	}}
	advice.SortByPriority()

	want := []string{"c", "e", "b", "d", "a"}
	for i, rec := range advice.Recommendations {
		if rec.Channel != want[i] {
			t.Fatalf("order[%d] = %q, want %q", i, rec.Channel, want[i])
		}
	}
}

func TestParsePriority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want Priority
	}{
		{"high", PriorityHigh},
		{"High", PriorityHigh},
		{" LOW ", PriorityLow},
		{"medium", PriorityMedium},
		{"", PriorityMedium},
		{"urgent", PriorityMedium},
	}
	for _, tc := range tests {
		if got := ParsePriority(tc.raw); got != tc.want {
			t.Fatalf("ParsePriority(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestRegistrationRequestDefaultsPreferredChannels(t *testing.T) {
	t.Parallel()

	req := newRegistrationRequest(Submission{BusinessName: "Solstice Yoga Studio"})
	if len(req.PreferredChannels) != 3 {
		t.Fatalf("PreferredChannels = %v, want default trio", req.PreferredChannels)
	}

	req = newRegistrationRequest(Submission{PreferredChannels: []string{"email"}})
	if len(req.PreferredChannels) != 1 || req.PreferredChannels[0] != "email" {
		t.Fatalf("PreferredChannels = %v, want caller override", req.PreferredChannels)
	}
}
