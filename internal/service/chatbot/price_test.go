package chatbot

import "testing"

func TestExtractPriceLimit(t *testing.T) {
	cases := []struct {
		name      string
		utterance string
		limit     int
		ok        bool
	}{
		{"under with dollar", "show me phones under $250", 250, true},
		{"under without symbol", "anything under 1000?", 1000, true},
		{"below with rupee", "below ₹500", 500, true},
		{"less than", "less than 750 please", 750, true},
		{"symbol or less", "$300 or less", 300, true},
		{"symbol and below", "₹ 250 and below", 250, true},
		{"no constraint", "cheap electronics", 0, false},
		{"bare amount is not a constraint", "$100", 0, false},
		{"first pattern wins", "under 50 or below 20", 50, true},
		{"mixed case", "UNDER $42", 42, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			limit, ok := ExtractPriceLimit(tc.utterance)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if limit != tc.limit {
				t.Fatalf("limit = %d, want %d", limit, tc.limit)
			}
		})
	}
}
