package pattern

import (
	"reflect"
	"testing"
)

func assertPatterns(t *testing.T, got []string, want []string) {
	t.Helper()

	gotSet := make(map[string]struct{}, len(got))
	for _, p := range got {
		gotSet[p] = struct{}{}
	}
	if len(gotSet) != len(got) {
		t.Errorf("result contains duplicates: %v", got)
	}

	wantSet := make(map[string]struct{}, len(want))
	for _, p := range want {
		wantSet[p] = struct{}{}
	}

	if !reflect.DeepEqual(gotSet, wantSet) {
		t.Errorf("patterns mismatch:\n got: %v\nwant: %v", got, want)
	}
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want []string
	}{
		{
			name: "small groups stay separate",
			keys: []string{"users.0.id", "users.1.name", "orders.12.items.3.price"},
			want: []string{
				`users\.\d+\.id`,
				`users\.\d+\.name`,
				`orders\.\d+\.items\.\d+\.price`,
			},
		},
		{
			name: "empty input",
			keys: []string{},
			want: []string{},
		},
		{
			name: "single distinct pattern kept despite full dominance",
			keys: []string{"a.1.x", "a.2.x", "a.3.x"},
			want: []string{`a\.\d+\.x`},
		},
		{
			name: "special characters escaped",
			keys: []string{"api[v1].0.x"},
			want: []string{`api\[v1\]\.\d+\.x`},
		},
		{
			name: "single segment passes through",
			keys: []string{"standalone"},
			want: []string{"standalone"},
		},
		{
			name: "single segment deduplicated",
			keys: []string{"standalone", "standalone", "another"},
			want: []string{"standalone", "another"},
		},
		{
			name: "dominant group generalized within band",
			keys: []string{
				"users.1.name", "users.1.email", "users.1.age",
				"users.1.phone", "users.1.address", "users.1.country",
				"users.1.postal_code", "users.1.preferences",
				"users.1.is_active", "users.1.metadata",
				"orders.3.total", "orders.3.currency", "orders.3.created_at",
			},
			want: []string{
				`users\.\d+\.\w+`,
				`orders\.\d+\.total`,
				`orders\.\d+\.currency`,
				`orders\.\d+\.created_at`,
			},
		},
		{
			name: "no generalization below the floor",
			keys: []string{
				"users.1.name", "users.1.email",
				"orders.1.total", "orders.1.status",
				"products.1.price", "logs.1.message", "cache.1.key",
			},
			want: []string{
				`users\.\d+\.name`, `users\.\d+\.email`,
				`orders\.\d+\.total`, `orders\.\d+\.status`,
				`products\.\d+\.price`, `logs\.\d+\.message`, `cache\.\d+\.key`,
			},
		},
		{
			name: "whitespace keys ignored",
			keys: []string{"", "   ", "valid.1.key"},
			want: []string{`valid\.\d+\.key`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.keys)
			assertPatterns(t, got, tt.want)
		})
	}
}

func TestExtractAtGeneralizationFloor(t *testing.T) {
	// 12 of 16 keys share the users prefix: exactly 75%, the closed lower
	// boundary of the generalization band.
	keys := []string{
		"users.1.name", "users.2.name", "users.3.name",
		"users.1.email", "users.2.email", "users.3.email",
		"users.1.age", "users.2.age", "users.3.age",
		"users.1.phone", "users.2.phone", "users.3.phone",
		"alpha", "beta", "gamma", "delta",
	}

	got := Extract(keys)
	assertPatterns(t, got, []string{
		`users\.\d+\.\w+`,
		"alpha", "beta", "gamma", "delta",
	})
}

func TestExtractAtGeneralizationCeiling(t *testing.T) {
	// 19 of 20 keys share the users prefix: exactly 95%, which falls outside
	// the band. Near-total dominance reads as an intentional schema, so the
	// patterns stay separate.
	keys := make([]string, 0, 20)
	for i := 0; i < 10; i++ {
		keys = append(keys, "users.1.id")
	}
	for i := 0; i < 9; i++ {
		keys = append(keys, "users.1.name")
	}
	keys = append(keys, "misc")

	got := Extract(keys)
	assertPatterns(t, got, []string{
		`users\.\d+\.id`,
		`users\.\d+\.name`,
		"misc",
	})
}

func TestExtractEmptyPrefixNeverGeneralized(t *testing.T) {
	// Keys with a leading delimiter produce patterns whose prefix is the
	// empty string; those fall back to individual patterns even inside
	// the band.
	keys := []string{".a", ".a", ".b", "solo"}

	got := Extract(keys)
	assertPatterns(t, got, []string{`\.a`, `\.b`, "solo"})
}

func TestExtractOrderIndependence(t *testing.T) {
	keys := []string{
		"users.1.name", "users.1.email", "users.1.age",
		"users.1.phone", "users.1.address", "users.1.country",
		"users.1.postal_code", "users.1.preferences",
		"users.1.is_active", "users.1.metadata",
		"orders.3.total", "orders.3.currency", "orders.3.created_at",
	}

	reversed := make([]string, len(keys))
	for i, k := range keys {
		reversed[len(keys)-1-i] = k
	}

	got := Extract(keys)
	gotReversed := Extract(reversed)

	if !reflect.DeepEqual(got, gotReversed) {
		t.Errorf("permuted input changed the result:\n %v\n vs %v", got, gotReversed)
	}
}

func TestExtractDeterminism(t *testing.T) {
	keys := []string{"users.0.id", "users.1.name", "orders.12.total", "standalone"}

	first := Extract(keys)
	second := Extract(keys)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated calls disagree:\n %v\n vs %v", first, second)
	}
}

func TestGeneralizeZeroTotal(t *testing.T) {
	got := Generalize(map[string]int{`users\.\d+\.id`: 1}, 0)
	if len(got) != 0 {
		t.Errorf("Generalize() with zero total = %v, want empty", got)
	}
}

func TestAnalyzeGroups(t *testing.T) {
	keys := []string{
		"users.1.name", "users.2.email", "users.3.age", "users.4.phone",
		"orders.3.total",
		"standalone",
	}
	counts, total := Counts(keys)

	groups := AnalyzeGroups(counts, total)

	if len(groups) != 2 {
		t.Fatalf("len(groups) = %d, want 2", len(groups))
	}

	users := groups[0]
	if users.Prefix != `users\.\d+` {
		t.Errorf("groups[0].Prefix = %q, want users prefix", users.Prefix)
	}
	if users.Total != 4 {
		t.Errorf("users.Total = %d, want 4", users.Total)
	}
	if len(users.Entries) != 4 {
		t.Errorf("len(users.Entries) = %d, want 4", len(users.Entries))
	}
	if users.Generalized {
		t.Errorf("users group generalized at %.1f%%, want kept", users.Frequency)
	}

	orders := groups[1]
	if orders.Prefix != `orders\.\d+` {
		t.Errorf("groups[1].Prefix = %q, want orders prefix", orders.Prefix)
	}
	if orders.Total != 1 {
		t.Errorf("orders.Total = %d, want 1", orders.Total)
	}
}

func TestAnalyzeGroupsDecisionMatchesGeneralize(t *testing.T) {
	keys := []string{
		"users.1.name", "users.1.email", "users.1.age",
		"users.1.phone", "users.1.address", "users.1.country",
		"users.1.postal_code", "users.1.preferences",
		"users.1.is_active", "users.1.metadata",
		"orders.3.total", "orders.3.currency", "orders.3.created_at",
	}
	counts, total := Counts(keys)

	groups := AnalyzeGroups(counts, total)
	final := Generalize(counts, total)

	finalSet := make(map[string]struct{}, len(final))
	for _, p := range final {
		finalSet[p] = struct{}{}
	}

	for _, g := range groups {
		generalized := g.Prefix + Delimiter + WordToken
		_, hasWildcard := finalSet[generalized]

		if g.Generalized != hasWildcard {
			t.Errorf("group %q: Generalized = %v but wildcard presence = %v",
				g.Prefix, g.Generalized, hasWildcard)
		}
	}
}

func TestAnalyzeGroupsZeroTotal(t *testing.T) {
	if groups := AnalyzeGroups(map[string]int{"a": 1}, 0); groups != nil {
		t.Errorf("AnalyzeGroups() with zero total = %v, want nil", groups)
	}
}
