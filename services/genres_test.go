package services

import "testing"

func TestFlattenGenres(t *testing.T) {
	tests := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{`[{"id": 28, "name": "Action"}, {"id": 12, "name": "Adventure"}]`, "Action|Adventure", true},
		{`[{"name":"Action"}]`, "Action", true},
		{"[{'id': 16, 'name': 'Animation'}, {'id': 35, 'name': 'Comedy'}]", "Animation|Comedy", true},
		{`[{'id': 10751, 'name': "Children's"}]`, "Children's", true},
		{`[{'name': 'It\'s Complicated'}]`, "It's Complicated", true},
		{`[{'name': 'Drama', 'main': True, 'extra': None}]`, "Drama", true},
		{`[{"name": "  Drama "}, {"name": "   "}]`, "Drama", true},
		{`[{"name":"Action|"}]`, "Action", true},
		{`[{"name":"Sci | Fi"},{"name":"Drama"}]`, "Sci|Fi|Drama", true},
		{`[{"name":" | "}]`, "", false},
		{`[]`, "", false},
		{`null`, "", false},
		{``, "", false},
		{`not a list`, "", false},
		{`[{"id": 1}]`, "", false},
		{`[{"name": 5}]`, "", false},
		{`[{'name': 'Action'`, "", false},
		{`{"name": "Action"}`, "", false},
	}

	for _, tt := range tests {
		got, ok := FlattenGenres(tt.raw)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("FlattenGenres(%q) = (%q, %v); want (%q, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestFlattenGenresNeverPanics(t *testing.T) {
	inputs := []string{"[", "'", `"`, `[{'name': '\`, "[{'a':", "\x00\xff", "[[[[", "[{}]"}
	for _, in := range inputs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("FlattenGenres(%q) panicked: %v", in, r)
				}
			}()
			FlattenGenres(in)
		}()
	}
}

func TestSplitGenres(t *testing.T) {
	got := SplitGenres([]string{"Drama|Action", "Action", " Comedy | Drama", ""})
	want := []string{"Action", "Comedy", "Drama"}
	if len(got) != len(want) {
		t.Fatalf("SplitGenres: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SplitGenres[%d]: got %q, want %q", i, got[i], want[i])
		}
	}
}
