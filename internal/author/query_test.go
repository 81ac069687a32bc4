package author

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Query
	}{
		{
			name:  "single word is last name",
			input: "Goelzer",
			want:  Query{Last: "Goelzer"},
		},
		{
			name:  "two words is First Last",
			input: "Heiko Goelzer",
			want:  Query{First: "Heiko", Last: "Goelzer"},
		},
		{
			name:  "three words: first two are first name",
			input: "Mary Jane Watson",
			want:  Query{First: "Mary Jane", Last: "Watson"},
		},
		{
			name:  "comma format: Last, First",
			input: "Goelzer, Heiko",
			want:  Query{First: "Heiko", Last: "Goelzer"},
		},
		{
			name:  "leading/trailing whitespace",
			input: "  Lee  ",
			want:  Query{Last: "Lee"},
		},
		{
			name:  "empty string",
			input: "",
			want:  Query{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseQuery(tt.input)
			if got != tt.want {
				t.Errorf("ParseQuery(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestQueryMatches(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		key   Key
		want  bool
	}{
		{"exact last name", Query{Last: "Lee"}, Key{First: "Ann", Last: "Lee"}, true},
		{"last name case insensitive", Query{Last: "lee"}, Key{First: "Ann", Last: "Lee"}, true},
		{"last name no partial match", Query{Last: "Le"}, Key{First: "Ann", Last: "Lee"}, false},
		{"first name prefix", Query{First: "An", Last: "Lee"}, Key{First: "Ann", Last: "Lee"}, true},
		{"first name mismatch", Query{First: "Bo", Last: "Lee"}, Key{First: "Ann", Last: "Lee"}, false},
		{"padded input names", Query{First: "Ann", Last: "Lee"}, Key{First: " Ann", Last: "Lee "}, true},
		{"empty query matches nothing", Query{}, Key{First: "Ann", Last: "Lee"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.query.Matches(tt.key)
			if got != tt.want {
				t.Errorf("Query%+v.Matches(%+v) = %v, want %v", tt.query, tt.key, got, tt.want)
			}
		})
	}
}

func TestQueryFindAll(t *testing.T) {
	keys := []Key{
		{First: "Ann", Last: "Lee"},
		{First: "Bo", Last: "Ng"},
		{First: "Anna", Last: "Lee"},
	}

	got := ParseQuery("Lee").FindAll(keys)
	if diff := cmp.Diff([]int{0, 2}, got); diff != "" {
		t.Errorf("FindAll(Lee) mismatch (-want +got):\n%s", diff)
	}

	if got := ParseQuery("Smith").FindAll(keys); len(got) != 0 {
		t.Errorf("FindAll(Smith) = %v, want none", got)
	}
}
