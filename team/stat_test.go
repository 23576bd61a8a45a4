package team

import (
	"errors"
	"slices"
	"testing"
)

func TestParseStats(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []StatValue
		wantErr error
	}{
		{
			name:  "single",
			input: "252 Atk",
			want:  []StatValue{{Atk, 252}},
		},
		{
			name:  "all six",
			input: "1 HP / 2 Atk / 3 Def / 4 SpA / 5 SpD / 6 Spe",
			want: []StatValue{
				{HP, 1}, {Atk, 2}, {Def, 3}, {SpA, 4}, {SpD, 5}, {Spe, 6},
			},
		},
		{
			name:  "values pass through unclamped",
			input: "999 Spe / -4 HP",
			want:  []StatValue{{Spe, 999}, {HP, -4}},
		},
		{
			name:    "unknown code",
			input:   "252 Foo",
			wantErr: ErrUnresolvedToken,
		},
		{
			name:    "codes are case-sensitive",
			input:   "252 atk",
			wantErr: ErrUnresolvedToken,
		},
		{
			name:    "doubled separator space",
			input:   "252  Atk",
			wantErr: ErrUnresolvedToken,
		},
		{
			name:    "trailing space after code",
			input:   "252 Atk  / 4 Def",
			wantErr: ErrUnresolvedToken,
		},
		{
			name:    "leading space before value",
			input:   "252 Atk /  4 Def",
			wantErr: ErrMalformedLine,
		},
		{
			name:    "missing value",
			input:   "Atk",
			wantErr: ErrMalformedLine,
		},
		{
			name:    "non-integer value",
			input:   "lots Atk",
			wantErr: ErrMalformedLine,
		},
		{
			name:    "one bad segment fails the list",
			input:   "252 Atk / 4 Foo",
			wantErr: ErrUnresolvedToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStats(tt.input)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}

				if got != nil {
					t.Errorf("expected no values on failure, got %v", got)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseStats_UnknownCodeDetail(t *testing.T) {
	_, err := ParseStats("252 Foo")

	var pe *Error
	if !errors.As(err, &pe) {
		t.Fatalf("expected *Error, got %T", err)
	}

	if pe.Subject != KindStat || pe.Token != "Foo" {
		t.Errorf("got subject %v token %q, want stat Foo", pe.Subject, pe.Token)
	}
}

func TestParseStat_RoundTrip(t *testing.T) {
	for _, s := range Stats {
		got, ok := ParseStat(s.String())
		if !ok || got != s {
			t.Errorf("ParseStat(%q) = %v, %v", s.String(), got, ok)
		}
	}

	if _, ok := ParseStat("Speed"); ok {
		t.Error("ParseStat accepted a long stat name")
	}
}
