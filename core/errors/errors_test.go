package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestMissingClefError(t *testing.T) {
	err := &MissingClefError{Kind: "note", Position: "f"}
	if got, want := err.Error(), `cannot determine the pitch of note "f" without clef`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrMissingClef) {
		t.Errorf("errors.Is(err, ErrMissingClef) = false")
	}
	if errors.Is(err, ErrUnrepresentablePitch) {
		t.Errorf("MissingClefError must not match ErrUnrepresentablePitch")
	}
}

func TestPitchError(t *testing.T) {
	tests := []struct {
		name    string
		err     *PitchError
		wantMsg string
	}{
		{
			name:    "with clef",
			err:     &PitchError{Pitch: 70, Flavor: "plain", Clef: "cb4", Position: "i"},
			wantMsg: `pitch 70 (position "i", clef cb4) has no plain volpiano character`,
		},
		{
			name:    "bare pitch",
			err:     &PitchError{Pitch: 60, Flavor: "flat"},
			wantMsg: "pitch 60 has no flat volpiano character",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if !errors.Is(tt.err, ErrUnrepresentablePitch) {
				t.Errorf("errors.Is(err, ErrUnrepresentablePitch) = false")
			}
			if errors.Is(tt.err, ErrMissingClef) {
				t.Errorf("PitchError must not match ErrMissingClef")
			}
		})
	}
}

func TestContractError(t *testing.T) {
	tests := []struct {
		name    string
		err     *ContractError
		wantMsg string
	}{
		{
			name:    "with value and position",
			err:     &ContractError{Node: "barline", Value: ";9", Line: 2, Column: 7, Message: "unmapped token"},
			wantMsg: `2:7: barline ";9": unmapped token`,
		},
		{
			name:    "without value",
			err:     NewContract("syllable", "", "missing music group"),
			wantMsg: "syllable: missing music group",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if !errors.Is(tt.err, ErrContract) {
				t.Errorf("errors.Is(err, ErrContract) = false")
			}
		})
	}
}

func TestIOError(t *testing.T) {
	underlying := fmt.Errorf("permission denied")
	err := NewIO("read", "/tmp/chant.gabc", underlying)
	if got, want := err.Error(), "failed to read /tmp/chant.gabc: permission denied"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, underlying) {
		t.Errorf("errors.Is(err, underlying) = false")
	}

	noPath := &IOError{Operation: "decompress", Err: underlying}
	if got, want := noPath.Error(), "failed to decompress: permission denied"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestParseError(t *testing.T) {
	grammarErr := fmt.Errorf("1:4: unexpected token \")\"")
	err := NewParse("gabc", "", grammarErr)
	if got, want := err.Error(), `failed to parse gabc: 1:4: unexpected token ")"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("errors.Is(err, ErrInvalidInput) = false")
	}
	if !errors.Is(err, grammarErr) {
		t.Errorf("errors.Is(err, grammarErr) = false")
	}

	withPath := &ParseError{Format: "gabc", Path: "a.gabc", Message: "bad"}
	if got, want := withPath.Error(), "failed to parse gabc at a.gabc: bad"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "ctx") != nil {
		t.Errorf("Wrap(nil) should be nil")
	}
	if Wrapf(nil, "ctx %d", 1) != nil {
		t.Errorf("Wrapf(nil) should be nil")
	}

	err := Wrapf(&MissingClefError{Kind: "note", Position: "g"}, "convert %s", "a.gabc")
	if !Is(err, ErrMissingClef) {
		t.Errorf("wrapped error lost ErrMissingClef")
	}
	var mc *MissingClefError
	if !As(err, &mc) || mc.Position != "g" {
		t.Errorf("As() failed to recover MissingClefError")
	}
	if got, want := Wrap(ErrContract, "extract").Error(), "extract: contract violation"; got != want {
		t.Errorf("Wrap() = %q, want %q", got, want)
	}
}
