package capture

import (
	"errors"
	"testing"
)

func TestLocate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "span between markers",
			text: "boot log\n" + StartMarker + "\npayload\n" + EndMarker + "\ntail",
			want: "\npayload\n",
		},
		{
			name: "markers embedded in log prefixed lines",
			text: "[INFO] " + StartMarker + "abc" + EndMarker + " done",
			want: "abc",
		},
		{
			name: "first end marker after start wins",
			text: StartMarker + "one" + EndMarker + StartMarker + "two" + EndMarker,
			want: "one",
		},
		{
			name: "end marker before start is ignored",
			text: EndMarker + "\nnoise\n" + StartMarker + "real" + EndMarker,
			want: "real",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Locate(tt.text, StartMarker, EndMarker)
			if err != nil {
				t.Fatalf("Locate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Locate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLocateMissingMarkers(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "no markers at all", text: "just some logs\n"},
		{name: "start only", text: StartMarker + "\ndeadbeef\n"},
		{name: "end only", text: "deadbeef\n" + EndMarker},
		{name: "end precedes start", text: EndMarker + "\n" + StartMarker + "\ndeadbeef\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Locate(tt.text, StartMarker, EndMarker)
			if !errors.Is(err, ErrMissingMarker) {
				t.Fatalf("Locate() error = %v, want ErrMissingMarker", err)
			}
			var ee *ExtractError
			if !errors.As(err, &ee) || ee.Stage != StageLocate {
				t.Errorf("Locate() error stage = %v, want %v", err, StageLocate)
			}
		})
	}
}

func TestLocateAll(t *testing.T) {
	text := "boot\n" +
		StartMarker + "\naaaa\n" + EndMarker + "\n" +
		"between dumps\n" +
		StartMarker + "\nbbbb\n" + EndMarker + "\n"

	spans, truncated, err := LocateAll(text, StartMarker, EndMarker)
	if err != nil {
		t.Fatalf("LocateAll() error = %v", err)
	}
	if truncated != 0 {
		t.Errorf("truncated = %d, want 0", truncated)
	}
	if len(spans) != 2 {
		t.Fatalf("len(spans) = %d, want 2", len(spans))
	}
	if spans[0] != "\naaaa\n" || spans[1] != "\nbbbb\n" {
		t.Errorf("spans = %q", spans)
	}
}

func TestLocateAllTruncatedTrailingDump(t *testing.T) {
	text := StartMarker + "\naaaa\n" + EndMarker + "\n" +
		StartMarker + "\nbbbb never terminated\n"

	spans, truncated, err := LocateAll(text, StartMarker, EndMarker)
	if err != nil {
		t.Fatalf("LocateAll() error = %v", err)
	}
	if len(spans) != 1 {
		t.Fatalf("len(spans) = %d, want 1", len(spans))
	}
	if truncated != 1 {
		t.Errorf("truncated = %d, want 1", truncated)
	}
}

func TestLocateAllNoCompletePair(t *testing.T) {
	_, _, err := LocateAll(StartMarker+"\nabandoned\n", StartMarker, EndMarker)
	if !errors.Is(err, ErrMissingMarker) {
		t.Fatalf("LocateAll() error = %v, want ErrMissingMarker", err)
	}
}
