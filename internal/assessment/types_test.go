package assessment

import (
	"encoding/json"
	"testing"
)

func TestValueUnmarshalNormalizesNumbers(t *testing.T) {
	tests := []struct {
		raw  string
		want Value
	}{
		{`"E"`, "E"},
		{`"NEUTRAL"`, Neutral},
		{`1`, "1"},
		{`0`, "0"},
		{`2.5`, "2.5"},
		{`"3"`, "3"},
	}

	for _, tt := range tests {
		var v Value
		if err := json.Unmarshal([]byte(tt.raw), &v); err != nil {
			t.Errorf("unmarshal %s: %v", tt.raw, err)
			continue
		}
		if v != tt.want {
			t.Errorf("unmarshal %s = %q, want %q", tt.raw, v, tt.want)
		}
	}
}

func TestValueFloat(t *testing.T) {
	if f, err := Value("2.5").Float(); err != nil || f != 2.5 {
		t.Errorf("Float() = %v, %v", f, err)
	}
	if _, err := Value("E").Float(); err == nil {
		t.Error("expected error for non-numeric value")
	}
}

func TestMaxOptionValue(t *testing.T) {
	q := Question{ID: 1, Options: []Option{
		{Text: "a", Value: "1"},
		{Text: "b", Value: "4"},
		{Text: "c", Value: "2"},
	}}
	max, err := q.MaxOptionValue()
	if err != nil {
		t.Fatalf("MaxOptionValue: %v", err)
	}
	if max != 4 {
		t.Errorf("MaxOptionValue = %v, want 4", max)
	}

	q.Options[1].Value = "E"
	if _, err := q.MaxOptionValue(); err == nil {
		t.Error("expected error for non-numeric option")
	}
}

func TestParseType(t *testing.T) {
	if typ, err := ParseType("MBTI"); err != nil || typ != TypeMBTI {
		t.Errorf("ParseType(MBTI) = %v, %v", typ, err)
	}
	if _, err := ParseType("TAROT"); err == nil {
		t.Error("expected error for unknown type")
	}
}
