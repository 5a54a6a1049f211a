package assessment

import (
	"testing"
)

func TestLoadAllCatalogs(t *testing.T) {
	for _, typ := range AllTypes() {
		for _, ver := range []Version{VersionLite, VersionPro} {
			c, err := Load(typ, ver)
			if err != nil {
				t.Errorf("Load(%s, %s): %v", typ, ver, err)
				continue
			}
			if c.Len() == 0 {
				t.Errorf("Load(%s, %s): empty catalog", typ, ver)
			}
			if c.Type != typ || c.Version != ver {
				t.Errorf("Load(%s, %s): got type=%s version=%s", typ, ver, c.Type, c.Version)
			}
		}
	}
}

func TestLoadUnknownCatalog(t *testing.T) {
	if _, err := Load(Type("ASTROLOGY"), VersionLite); err == nil {
		t.Error("expected error for unknown catalog")
	}
}

func TestValidateDuplicateID(t *testing.T) {
	c := &Catalog{
		Type: TypeIQ,
		Questions: []Question{
			{ID: 1, Text: "a", Options: []Option{{Text: "x", Value: "1"}}},
			{ID: 1, Text: "b", Options: []Option{{Text: "y", Value: "0"}}},
		},
	}
	if err := c.Validate(); err == nil {
		t.Error("expected duplicate id error")
	}
}

func TestValidateEmptyOptions(t *testing.T) {
	c := &Catalog{
		Type:      TypeIQ,
		Questions: []Question{{ID: 1, Text: "a"}},
	}
	if err := c.Validate(); err == nil {
		t.Error("expected empty options error")
	}
}

func TestValidateMBTIRequirements(t *testing.T) {
	tests := []struct {
		name string
		q    Question
		ok   bool
	}{
		{
			name: "valid binary dimension question",
			q: Question{ID: 1, Category: "EI", Options: []Option{
				{Text: "a", Value: "E"}, {Text: "b", Value: "I"},
			}},
			ok: true,
		},
		{
			name: "missing category",
			q: Question{ID: 1, Options: []Option{
				{Text: "a", Value: "E"}, {Text: "b", Value: "I"},
			}},
			ok: false,
		},
		{
			name: "option value not a pole of the pair",
			q: Question{ID: 1, Category: "EI", Options: []Option{
				{Text: "a", Value: "E"}, {Text: "b", Value: "T"},
			}},
			ok: false,
		},
		{
			name: "wrong option count",
			q: Question{ID: 1, Category: "EI", Options: []Option{
				{Text: "a", Value: "E"},
			}},
			ok: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Catalog{Type: TypeMBTI, Questions: []Question{tt.q}}
			err := c.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate: %v", err)
			}
			if !tt.ok && err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestByID(t *testing.T) {
	c, err := Load(TypeMBTI, VersionLite)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if q := c.ByID(1); q == nil || q.ID != 1 {
		t.Errorf("ByID(1) = %v, want question 1", q)
	}
	if q := c.ByID(999); q != nil {
		t.Errorf("ByID(999) = %v, want nil", q)
	}
}

func TestConfigsCoverAllTypes(t *testing.T) {
	cfgs := Configs()
	if len(cfgs) != len(AllTypes()) {
		t.Fatalf("got %d configs, want %d", len(cfgs), len(AllTypes()))
	}
	for _, typ := range AllTypes() {
		if ConfigFor(typ) == nil {
			t.Errorf("no config for %s", typ)
		}
	}
}

func TestConfigForReturnsCopy(t *testing.T) {
	cfg := ConfigFor(TypeMBTI)
	if cfg == nil {
		t.Fatal("no config for MBTI")
	}
	cfg.Title = "mutated"

	if got := ConfigFor(TypeMBTI); got.Title == "mutated" {
		t.Error("mutating the returned config changed the registry")
	}
}
