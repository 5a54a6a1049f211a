package assessment

// Config describes one assessment as presented on the dashboard.
type Config struct {
	Type         Type
	Title        string
	Description  string
	DurationLite string
	DurationPro  string
}

var configs = []Config{
	{
		Type:         TypeMBTI,
		Title:        "MBTI Personality",
		Description:  "Discover your four-letter personality type across the classic dimension pairs.",
		DurationLite: "2 min",
		DurationPro:  "5 min",
	},
	{
		Type:         TypeHolland,
		Title:        "Holland Career Code",
		Description:  "Map your interests to the RIASEC career themes and find your three-letter code.",
		DurationLite: "3 min",
		DurationPro:  "6 min",
	},
	{
		Type:         TypeSCL90,
		Title:        "SCL-90 Screening",
		Description:  "A brief symptom checklist measuring psychological wellbeing across named factors.",
		DurationLite: "3 min",
		DurationPro:  "8 min",
	},
	{
		Type:         TypeIQ,
		Title:        "Logic & Reasoning",
		Description:  "Short puzzles probing pattern recognition and deductive reasoning.",
		DurationLite: "4 min",
		DurationPro:  "10 min",
	},
	{
		Type:         TypeEQ,
		Title:        "Emotional Intelligence",
		Description:  "Situational questions measuring self-awareness and empathy.",
		DurationLite: "3 min",
		DurationPro:  "7 min",
	},
	{
		Type:         TypeSpiritual,
		Title:        "Spiritual Needs",
		Description:  "Explore which of your inner needs (meaning, connection, or peace) leads right now.",
		DurationLite: "2 min",
		DurationPro:  "4 min",
	},
}

// Duration returns the estimated time for the given catalog version.
func (c Config) Duration(v Version) string {
	if v == VersionPro {
		return c.DurationPro
	}
	return c.DurationLite
}

// Configs returns all assessment configs in dashboard order.
func Configs() []Config {
	out := make([]Config, len(configs))
	copy(out, configs)
	return out
}

// ConfigFor returns a copy of the config for the given type, or nil if
// unknown.
func ConfigFor(t Type) *Config {
	for i := range configs {
		if configs[i].Type == t {
			cfg := configs[i]
			return &cfg
		}
	}
	return nil
}
