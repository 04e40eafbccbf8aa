package pricing

// FieldInfo describes one configuration key for editing tools
type FieldInfo struct {
	Key     string `json:"key"`
	Default string `json:"default"`
}

// PreviewRequest renders the section from defaults plus the given overrides.
// Unknown keys are ignored.
type PreviewRequest struct {
	Overrides Overrides `json:"overrides"`
}

// SectionResponse is the JSON form of a rendered section
type SectionResponse struct {
	Name string `json:"name"`
	Section
}

func fieldInfos() []FieldInfo {
	defaults := DefaultConfig()
	out := make([]FieldInfo, 0, len(fieldKeys))
	for _, key := range fieldKeys {
		out = append(out, FieldInfo{Key: key, Default: defaults.Get(key)})
	}
	return out
}
