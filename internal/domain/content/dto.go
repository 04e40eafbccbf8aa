package content

// UpdateFieldsRequest replaces the values of one or more fields of a section
type UpdateFieldsRequest struct {
	Fields map[string]string `json:"fields" validate:"required,min=1,max=64"`
}

// SectionListResponse lists sections that have stored content
type SectionListResponse struct {
	Sections []string `json:"sections"`
}
