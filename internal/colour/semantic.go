package colour

// Fixed semantic brand colours.
const (
	SuccessColour = "#10b981"
	WarningColour = "#f59e0b"
	ErrorColour   = "#ef4444"
)

// SemanticColors holds the status colours of a token set.
type SemanticColors struct {
	Success string `json:"success"`
	Warning string `json:"warning"`
	Error   string `json:"error"`
	Info    string `json:"info"`
}

// GenerateSemanticColors returns the fixed success, warning and error
// colours with info set to primary as given. Info is not hue-derived, so it
// only harmonises with the other three as far as primary already does.
func GenerateSemanticColors(primary string) SemanticColors {
	return SemanticColors{
		Success: SuccessColour,
		Warning: WarningColour,
		Error:   ErrorColour,
		Info:    primary,
	}
}

// All returns the semantic colours keyed by name in a fixed order.
func (s SemanticColors) All() []NamedColour {
	return []NamedColour{
		{Name: "success", Value: s.Success},
		{Name: "warning", Value: s.Warning},
		{Name: "error", Value: s.Error},
		{Name: "info", Value: s.Info},
	}
}

// NamedColour pairs a token name with a hex value.
type NamedColour struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
