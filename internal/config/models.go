package config

// ModelInfo describes one of the completion engines offered in the UI.
type ModelInfo struct {
	ID          string
	Name        string
	Description string
}

var Models = []ModelInfo{
	{
		ID:          "gpt-5",
		Name:        "GPT-5",
		Description: "Fast, cheap",
	},
	{
		ID:          "gpt-5-pro",
		Name:        "GPT-5 Pro",
		Description: "Slower, more capable",
	},
}

func GetModel(id string) *ModelInfo {
	for _, m := range Models {
		if m.ID == id {
			return &m
		}
	}
	return nil
}
