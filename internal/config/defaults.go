package config

// sampleNames is the list shown by the default screen.
var sampleNames = []string{
	"Walter White",
	"Skyler White",
	"Jesse Pinkman",
	"Hank Schrader",
	"Marie Schrader",
	"Walter White Jr.",
	"Saul Goodman",
	"Gustavo Fring",
	"Mike Ehrmantraut",
	"Lydia Rodarte-Quayle",
	"Todd Alquist",
}

// GetDefaultConfig returns the built-in configuration: a header, the sample
// character list grouped by first letter, and a footer that starts hidden.
func GetDefaultConfig() MergelistConfig {
	hidden := false
	names := make([]string, len(sampleNames))
	copy(names, sampleNames)

	return MergelistConfig{
		Settings: Settings{
			LogLevel: "info",
		},
		Screen: Screen{
			Title: "MergeList Sample",
			Blocks: []Block{
				{
					Name:  "header",
					Type:  BlockTypeHeader,
					Lines: []string{"Breaking Bad (Main Characters)"},
				},
				{
					Name:      "characters",
					Type:      BlockTypeList,
					Items:     names,
					Sectioned: true,
					Sorted:    true,
				},
				{
					Name:   "rule",
					Type:   BlockTypeSeparator,
					Active: &hidden,
				},
				{
					Name:       "footer",
					Type:       BlockTypeFooter,
					Lines:      []string{"Press 1-9 to toggle blocks"},
					Selectable: true,
					Active:     &hidden,
				},
			},
		},
	}
}
