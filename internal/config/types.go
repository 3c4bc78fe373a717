package config


// MergelistConfig is the top-level configuration structure for mergelist.
type MergelistConfig struct {
	Settings Settings `yaml:"settings"`
	Screen   Screen   `yaml:"screen"`
}

// Settings holds presentation and logging preferences.
type Settings struct {
	LogLevel string `yaml:"logLevel,omitempty" validate:"omitempty,oneof=debug info warn warning error"`
	DarkMode *bool  `yaml:"darkMode,omitempty"` // nil keeps the terminal's own detection
}

// Screen describes one merged list: its title and its blocks in display order.
type Screen struct {
	Title  string  `yaml:"title,omitempty"`
	Blocks []Block `yaml:"blocks"`
}

// BlockType defines what kind of provider a block becomes.
type BlockType string

const (
	BlockTypeHeader    BlockType = "header"
	BlockTypeFooter    BlockType = "footer"
	BlockTypeSeparator BlockType = "separator"
	BlockTypeList      BlockType = "list"
)

// Block is one provider of the merged list.
type Block struct {
	Name       string    `yaml:"name" validate:"required"`                                   // Unique name, used for toggling
	Type       BlockType `yaml:"type" validate:"required,oneof=header footer separator list"` // header, footer, separator or list
	Lines      []string  `yaml:"lines,omitempty"`      // header/footer: one static row per line
	Selectable bool      `yaml:"selectable,omitempty"` // header/footer: rows can be selected
	Items      []string  `yaml:"items,omitempty"`      // list: the rows
	Sectioned  bool      `yaml:"sectioned,omitempty"`  // list: group by first letter
	Sorted     bool      `yaml:"sorted,omitempty"`     // list: sort items before display
	Active     *bool     `yaml:"active,omitempty"`     // initial state, defaults to true
}

// IsActive returns the block's initial activation state.
func (b Block) IsActive() bool {
	return b.Active == nil || *b.Active
}
