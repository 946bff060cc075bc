package domain

// Metadata is the record printed by the metadata command. Orientation is
// carried in the schema but never populated; the tool does not read EXIF.
type Metadata struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Format      string `json:"format"`
	Orientation *int   `json:"orientation,omitempty"`
}

// RenderResult is the diagnostic record a resize emits on stderr, pairing
// source and output dimensions.
type RenderResult struct {
	OriginalWidth  int `json:"original_width"`
	OriginalHeight int `json:"original_height"`
	Width          int `json:"width"`
	Height         int `json:"height"`
}
