package cache

// Keyer generates cache keys.
type Keyer interface {
	// SeriesKey identifies the series extracted from a data file.
	SeriesKey(fileHash string, opts SeriesKeyOpts) string

	// ArtifactKey identifies one rendered output of a scene.
	ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string
}

// SeriesKeyOpts holds the inputs besides file content that change the
// extracted series.
type SeriesKeyOpts struct {
	Format string `json:"format"`
	Sheet  string `json:"sheet,omitempty"`
	XCol   string `json:"x,omitempty"`
	YCol   string `json:"y,omitempty"`
	ZCol   string `json:"z,omitempty"`
}

// ArtifactKeyOpts holds the render settings that change an artifact.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// DefaultKeyer hashes key options into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// SeriesKey implements Keyer.
func (DefaultKeyer) SeriesKey(fileHash string, opts SeriesKeyOpts) string {
	return hashKey("series", fileHash, opts)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", sceneHash, opts)
}

var _ Keyer = DefaultKeyer{}
