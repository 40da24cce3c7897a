package ports

// Normalizer defines the interface for text normalization applied before tokenization.
type Normalizer interface {
	Normalize(text string) string
}
