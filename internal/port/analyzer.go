package port

// Stemmer reduces a single lowercase word to its stem.
type Stemmer interface {
	Stem(word string) string
}

// Tokenizer splits raw text into analyzed tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}
