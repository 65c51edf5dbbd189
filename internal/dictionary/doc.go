// Package dictionary supplies the word lists and alphabets a session starts from.
//
// A Source yields raw entries; Load turns them into a primitives.WordSet of the
// configured word length. Sources read plain text files (one word per line, lines
// starting with '#' ignored), fixed in-memory lists, or a BigQuery word table.
//
// A source that fails is logged and treated as empty, so a broken word list never
// aborts a session.
package dictionary
