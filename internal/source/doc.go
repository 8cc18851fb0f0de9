// Package source reads lists of names from inline text, files, standard
// input and SQL tables.
package source
