// Package pageparse reads HTML and CSS sources into a document: a node tree
// built by package dom and a stylesheet built by package css.
//
// A Loader reads files, picks the parser by file extension and assembles the
// results into a Document. The Document can be dumped as text, YAML or
// Markdown and queried with CSS selectors.
package pageparse
