// Package decl loads layout trees from TOML and YAML documents.
//
// A document names the viewport size and a root node. Nodes mirror
// layout.Policy and the element configurations, with string enums and hex
// colors:
//
//	width = 400
//	height = 300
//
//	[root]
//	id = "card"
//	width = "grow"
//	direction = "column"
//	padding = [16]
//	gap = 8
//	background = "#20242c"
//
//	[[root.children]]
//	id = "title"
//	text = { text = "Hello", size = 24, color = "#ffffff" }
//
// Sizes use a small call syntax: "fit", "fit(10, 200)", "grow",
// "grow(0, 300)", "fixed(120)" and "percent(0.5)".
//
// Parse and Load validate the structure of a document; Build validates
// every value before it opens the first element, so a document with an
// error never leaves a half-built tree behind.
package decl
