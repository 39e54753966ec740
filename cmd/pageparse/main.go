// Package main provides the pageparse command.
//
// pageparse reads HTML and CSS files and prints the parsed document.
//
// Usage:
//
//	pageparse parse page.html style.css
//	pageparse query "p.lead" page.html
//	pageparse tokens style.css
//
// See --help for all available options.
package main

func main() {
	Execute()
}
