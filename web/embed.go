// Package web holds the static HTML forms served next to the API.
package web

import "embed"

//go:embed *.html
var Forms embed.FS

// FormNames lists the files in Forms, each served at "/<name>".
var FormNames = []string{"RegisterForm.html", "SearchForm.html"}
