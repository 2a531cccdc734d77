package mdsite_test

import (
	"context"
	"fmt"
	"log"

	mdsite "github.com/alnah/go-mdsite"
)

func ExampleToHTML() {
	html, err := mdsite.ToHTML("# Hello\n\nThis is **bold** and _italic_.")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(html)
	// Output: <div><h1>Hello</h1><p>This is <b>bold</b> and <i>italic</i>.</p></div>
}

func ExampleExtractTitle() {
	title, err := mdsite.ExtractTitle("intro\n\n# Tolkien Fan Club\n\nbody")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(title)
	// Output: Tolkien Fan Club
}

func ExampleConverter_Convert() {
	conv, err := mdsite.NewConverter(mdsite.WithBasePath("/blog"))
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = conv.Close() }()

	page, err := conv.Convert(context.Background(), mdsite.Input{
		Markdown: "# Welcome\n\n![logo](/images/logo.png)",
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(page.Title)
	fmt.Println(page.Body)
	// Output:
	// Welcome
	// <div><h1>Welcome</h1><p><img src="/images/logo.png" alt="logo"/></p></div>
}
