// Package mdsite turns Markdown pages into a static HTML site.
//
// # Quick Start
//
// Convert a single document to an HTML fragment:
//
//	html, err := mdsite.ToHTML("# Hello\n\nSome **bold** text")
//	// <div><h1>Hello</h1><p>Some <b>bold</b> text</p></div>
//
// Build full pages with a Converter:
//
//	conv, err := mdsite.NewConverter(
//	    mdsite.WithStyle("default"),
//	    mdsite.WithBasePath("/blog/"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	page, err := conv.Convert(ctx, mdsite.Input{Markdown: content})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("index.html", page.HTML, 0o644)
//
// # Markdown Subset
//
// The built-in engine understands blank-line separated blocks: headings
// (# to ######), fenced code (```), quotes (>), unordered lists (- ),
// strictly numbered ordered lists (1. 2. 3.) and paragraphs. Inside a block
// it recognises **bold**, _italic_, `code`, [links](url) and ![images](url).
// Styles do not nest, nothing is escaped, and a delimiter without its pair
// fails the whole document with ErrUnterminatedDelimiter. Link elements are
// emitted without an href attribute.
//
// WithEngine(EngineGoldmark) switches to a CommonMark and GFM renderer for
// sites that outgrow the subset.
//
// # Page Pipeline
//
//  1. Line ending normalization
//  2. Markdown to HTML fragment (builtin or goldmark engine)
//  3. Title extraction from the first "# " line
//  4. Template filling ({{ Title }} and {{ Content }})
//  5. CSS injection
//  6. Base path rewriting of site-rooted href and src attributes
//  7. Optional PDF rendering via headless Chrome (go-rod)
//
// # Parallel Processing
//
// Converters are not safe for concurrent use. Use ConverterPool to hand one
// converter to each worker:
//
//	pool := mdsite.NewConverterPool(mdsite.ResolvePoolSize(0), opts...)
//	defer pool.Close()
//
//	conv, err := pool.Acquire()
//	if err != nil {
//	    return err
//	}
//	defer pool.Release(conv)
package mdsite
