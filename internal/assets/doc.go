// Package assets loads the stylesheets and page templates used to build a
// site.
//
//	AssetLoader (interface)
//	    ├── EmbeddedLoader    - built-in assets compiled into the binary
//	    ├── FilesystemLoader  - assets from a directory on disk
//	    └── AssetResolver     - directory first, built-in as fallback
//
// A directory of custom assets mirrors the embedded layout:
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css
//	└── templates/
//	    └── {name}.html
//
// Asset names are plain identifiers. Names with separators or dots are
// rejected, and FilesystemLoader refuses any path that resolves outside its
// base directory, symlinks included.
package assets
