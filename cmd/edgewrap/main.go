// Package main starts the edgewrap cursor wrapper.
package main

import "flag"

// main is the entrypoint for edgewrap.
func main() {
	var opts options
	flag.BoolVar(&opts.debug, "debug", false, "Enable verbose debug logging")
	flag.StringVar(&opts.layoutPath, "layout", "", "Read monitors from a YAML layout file (\"builtin\" for the bundled scenarios)")
	flag.StringVar(&opts.layoutName, "name", "", "Layout name inside the file (default: first, or all with -compare)")
	flag.BoolVar(&opts.compare, "compare", false, "Print opposite vs projection coverage and exit")
	flag.StringVar(&opts.mode, "mode", "", "Wrap mode: both, horizontal or vertical")
	flag.StringVar(&opts.saveLayout, "save-layout", "", "Write the current monitor layout to a YAML file and exit")
	flag.Parse()

	if err := run(opts); err != nil {
		logFatal(err)
	}
}
