package layout

// Builtin returns the reference layouts used by comparison runs when no file is given.
func Builtin() File {
	return File{Layouts: []Layout{
		{
			Name:        "single",
			Description: "one 1920x1080 monitor",
			Monitors: []Monitor{
				{ID: 0, X: 0, Y: 0, Width: 1920, Height: 1080, Primary: true},
			},
		},
		{
			Name:        "side-by-side",
			Description: "two 1920x1080 monitors touching at x=1920",
			Monitors: []Monitor{
				{ID: 0, X: 0, Y: 0, Width: 1920, Height: 1080, Primary: true},
				{ID: 1, X: 1920, Y: 0, Width: 1920, Height: 1080},
			},
		},
		{
			Name:        "staggered",
			Description: "second monitor 200px lower and 100px narrower",
			Monitors: []Monitor{
				{ID: 0, X: 0, Y: 0, Width: 1920, Height: 1080, Primary: true},
				{ID: 1, X: 1920, Y: 200, Width: 1820, Height: 1080},
			},
		},
		{
			Name:        "l-shape-gap",
			Description: "three monitors in an L with a 50px gap",
			Monitors: []Monitor{
				{ID: 0, X: 0, Y: 0, Width: 1920, Height: 1080, Primary: true},
				{ID: 1, X: 1970, Y: 0, Width: 1920, Height: 1080},
				{ID: 2, X: 0, Y: 1080, Width: 1920, Height: 1080},
			},
		},
		{
			Name:        "mixed-dpi",
			Description: "1080p monitor beside a 4K monitor at 200% scaling",
			Monitors: []Monitor{
				{ID: 0, X: 0, Y: 0, Width: 1920, Height: 1080, Primary: true},
				{ID: 1, X: 1920, Y: 0, Width: 3840, Height: 2160, DPI: 192},
			},
		},
	}}
}
