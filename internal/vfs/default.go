package vfs

// Default returns the tree visitors can browse before the content index has
// loaded.
func Default() *Tree {
	return NewTree(
		NewFile("about.md", "Navigate to /about on the website to learn more about Stephen McCullough."),
		NewFile("now.md", "Navigate to /now on the website to see what Stephen is currently working on."),
		NewDir("projects",
			NewFile("swm-cc.md", "This site. Built with Astro 5, Tailwind CSS 4, and MDX.\nView: /projects/building-swm-cc"),
			NewFile("whatisonthe-tv.md", "TV tracking app. FastAPI + SvelteKit.\nView: /projects/building-whatisonthetv"),
			NewFile("jotter.md", "Self-hosted bookmark manager. Rails 8 + Hotwire.\nView: /projects/building-jotter"),
			NewFile("the-mcculloughs-org.md", "Family photo archive. Rails 8 monolith.\nView: /projects/the-mcculloughs-org"),
		),
		NewDir("writing"),
		NewDir("notes"),
		NewDir("thoughts"),
	)
}
