package scan

// DefaultDenyOrigins are origins that are never showcase candidates: the
// project's own properties plus hosts that routinely appear in discussion
// comments without being submissions (code hosting, social, video, docs).
var DefaultDenyOrigins = []string{
	"https://astro.build",
	"https://docs.astro.build",
	"https://astro.new",
	"https://github.com",
	"https://gist.github.com",
	"https://twitter.com",
	"https://x.com",
	"https://youtube.com",
	"https://www.youtube.com",
	"https://youtu.be",
	"https://discord.gg",
	"https://discord.com",
	"https://developer.mozilla.org",
	"https://vercel.com",
	"https://netlify.com",
	"https://www.netlify.com",
}

// DenySet builds the deny lookup from origin strings. The set is fixed for
// the process lifetime; nothing is learned or persisted.
func DenySet(origins ...[]string) map[string]bool {
	deny := make(map[string]bool)
	for _, list := range origins {
		for _, origin := range list {
			deny[origin] = true
		}
	}
	return deny
}
