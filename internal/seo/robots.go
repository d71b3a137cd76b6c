package seo

import "strings"

const DefaultSitemapURL = "https://demo-astro-jocr.vercel.app/sitemap-index.xml"

type RobotsGroup struct {
	UserAgents []string
	Allow      []string
	Disallow   []string
}

// Policy is a robots.txt document. Trailer is appended verbatim after the
// last line, so it decides whether the file ends with a newline.
type Policy struct {
	Groups     []RobotsGroup
	SitemapURL string
	Trailer    string
}

// ProductionPolicy blocks every crawler.
func ProductionPolicy() Policy {
	return Policy{
		Groups: []RobotsGroup{{
			UserAgents: []string{"*"},
			Disallow:   []string{"/"},
		}},
		Trailer: "\n\n",
	}
}

// DevelopmentPolicy allows every crawler and advertises the sitemap.
func DevelopmentPolicy(sitemapURL string) Policy {
	return Policy{
		Groups: []RobotsGroup{{
			UserAgents: []string{"*"},
			Allow:      []string{"/"},
		}},
		SitemapURL: sitemapURL,
	}
}

func RenderRobots(p Policy) string {
	lines := make([]string, 0, 8)
	for groupIndex, group := range p.Groups {
		if groupIndex > 0 {
			lines = append(lines, "")
		}
		for _, userAgent := range group.UserAgents {
			lines = append(lines, "User-agent: "+userAgent)
		}
		for _, allow := range group.Allow {
			lines = append(lines, "Allow: "+allow)
		}
		for _, disallow := range group.Disallow {
			lines = append(lines, "Disallow: "+disallow)
		}
	}
	if strings.TrimSpace(p.SitemapURL) != "" {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, "Sitemap: "+p.SitemapURL)
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + p.Trailer
}
