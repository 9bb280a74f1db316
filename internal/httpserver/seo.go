package httpserver

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	catalogsvc "inkpaper-express/internal/service/catalog"
)

type sitemapPage struct {
	url        string
	priority   float64
	changeFreq string
}

// sitemapHandler emits the static storefront pages plus one entry per
// active product.
func sitemapHandler(svc *catalogsvc.Service, baseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.List(c.Request.Context(), "")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate sitemap"})
			return
		}

		pages := []sitemapPage{
			{baseURL + "/", 1.0, "daily"},
			{baseURL + "/printers", 0.9, "weekly"},
			{baseURL + "/category/ink", 0.9, "weekly"},
			{baseURL + "/category/paper", 0.8, "weekly"},
			{baseURL + "/category/supplies", 0.8, "weekly"},
			{baseURL + "/returns", 0.5, "monthly"},
			{baseURL + "/customer-service", 0.6, "monthly"},
			{baseURL + "/order-tracking", 0.4, "never"},
		}
		for _, p := range products {
			pages = append(pages, sitemapPage{fmt.Sprintf("%s/product/%d", baseURL, p.ID), 0.7, "weekly"})
		}

		today := time.Now().UTC().Format("2006-01-02")
		var b strings.Builder
		b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
		b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
		for _, page := range pages {
			fmt.Fprintf(&b, "  <url>\n    <loc>%s</loc>\n    <lastmod>%s</lastmod>\n    <changefreq>%s</changefreq>\n    <priority>%.1f</priority>\n  </url>\n",
				page.url, today, page.changeFreq, page.priority)
		}
		b.WriteString("</urlset>")

		c.Data(http.StatusOK, "application/xml", []byte(b.String()))
	}
}

func robotsHandler(baseURL string) gin.HandlerFunc {
	robots := `User-agent: *
Allow: /
Disallow: /admin/
Disallow: /api/
Disallow: /checkout
Disallow: /cart

# Sitemap
Sitemap: ` + baseURL + `/sitemap.xml

# Crawl-delay for respectful crawling
Crawl-delay: 1

# Allow specific search engines full access
User-agent: Googlebot
Allow: /

User-agent: Bingbot
Allow: /

User-agent: Slurp
Allow: /

# Block sensitive areas
User-agent: *
Disallow: /admin/
Disallow: /api/
Disallow: /*.json$
Disallow: /*?*sessionId=*
Disallow: /*?*cart=*`

	return func(c *gin.Context) {
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(robots))
	}
}
