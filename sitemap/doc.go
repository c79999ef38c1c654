// Package sitemap parses sitemap XML content into URL lists.
//
// It understands both document shapes from the sitemaps.org protocol: a
// <urlset> yields page URLs, a <sitemapindex> yields references to nested
// sitemap files. Gzipped payloads (sitemap.xml.gz) are decompressed
// transparently. The package only ever parses bytes it is handed. Fetching
// sitemaps, and following the nested references a sitemap index reports, is
// the caller's business.
//
// # Usage
//
//	import "github.com/linkrot/crawl-core/sitemap"
//
//	data, _ := os.ReadFile("sitemap.xml")
//	doc, err := sitemap.Parse(data)
//	if err != nil {
//		return err
//	}
//	for _, url := range doc.URLs {
//		fmt.Println(url)
//	}
//	for _, ref := range doc.Sitemaps {
//		fmt.Println("nested:", ref)
//	}
//
// Entries without a <loc>, or with a blank one, are dropped. Namespaces are
// ignored: elements are matched by local name, which copes with the
// namespace-declaration variety found in the wild.
package sitemap
