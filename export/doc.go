// Package export serializes URL list results and statistics for files and
// pipes.
//
// Three formats are supported: json and yaml carry the full report
// structure, csv flattens it into url,status rows followed by domain,count
// rows when statistics are included. Domain rows are emitted in sorted
// order so repeated exports of the same list diff cleanly.
//
// # Usage
//
//	import "github.com/linkrot/crawl-core/export"
//
//	format, err := export.ParseFormat("csv")
//	if err != nil {
//		return err
//	}
//
//	stats := urllist.Statistics(result.Valid)
//	err = export.Write(os.Stdout, export.Report{Result: result, Stats: &stats}, format)
package export
