// Package webgrab provides a polite, single-host web crawler that walks a
// site's link graph from a seed URL and downloads files with matching
// extensions into a local directory.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, robotstxt/, sqlite/);
// orchestration lives in crawl/.
package webgrab

// UserAgent identifies the crawler in HTTP requests and robots.txt
// evaluation.
const UserAgent = "webgrab/1.0"
