// Package hits records served requests in a relational database and reports
// the most requested paths.
//
// The store is optional. It is only created when database.enabled is set, in
// which case it is passed to the access log middleware as its Recorder and
// GET /stats is mounted under /api. A failed insert is logged by the
// middleware and never changes the response.
//
// Both sqlite and mysql work through gorm; the table is page_hits.
package hits
