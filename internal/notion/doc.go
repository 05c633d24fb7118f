// Package notion is a thin client for the Notion workspace API, covering
// only the surface the support portal consumes: listing child blocks of a
// page, retrieving database schemas, querying databases and creating or
// updating pages.
//
// Property values are modelled as a small closed union over the six
// property types the portal consults (title, rich_text, select, email,
// checkbox, date) rather than the workspace's full dynamic property model.
//
// The client does not retry. Transport and API failures are returned to the
// caller as typed errors; rate limiting is handled proactively with a token
// bucket and reactively via Retry-After.
package notion
